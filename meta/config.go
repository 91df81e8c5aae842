package meta

import "log/slog"

// Config controls meta-engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableDFA = false // Force NFA-only execution
//	engine, err := meta.Compile(p, config)
type Config struct {
	// EnableDFA enables determinization at compile time.
	// When false, only the NFA is used.
	// Default: true
	EnableDFA bool

	// MaxDFAStates caps the number of states subset construction may create.
	// Patterns whose DFA would be larger fall back to the NFA.
	// Default: 10000
	MaxDFAStates int

	// EnableLiterals enables literal extraction for substring search.
	// Default: true
	EnableLiterals bool

	// MaxLiterals limits the size of an extracted finite language.
	// Default: 256
	MaxLiterals int

	// Logger receives debug records about strategy selection.
	// Default: nil (slog.Default())
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableDFA:      true,
		MaxDFAStates:   10000,
		EnableLiterals: true,
		MaxLiterals:    256,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MaxDFAStates: 1 to 1,000,000
//   - MaxLiterals: 1 to 10,000
//
// Limits of disabled features are not checked.
func (c Config) Validate() error {
	if c.EnableDFA {
		if c.MaxDFAStates < 1 || c.MaxDFAStates > 1_000_000 {
			return &ConfigError{
				Field:   "MaxDFAStates",
				Message: "must be between 1 and 1,000,000",
			}
		}
	}

	if c.EnableLiterals {
		if c.MaxLiterals < 1 || c.MaxLiterals > 10_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 10,000",
			}
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "meta: invalid config: " + e.Field + ": " + e.Message
}
