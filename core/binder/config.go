package binder

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// DefaultMaxMemory is the default maximum memory used for parsing multipart
// forms (10MB).
const DefaultMaxMemory = 10 << 20

// Config holds default-binder limits with environment variable support.
type Config struct {
	// MaxJSONSize caps the JSON request body size in bytes.
	MaxJSONSize int64 `env:"BINDER_MAX_JSON_SIZE" envDefault:"1048576"`

	// MaxMemory caps the memory used for multipart form parsing in bytes.
	MaxMemory int64 `env:"BINDER_MAX_MEMORY" envDefault:"10485760"`
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		MaxJSONSize: DefaultMaxJSONSize,
		MaxMemory:   DefaultMaxMemory,
	}
}

// withDefaults fills zero limits so a zero Config behaves like DefaultConfig.
func (c Config) withDefaults() Config {
	if c.MaxJSONSize <= 0 {
		c.MaxJSONSize = DefaultMaxJSONSize
	}
	if c.MaxMemory <= 0 {
		c.MaxMemory = DefaultMaxMemory
	}
	return c
}
