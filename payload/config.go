package payload

// Config bounds the payloads a ConstraintValidator accepts.
type Config struct {
	// AllowedKinds lists kind names ("number", "symbol", ...). Empty allows
	// the whole domain.
	AllowedKinds []string `json:"allowed_kinds,omitempty" yaml:"allowed_kinds,omitempty"`

	// MaxTextBytes caps Text and Symbol length in bytes. Zero disables the cap.
	MaxTextBytes int `json:"max_text_bytes,omitempty" yaml:"max_text_bytes,omitempty"`

	// RequirePayload rejects Absent.
	RequirePayload bool `json:"require_payload,omitempty" yaml:"require_payload,omitempty"`
}

const defaultMaxTextBytes = 4096

// DefaultConfig allows every kind with a 4KiB text cap.
func DefaultConfig() Config {
	return Config{
		MaxTextBytes: defaultMaxTextBytes,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if len(source.AllowedKinds) > 0 {
		c.AllowedKinds = source.AllowedKinds
	}
	if source.MaxTextBytes > 0 {
		c.MaxTextBytes = source.MaxTextBytes
	}
	if source.RequirePayload {
		c.RequirePayload = true
	}
}
