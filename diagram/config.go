package diagram

// DefaultMaxBodyWidth is the lower line body width used when none is
// configured.
const DefaultMaxBodyWidth = 26

// Config controls diagram layout.
type Config struct {
	MaxBodyWidth int  `json:"max_body_width,omitempty" yaml:"max_body_width,omitempty"`
	Color        bool `json:"color,omitempty" yaml:"color,omitempty"`
}

func DefaultConfig() Config {
	return Config{MaxBodyWidth: DefaultMaxBodyWidth}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.MaxBodyWidth > 0 {
		c.MaxBodyWidth = source.MaxBodyWidth
	}
	if source.Color {
		c.Color = true
	}
}
