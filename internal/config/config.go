package config

// Config represents the complete geo-utils configuration
type Config struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Output   OutputConfig   `yaml:"output"`
}

// GeometryConfig holds settings for shape calculations
type GeometryConfig struct {
	CircleSegments int    `yaml:"circle_segments"`
	DefaultScene   string `yaml:"default_scene"`
}

// OutputConfig holds settings for exported documents
type OutputConfig struct {
	KMLName string `yaml:"kml_name"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Geometry: GeometryConfig{
			CircleSegments: 64, // Smooth enough for map display
		},
		Output: OutputConfig{
			KMLName: "geo-utils",
		},
	}
}

// Validate fills in defaults for unset or out of range values
func (c *Config) Validate() {
	defaults := DefaultConfig()
	if c.Geometry.CircleSegments < 3 {
		c.Geometry.CircleSegments = defaults.Geometry.CircleSegments
	}
	if c.Output.KMLName == "" {
		c.Output.KMLName = defaults.Output.KMLName
	}
}
