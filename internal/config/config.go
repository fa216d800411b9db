// Package config handles tool configuration loading and management.
package config

// Config holds all gosculpt settings.
type Config struct {
	Deform  DeformConfig  `yaml:"deform"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// DeformConfig holds soft-selection deformation parameters.
type DeformConfig struct {
	// Radius is the falloff radius in world units.
	Radius float64 `yaml:"radius"`
	// Curve is the falloff curve name: linear, smooth or cubic.
	Curve string `yaml:"curve"`
	// Threshold is the adjacency distance for smoothing propagation.
	Threshold float64 `yaml:"threshold"`
}

// MeshConfig holds mesh construction parameters.
type MeshConfig struct {
	// WeldDecimals is the coordinate precision for vertex welding.
	WeldDecimals int `yaml:"weld_decimals"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the engine's default values.
func Default() *Config {
	return &Config{
		Deform: DeformConfig{
			Radius:    2.0,
			Curve:     "smooth",
			Threshold: 0.1,
		},
		Mesh: MeshConfig{
			WeldDecimals: 5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
