package config

// GTFSConfig contains GTFS static feed configuration
type GTFSConfig struct {
	// Source is a path to a zip archive, a directory of .txt files, or an
	// http(s) URL to an online GTFS zip.
	Source string `yaml:"source" validate:"omitempty"`
}

// OutputConfig contains output destination configuration
type OutputConfig struct {
	// Path of the GeoJSON output file; stdout when empty.
	Path   string `yaml:"path"`
	Pretty bool   `yaml:"pretty"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	Debug  bool   `yaml:"debug"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	GTFS   GTFSConfig   `yaml:"gtfs"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}
