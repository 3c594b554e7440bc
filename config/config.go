// Package config provide run configuration from file, environment and
// command-line.
package config

// Config represent run configuration.
type Config struct {
	LoggingLevel string `toml:"logging_level" env:"LOGGING_LEVEL"`

	// Geometry is the registered name of the geometry to construct.
	Geometry string `toml:"geometry" env:"GEOMETRY"`
	// Macros are command files applied before construction, in order.
	Macros []string `toml:"macros" env:"MACROS" envSeparator:","`

	Region   string `toml:"region" env:"REGION"`
	Vertices int    `toml:"vertices" env:"VERTICES"`
	Seed     int64  `toml:"seed" env:"SEED"`

	// Output is one of: json, gdml, csv.
	Output string `toml:"output" env:"OUTPUT"`

	Address string `toml:"address" env:"ADDRESS"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LoggingLevel: "info",
		Geometry:     "NEXT100_OPT",
		Region:       "CENTER",
		Vertices:     1,
		Seed:         0,
		Output:       "json",
		Address:      "localhost:3002",
	}
}
