package config

import (
	"fmt"
)

type checkFunc func(conf *Config) error

// Check validates the configuration.
func Check(conf *Config) error {
	checkFuncs := []checkFunc{
		checkLoggingLevel,
		checkVertices,
		checkOutput,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkLoggingLevel(conf *Config) error {
	if !validateLoggingLevel(conf.LoggingLevel) {
		return fmt.Errorf("invalid logging level %q, one of: %s", conf.LoggingLevel, availableLoggingLevelsString)
	}
	return nil
}

func checkVertices(conf *Config) error {
	if conf.Vertices <= 0 {
		return fmt.Errorf("number of vertices must be positive, got %d", conf.Vertices)
	}
	return nil
}

func checkOutput(conf *Config) error {
	switch conf.Output {
	case "json", "gdml", "csv":
		return nil
	}
	return fmt.Errorf("invalid output format %q, one of: json, gdml, csv", conf.Output)
}
