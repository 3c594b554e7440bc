package config

import (
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads configuration: defaults, then the TOML file (if path is not
// empty), then NEXUS_* environment variables.
func Load(path string) (Config, error) {
	conf := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &conf); err != nil {
			return Config{}, err
		}
	}

	if err := readEnv(&conf); err != nil {
		return Config{}, err
	}

	conf.LoggingLevel = strings.ToLower(conf.LoggingLevel)
	return conf, nil
}
