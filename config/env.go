package config

import (
	env "github.com/caarlos0/env/v11"
)

const envPrefix = "NEXUS_"

func readEnv(conf *Config) error {
	return env.ParseWithOptions(conf, env.Options{Prefix: envPrefix})
}
