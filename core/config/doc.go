// Package config loads typed configuration from environment variables using
// caarlos0/env. Each configuration type is parsed once and cached.
//
//	type ServerConfig struct {
//		Addr string `env:"NOHOST_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// A .env file in the working directory is read on first use. Additional
// files can be loaded explicitly with LoadEnvFiles before the first Load.
// Values already present in the environment win over dotenv files.
package config
