// Package config loads typed configuration structs from environment variables
// with caarlos0/env, after reading an optional .env file with godotenv.
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Parse reads from an explicit map instead of the process environment.
package config
