// Package config fills configuration structs from environment variables.
//
// Variables are read with github.com/caarlos0/env/v11 struct tags. A .env file
// in the working directory, when present, is loaded once through
// github.com/joho/godotenv before the first parse; real environment variables
// take precedence over it.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Structs implementing Validator are checked after parsing.
package config
