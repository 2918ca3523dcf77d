package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseFailed indicates environment variables could not be parsed into the
// target struct.
var ErrParseFailed = errors.New("failed to parse environment config")

// Load parses environment variables into a struct of type T using `env` tags.
// A .env file in the working directory is loaded first when present; real
// environment variables take precedence over file values.
//
//	type AppConfig struct {
//		Name   string        `env:"APP_NAME" envDefault:"bindkit"`
//		Binder binder.Config // nested structs are parsed too
//	}
//
//	cfg, err := config.Load[AppConfig]()
func Load[T any]() (T, error) {
	return LoadFrom[T](".env")
}

// LoadFrom behaves like Load but reads the given dotenv files.
// Missing files are ignored; unreadable ones are an error.
func LoadFrom[T any](files ...string) (T, error) {
	var cfg T

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return cfg, fmt.Errorf("%w: loading %s: %v", ErrParseFailed, file, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return cfg, nil
}
