// Package config loads typed configuration from the process environment.
//
// Values come from environment variables, optionally seeded from a .env file
// in the working directory (github.com/joho/godotenv), and are decoded into a
// struct with github.com/caarlos0/env/v11 tags:
//
//	type Config struct {
//		BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load parses each struct type once per process and returns the cached copy on
// later calls. Parse skips both the .env file and the cache and is what tests
// use.
package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig wraps decoding failures from the environment.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrNilPointer is returned when Load or Parse receives a nil target.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

var (
	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)
)

// Load fills v from the environment, reading .env on first use. Each type is
// parsed once; subsequent calls copy the cached value into v.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is the normal case outside local development.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = *v
	return nil
}

// Parse fills v from the given variables only. Defaults from envDefault tags
// still apply.
func Parse[T any](v *T, vars map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if vars == nil {
		vars = map[string]string{}
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
