// Package config loads typed configuration structs from environment
// variables, optionally seeded from a .env file during development.
//
// Each subsystem declares its own Config struct with `env` tags and loads it
// independently:
//
//	type Config struct {
//		Addr   string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Secret string        `env:"JWT_SECRET,required"`
//		TTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Loaded values are cached per type, so repeated loads of the same struct
// are cheap and consistent.
package config
