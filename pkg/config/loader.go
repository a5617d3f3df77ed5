package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// Load populates cfg from environment variables using `env` struct tags.
// The first call in the process also loads a .env file if one exists.
// Each config type is parsed once; later calls return the cached value so
// every subsystem sees the same configuration.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is fine, real deployments use the environment.
		_ = godotenv.Load()
	})
	if cfg == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	mu.RLock()
	if cached, ok := loaded[key]; ok {
		*cfg = cached.(T)
		mu.RUnlock()
		return nil
	}
	mu.RUnlock()

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	// First writer wins so concurrent loaders agree on the cached value.
	if cached, ok := loaded[key]; ok {
		*cfg = cached.(T)
	} else {
		loaded[key] = *cfg
	}
	mu.Unlock()

	return nil
}

// MustLoad is Load for configuration the application cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
