// Package config loads typed configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (for .env files) and
// github.com/caarlos0/env/v11 (for struct parsing). Each configuration type is
// parsed once and cached for the lifetime of the process:
//
//	type RedisConfig struct {
//	    URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The default .env file in the working directory is loaded lazily on the first
// call to Load; use LoadEnv to read other files before that. Values already
// present in the process environment are never overridden.
//
// # Error Handling
//
// Failures wrap the sentinel errors ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be checked with errors.Is.
//
// # Testing
//
// ResetCache clears cached configuration so tests can change the environment
// with t.Setenv and load again.
package config
