// Package logger builds *slog.Logger instances with functional options,
// context-driven attributes and optional redaction of sensitive values.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a decorator that runs ContextExtractor callbacks on every record.
//
//	log := logger.New(
//	    logger.WithDevelopment("billing"),
//	    logger.WithRedactKeys("password", "token"),
//	)
//	log.Info("login", "user", "jane", "password", "hunter2")
//	// ... user=jane password=********
//
// # Redaction
//
// WithRedactKeys installs a ReplaceAttr hook backed by package scrub. Matching
// is case-insensitive. A matching attribute has its value replaced with the
// mask; an attribute holding a map[string]any has its matching fields masked
// while the rest of the map is kept. The hook never fails: values it cannot
// handle are logged as is.
//
// # Configuration
//
// Config can be populated from the environment with package config and turned
// into a logger with NewFromConfig.
package logger
