package storage

import "errors"

var (
	ErrEmptyKey         = errors.New("storage.empty_key")
	ErrInvalidCapacity  = errors.New("storage.invalid_capacity")
	ErrInvalidRedisURL  = errors.New("storage.invalid_redis_url")
	ErrRedisNotReady    = errors.New("storage.redis_not_ready")
	ErrRedisHealthcheck = errors.New("storage.redis_healthcheck_failed")
)
