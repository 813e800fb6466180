package cache

import "errors"

var (
	// ErrCache возвращается при ошибках работы с Redis
	ErrCache = errors.New("cache: redis error")
)
