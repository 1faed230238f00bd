package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host           string
		Port           int
		RequestTimeout time.Duration
		LogQueries     bool
		CORSOrigins    []string
		RateLimit      float64
	}
	Auth struct {
		Secret string
		Issuer string
	}
	Blog struct {
		MaxSlugAttempts int
		ConflictRetries uint64
		ConflictBackoff time.Duration
	}
}
