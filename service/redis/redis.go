package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
)

// Forever means the key will not be expired
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("redis: key has no ttl")

	// ErrGapTime is returned when no pool is available to serve the command
	ErrGapTime = errors.New("redis: in gap time, command rejected")
)

// Service wraps a redis pool. The surface is the set of commands the session
// store, the healthcheck and the response-cache provider actually issue.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
