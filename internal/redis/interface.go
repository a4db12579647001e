package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories use. It is satisfied by
// every go-redis client type.
type Client interface {
	redis.UniversalClient
}
