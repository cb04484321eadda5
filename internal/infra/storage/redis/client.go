// Package redis persists the watchlist and transaction snapshots in Redis.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

// NewClient connects to Redis and verifies the connection with a ping before
// returning the storage client.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{conn: conn}, nil
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}
