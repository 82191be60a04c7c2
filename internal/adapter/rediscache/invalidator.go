// Package rediscache signals page cache invalidation to the web frontend
// layer through Redis. The backend does not render pages itself; it drops
// the cached page entry and publishes the path so frontend replicas can
// revalidate.
package rediscache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Invalidator drops the cached entry for a path and broadcasts the change.
type Invalidator struct {
	client    *redis.Client
	keyPrefix string
	channel   string
}

// New creates an Invalidator on an established Redis client.
func New(client *redis.Client, keyPrefix, channel string) *Invalidator {
	return &Invalidator{
		client:    client,
		keyPrefix: keyPrefix,
		channel:   channel,
	}
}

// Invalidate deletes the cached page for path and publishes path on the
// invalidation channel. Both operations run; the first error is returned.
func (i *Invalidator) Invalidate(ctx context.Context, path string) error {
	delErr := i.client.Del(ctx, i.key(path)).Err()
	pubErr := i.client.Publish(ctx, i.channel, path).Err()

	if delErr != nil {
		return fmt.Errorf("invalidate %s: del: %w", path, delErr)
	}
	if pubErr != nil {
		return fmt.Errorf("invalidate %s: publish: %w", path, pubErr)
	}
	return nil
}

func (i *Invalidator) key(path string) string {
	return i.keyPrefix + ":" + path
}

// Noop is used when no cache backend is configured.
type Noop struct{}

// Invalidate does nothing.
func (Noop) Invalidate(context.Context, string) error { return nil }
