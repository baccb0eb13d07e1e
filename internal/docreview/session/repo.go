// Package session persists the one durable piece of client state: the last
// used document id per dashboard session, so it survives page reloads.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lastDocKeyPrefix = "legal:session:" // legal:session:{session_id}:last_doc

// Repository stores the last-used-doc-id slot in Redis. Last write wins.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// SetLastDoc overwrites the session's slot with docID.
func (r *Repository) SetLastDoc(ctx context.Context, sessionID, docID string) error {
	if err := r.client.Set(ctx, r.key(sessionID), docID, r.ttl).Err(); err != nil {
		return fmt.Errorf("set last doc: %w", err)
	}
	return nil
}

// GetLastDoc returns the session's last used doc id, or "" when none is set.
func (r *Repository) GetLastDoc(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get last doc: %w", err)
	}
	return val, nil
}

func (r *Repository) key(sessionID string) string {
	return lastDocKeyPrefix + sessionID + ":last_doc"
}
