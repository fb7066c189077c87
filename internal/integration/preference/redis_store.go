// Package preference persists per-user preferences in Redis.
package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pgdesk/backend/internal/application/adapter"
)

// redisStore implements the adapter.PreferenceStore interface on Redis.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed preference store.
func NewRedisStore(client *redis.Client) adapter.PreferenceStore {
	return &redisStore{
		client: client,
	}
}

func selectedPropertyKey(userID uuid.UUID) string {
	return fmt.Sprintf("pgdesk:selected_property:%s", userID)
}

// GetSelectedProperty returns the persisted selected property for a user.
// A missing key is not an error.
func (s *redisStore) GetSelectedProperty(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	value, err := s.client.Get(ctx, selectedPropertyKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to get selected property: %w", err)
	}

	propertyID, err := uuid.Parse(value)
	if err != nil {
		// A corrupt value behaves like a missing one.
		return uuid.Nil, false, nil
	}
	return propertyID, true, nil
}

// SetSelectedProperty persists the selected property for a user.
func (s *redisStore) SetSelectedProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	if err := s.client.Set(ctx, selectedPropertyKey(userID), propertyID.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to set selected property: %w", err)
	}
	return nil
}

// ClearSelectedProperty removes the persisted selection for a user.
func (s *redisStore) ClearSelectedProperty(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, selectedPropertyKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear selected property: %w", err)
	}
	return nil
}
