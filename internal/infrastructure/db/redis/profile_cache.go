package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/ports"
)

const profileTTL = 10 * time.Minute

// ProfileCache caches role profiles for the /users/me endpoint.
// Key format: profile:<role>:<user_id>
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

var _ ports.ProfileCache = (*ProfileCache)(nil)

func (c *ProfileCache) Get(ctx context.Context, role domain.Role, userID uuid.UUID) (*domain.RelatedData, bool, error) {
	raw, err := c.client.Get(ctx, c.key(role, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("profile cache get: %w", err)
	}

	var data domain.RelatedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false, fmt.Errorf("profile cache decode: %w", err)
	}
	return &data, true, nil
}

func (c *ProfileCache) Set(ctx context.Context, role domain.Role, userID uuid.UUID, data *domain.RelatedData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(role, userID), raw, profileTTL).Err(); err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return nil
}

func (c *ProfileCache) key(role domain.Role, userID uuid.UUID) string {
	return fmt.Sprintf("profile:%s:%s", role, userID)
}
