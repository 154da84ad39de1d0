package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const roleKeyPrefix = "prostaff:roles:"

// Options configures the redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects to redis and pings it.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	const op = "cache.NewClient"
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

// RoleCache stores user roles as JSON arrays with a fixed TTL.
type RoleCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ portsrepo.RoleCache = (*RoleCache)(nil)

func NewRoleCache(client redis.Cmdable, ttl time.Duration) *RoleCache {
	return &RoleCache{client: client, ttl: ttl}
}

func roleKey(userID string) string {
	return roleKeyPrefix + userID
}

func (c *RoleCache) GetRoles(ctx context.Context, userID string) ([]domain.Role, bool, error) {
	const op = "cache.GetRoles"
	val, err := c.client.Get(ctx, roleKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	var roles []domain.Role
	if err := json.Unmarshal(val, &roles); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return roles, true, nil
}

func (c *RoleCache) SetRoles(ctx context.Context, userID string, roles []domain.Role) error {
	const op = "cache.SetRoles"
	if roles == nil {
		roles = []domain.Role{}
	}
	data, err := json.Marshal(roles)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.client.Set(ctx, roleKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
