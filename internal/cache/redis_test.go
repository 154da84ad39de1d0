package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoleCache(t *testing.T, ttl time.Duration) (*RoleCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient(context.Background(), Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRoleCache(client, ttl), mr
}

func TestRoleCache_SetAndGet(t *testing.T) {
	c, mr := setupRoleCache(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetRoles(ctx, "u1", []domain.Role{domain.RoleEmployer, domain.RoleSpecialist}))

	roles, found, err := c.GetRoles(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []domain.Role{domain.RoleEmployer, domain.RoleSpecialist}, roles)
	assert.Equal(t, 10*time.Minute, mr.TTL("prostaff:roles:u1"))
}

func TestRoleCache_Miss(t *testing.T) {
	c, _ := setupRoleCache(t, time.Minute)

	roles, found, err := c.GetRoles(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, roles)
}

func TestRoleCache_EmptyRoleSetIsAHit(t *testing.T) {
	c, _ := setupRoleCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetRoles(ctx, "u2", nil))

	roles, found, err := c.GetRoles(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, roles)
}

func TestRoleCache_Expires(t *testing.T) {
	c, mr := setupRoleCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetRoles(ctx, "u3", []domain.Role{domain.RoleAdmin}))
	mr.FastForward(2 * time.Minute)

	_, found, err := c.GetRoles(ctx, "u3")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRoleCache_CorruptValue(t *testing.T) {
	c, mr := setupRoleCache(t, time.Minute)
	require.NoError(t, mr.Set("prostaff:roles:u4", "not-json"))

	_, found, err := c.GetRoles(context.Background(), "u4")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewClient(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}
