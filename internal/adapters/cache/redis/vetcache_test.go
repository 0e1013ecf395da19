package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/clinic"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestVetCacheMissThenHit(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	c := NewVetCache(client, time.Minute)

	_, ok, err := c.GetVets(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	vets := []clinic.Vet{
		{ID: 1, FirstName: "James", LastName: "Carter", Specialties: []clinic.Specialty{}},
		{ID: 2, FirstName: "Helen", LastName: "Leary", Specialties: []clinic.Specialty{{ID: 1, Name: "radiology"}}},
	}
	require.NoError(t, c.SetVets(ctx, vets))

	got, ok, err := c.GetVets(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, vets, got)
}

func TestVetCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	c := NewVetCache(client, time.Minute)

	require.NoError(t, c.SetVets(ctx, []clinic.Vet{{ID: 1, FirstName: "A", LastName: "B", Specialties: []clinic.Specialty{}}}))
	require.NoError(t, c.InvalidateVets(ctx))

	_, ok, err := c.GetVets(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVetCacheExpires(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	c := NewVetCache(client, 30*time.Second)

	require.NoError(t, c.SetVets(ctx, []clinic.Vet{}))
	assert.Equal(t, 30*time.Second, mr.TTL(vetsKey))

	mr.FastForward(31 * time.Second)

	_, ok, err := c.GetVets(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVetCacheCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	c := NewVetCache(client, 0)

	require.NoError(t, mr.Set(vetsKey, "{not json"))

	_, ok, err := c.GetVets(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists(vetsKey))
}
