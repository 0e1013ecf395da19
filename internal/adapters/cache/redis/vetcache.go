package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"petclinic/internal/domain/clinic"

	"github.com/redis/go-redis/v9"
)

const (
	vetsKey    = "petclinic:vets:all"
	defaultTTL = 5 * time.Minute
)

type cachedSpecialty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type cachedVet struct {
	ID          int64             `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Specialties []cachedSpecialty `json:"specialties"`
}

// VetCache guarda el listado completo de vets (con specialties) bajo una sola key.
type VetCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVetCache(client *redis.Client, ttl time.Duration) *VetCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &VetCache{client: client, ttl: ttl}
}

// Connect crea el cliente y hace ping.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (c *VetCache) GetVets(ctx context.Context) ([]clinic.Vet, bool, error) {
	raw, err := c.client.Get(ctx, vetsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cached []cachedVet
	if err := json.Unmarshal(raw, &cached); err != nil {
		// entrada corrupta: se trata como miss
		_ = c.client.Del(ctx, vetsKey).Err()
		return nil, false, nil
	}

	out := make([]clinic.Vet, 0, len(cached))
	for _, cv := range cached {
		v := clinic.Vet{
			ID:          cv.ID,
			FirstName:   cv.FirstName,
			LastName:    cv.LastName,
			Specialties: make([]clinic.Specialty, 0, len(cv.Specialties)),
		}
		for _, s := range cv.Specialties {
			v.Specialties = append(v.Specialties, clinic.Specialty{ID: s.ID, Name: s.Name})
		}
		out = append(out, v)
	}
	return out, true, nil
}

func (c *VetCache) SetVets(ctx context.Context, vets []clinic.Vet) error {
	cached := make([]cachedVet, 0, len(vets))
	for _, v := range vets {
		cv := cachedVet{
			ID:          v.ID,
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			Specialties: make([]cachedSpecialty, 0, len(v.Specialties)),
		}
		for _, s := range v.Specialties {
			cv.Specialties = append(cv.Specialties, cachedSpecialty{ID: s.ID, Name: s.Name})
		}
		cached = append(cached, cv)
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, vetsKey, raw, c.ttl).Err()
}

func (c *VetCache) InvalidateVets(ctx context.Context) error {
	return c.client.Del(ctx, vetsKey).Err()
}
