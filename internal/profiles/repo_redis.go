package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepo stores guest profiles as JSON values with a TTL, so abandoned
// guest sessions age out on their own. Keys are namespaced "profile:{userID}".
type RedisRepo struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

// NewRedisRepo constructs a RedisRepo with defaults applied.
func NewRedisRepo(client *redis.Client, ttl time.Duration) *RedisRepo {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisRepo{Client: client, Prefix: "profile", TTL: ttl}
}

func (r *RedisRepo) key(userID string) string {
	return r.Prefix + ":" + userID
}

// Get returns the stored profile for a guest.
func (r *RedisRepo) Get(ctx context.Context, userID string) (Profile, error) {
	val, err := r.Client.Get(ctx, r.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Upsert stores the profile and refreshes its TTL.
func (r *RedisRepo) Upsert(ctx context.Context, profile Profile) (Profile, error) {
	now := time.Now().UTC()
	if existing, err := r.Get(ctx, profile.UserID); err == nil {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	payload, err := json.Marshal(profile)
	if err != nil {
		return Profile{}, err
	}
	if err := r.Client.Set(ctx, r.key(profile.UserID), payload, r.TTL).Err(); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Delete removes the guest's profile.
func (r *RedisRepo) Delete(ctx context.Context, userID string) error {
	n, err := r.Client.Del(ctx, r.key(userID)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*RedisRepo)(nil)
