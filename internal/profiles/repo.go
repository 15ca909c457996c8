package profiles

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user has no stored profile.
var ErrNotFound = errors.New("profile not found")

// Repo stores one profile per principal.
type Repo interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Upsert(ctx context.Context, profile Profile) (Profile, error)
	Delete(ctx context.Context, userID string) error
}
