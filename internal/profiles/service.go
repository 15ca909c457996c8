package profiles

import (
	"context"
	"strings"
)

// Service routes profile operations to the right store: authenticated users
// persist in the primary repo, guest principals in the TTL'd guest repo.
type Service struct {
	Users  Repo
	Guests Repo
}

// NewService constructs a Service. If guests is nil, guest profiles share
// the primary repo (dev/memory mode).
func NewService(users, guests Repo) *Service {
	if guests == nil {
		guests = users
	}
	return &Service{Users: users, Guests: guests}
}

func (s *Service) repoFor(userID string) Repo {
	if strings.HasPrefix(userID, "guest:") {
		return s.Guests
	}
	return s.Users
}

// Get returns the stored profile for a principal.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	return s.repoFor(userID).Get(ctx, userID)
}

// Save stores the profile for its principal.
func (s *Service) Save(ctx context.Context, profile Profile) (Profile, error) {
	return s.repoFor(profile.UserID).Upsert(ctx, profile)
}

// Delete removes the principal's profile.
func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.repoFor(userID).Delete(ctx, userID)
}
