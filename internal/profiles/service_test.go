package profiles

import (
	"context"
	"testing"
)

func TestServiceRoutesGuestsToGuestRepo(t *testing.T) {
	users := NewMemoryRepo()
	guests := NewMemoryRepo()
	svc := NewService(users, guests)
	ctx := context.Background()

	if _, err := svc.Save(ctx, Profile{UserID: "guest:abc", MBTI: "INTJ"}); err != nil {
		t.Fatalf("save guest: %v", err)
	}
	if _, err := svc.Save(ctx, Profile{UserID: "google:123", MBTI: "ENFP"}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	if _, err := users.Get(ctx, "guest:abc"); err != ErrNotFound {
		t.Fatalf("guest profile leaked into user repo: %v", err)
	}
	if _, err := guests.Get(ctx, "google:123"); err != ErrNotFound {
		t.Fatalf("user profile leaked into guest repo: %v", err)
	}

	got, err := svc.Get(ctx, "guest:abc")
	if err != nil {
		t.Fatalf("get guest: %v", err)
	}
	if got.MBTI != "INTJ" {
		t.Fatalf("unexpected guest profile: %+v", got)
	}
}

func TestServiceNilGuestRepoSharesPrimary(t *testing.T) {
	users := NewMemoryRepo()
	svc := NewService(users, nil)
	ctx := context.Background()

	if _, err := svc.Save(ctx, Profile{UserID: "guest:xyz", MBTI: "ISFJ"}); err != nil {
		t.Fatalf("save guest: %v", err)
	}
	if _, err := users.Get(ctx, "guest:xyz"); err != nil {
		t.Fatalf("expected guest profile in primary repo: %v", err)
	}
}

func TestMemoryRepoDeleteAndUpsertPreservesCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, Profile{UserID: "u1", MBTI: "INTJ"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second, err := repo.Upsert(ctx, Profile{UserID: "u1", MBTI: "INTP"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected CreatedAt preserved across upserts")
	}
	if second.MBTI != "INTP" {
		t.Fatalf("expected updated MBTI, got %q", second.MBTI)
	}

	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "u1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
