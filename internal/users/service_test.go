package users

import (
	"context"
	"testing"
)

func TestUpsertFromAuthValidatesIdentity(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if err := svc.UpsertFromAuth(ctx, User{ID: "", Email: "a@b.c"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if err := svc.UpsertFromAuth(ctx, User{ID: "google:1", Email: " "}); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if err := svc.UpsertFromAuth(ctx, User{ID: "google:1", Email: "a@b.c", FullName: "Test User"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := svc.GetByID(ctx, "google:1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != "Test User" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, User{ID: "google:1", Email: "a@b.c"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	first, _ := repo.GetByID(ctx, "google:1")

	if err := repo.Upsert(ctx, User{ID: "google:1", Email: "new@b.c"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	second, _ := repo.GetByID(ctx, "google:1")

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected CreatedAt preserved")
	}
	if second.Email != "new@b.c" {
		t.Fatalf("expected updated email, got %q", second.Email)
	}
}
