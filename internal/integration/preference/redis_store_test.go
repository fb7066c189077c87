package preference

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*redisStore, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &redisStore{client: client}, mini
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing selection is reported as absent", func(t *testing.T) {
		store, _ := newTestStore(t)

		propertyID, ok, err := store.GetSelectedProperty(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected no selection")
		}
		if propertyID != uuid.Nil {
			t.Errorf("expected nil property ID, got %s", propertyID)
		}
	})

	t.Run("set then get round trips", func(t *testing.T) {
		store, _ := newTestStore(t)
		userID := uuid.New()
		propertyID := uuid.New()

		if err := store.SetSelectedProperty(ctx, userID, propertyID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, ok, err := store.GetSelectedProperty(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected a selection")
		}
		if got != propertyID {
			t.Errorf("expected %s, got %s", propertyID, got)
		}
	})

	t.Run("clear removes the selection", func(t *testing.T) {
		store, _ := newTestStore(t)
		userID := uuid.New()

		if err := store.SetSelectedProperty(ctx, userID, uuid.New()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.ClearSelectedProperty(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, ok, err := store.GetSelectedProperty(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected selection to be cleared")
		}
	})

	t.Run("corrupt value behaves like a missing one", func(t *testing.T) {
		store, mini := newTestStore(t)
		userID := uuid.New()

		if err := mini.Set(selectedPropertyKey(userID), "not-a-uuid"); err != nil {
			t.Fatalf("failed to seed value: %v", err)
		}

		_, ok, err := store.GetSelectedProperty(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected corrupt value to be ignored")
		}
	})

	t.Run("selections are scoped per user", func(t *testing.T) {
		store, _ := newTestStore(t)
		userA := uuid.New()
		userB := uuid.New()
		propertyA := uuid.New()

		if err := store.SetSelectedProperty(ctx, userA, propertyA); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, ok, err := store.GetSelectedProperty(ctx, userB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected no selection for other user")
		}
	})
}
