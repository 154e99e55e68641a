package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

// These tests need a live server: QUIZ_TEST_REDIS_URL=redis://localhost:6379/15
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	url := os.Getenv("QUIZ_TEST_REDIS_URL")
	if url == "" {
		t.Skip("QUIZ_TEST_REDIS_URL not set")
	}

	client, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}

	key := "quiz-test:" + uuid.NewString()
	t.Cleanup(func() {
		_ = client.Del(context.Background(), key).Err()
		_ = client.Close()
	})
	return NewRedisStore(client, key)
}

func TestRedisStoreLoadMissingKey(t *testing.T) {
	store := newTestRedisStore(t)

	data, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil for missing key, got %q", data)
	}
}

func TestRedisStoreSaveAndLoad(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, []byte(`[]`)); err != nil {
		t.Fatalf("Save overwrite failed: %v", err)
	}

	data, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `[]` {
		t.Fatalf("expected last write to win, got %q", data)
	}
}

func TestDialRejectsBadURL(t *testing.T) {
	if _, err := Dial(context.Background(), "not-a-url"); err == nil {
		t.Fatalf("expected error for invalid redis URL")
	}
}
