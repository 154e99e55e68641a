package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"quiz-studio/internal/quiz"
)

func newTestSQLiteStore(t *testing.T, path string) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(path, "quizzes")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
		_ = os.Remove(path + "-wal")
		_ = os.Remove(path + "-shm")
		_ = os.Remove(path + "-journal")
	})
	return store
}

func sampleQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:          "quiz_1",
		Title:       "Arithmetic",
		Description: "Warm-up",
		TimeLimit:   90,
		Questions: []quiz.Question{
			{Text: "2+2?", Options: [4]string{"4", "3", "5", "22"}, CorrectAnswer: 0},
			{Text: "3*3?", Options: [4]string{"6", "9", "33", "0"}, CorrectAnswer: 1},
		},
	}
}

func TestSQLiteStoreLoadEmpty(t *testing.T) {
	store := newTestSQLiteStore(t, filepath.Join(t.TempDir(), "test.db"))

	data, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil blob for empty store, got %q", data)
	}

	_, ok, err := store.UpdatedAt(context.Background())
	if err != nil || ok {
		t.Fatalf("UpdatedAt on empty store = (%t, %v), want (false, nil)", ok, err)
	}
}

func TestSQLiteStoreSaveOverwrites(t *testing.T) {
	store := newTestSQLiteStore(t, filepath.Join(t.TempDir(), "test.db"))
	ctx := context.Background()

	if err := store.Save(ctx, []byte(`[1]`)); err != nil {
		t.Fatalf("Save first failed: %v", err)
	}
	if err := store.Save(ctx, []byte(`[2]`)); err != nil {
		t.Fatalf("Save second failed: %v", err)
	}

	data, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `[2]` {
		t.Fatalf("expected last write to win, got %q", data)
	}

	var rows int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blobs`).Scan(&rows); err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected one blob row, got %d", rows)
	}

	updatedAt, ok, err := store.UpdatedAt(ctx)
	if err != nil || !ok || updatedAt.IsZero() {
		t.Fatalf("UpdatedAt = (%v, %t, %v), want a timestamp", updatedAt, ok, err)
	}
}

func TestSQLiteStoreLibraryRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first := newTestSQLiteStore(t, path)
	lib := quiz.NewLibrary(first, zerolog.Nop())
	if err := lib.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	original := sampleQuiz()
	if _, err := lib.Put(ctx, original); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	_ = first.Close()

	second := newTestSQLiteStore(t, path)
	reloaded := quiz.NewLibrary(second, zerolog.Nop())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	got, err := reloaded.Get(original.ID)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, original)
	}
}

func TestSQLiteStoreKeysAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store := newTestSQLiteStore(t, path)
	if err := store.Save(ctx, []byte(`["a"]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	other, err := NewSQLiteStore(path, "other")
	if err != nil {
		t.Fatalf("NewSQLiteStore other failed: %v", err)
	}
	defer other.Close()

	data, err := other.Load(ctx)
	if err != nil {
		t.Fatalf("Load other failed: %v", err)
	}
	if data != nil {
		t.Fatalf("expected other key to be empty, got %q", data)
	}
}
