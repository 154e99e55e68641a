package quiz

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Library is the source of truth for saved quizzes. Every mutation writes the
// whole list back to the store; callers only ever see copies.
type Library struct {
	store BlobStore
	log   zerolog.Logger

	mu      sync.Mutex
	quizzes []Quiz
}

func NewLibrary(store BlobStore, log zerolog.Logger) *Library {
	return &Library{
		store: store,
		log:   log.With().Str("component", "library").Logger(),
	}
}

// Load replaces the in-memory list with the stored document. A missing or
// malformed document yields an empty library; only a failing store is an error.
func (l *Library) Load(ctx context.Context) error {
	data, err := l.store.Load(ctx)
	if err != nil {
		return storageError("load", err)
	}

	quizzes, decodeErr := DecodeLibrary(data)
	if decodeErr != nil {
		l.log.Warn().Err(decodeErr).Int("bytes", len(data)).Msg("Stored library is malformed, starting empty")
	}

	l.mu.Lock()
	l.quizzes = quizzes
	l.mu.Unlock()

	l.log.Debug().Int("quizzes", len(quizzes)).Msg("Library loaded")
	return nil
}

func (l *Library) List() []Quiz {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneQuizzes(l.quizzes)
}

func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.quizzes)
}

func (l *Library) Get(quizID string) (Quiz, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(quizID)
	if idx < 0 {
		return Quiz{}, ErrQuizNotFound
	}
	return l.quizzes[idx].Clone(), nil
}

// Put validates q and stores a copy of it: in place when the id is already
// present, appended otherwise. Nothing changes when validation fails.
func (l *Library) Put(ctx context.Context, q Quiz) (Quiz, error) {
	q = q.Clone()
	q.Title = strings.TrimSpace(q.Title)
	if err := Validate(q); err != nil {
		return Quiz{}, err
	}
	if strings.TrimSpace(q.ID) == "" {
		q.ID = generateQuizID()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := l.indexOf(q.ID); idx >= 0 {
		l.quizzes[idx] = q
	} else {
		l.quizzes = append(l.quizzes, q)
	}

	if err := l.persistLocked(ctx); err != nil {
		return Quiz{}, err
	}
	return q.Clone(), nil
}

func (l *Library) Delete(ctx context.Context, quizID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(quizID)
	if idx < 0 {
		return ErrQuizNotFound
	}

	kept := make([]Quiz, 0, len(l.quizzes)-1)
	kept = append(kept, l.quizzes[:idx]...)
	kept = append(kept, l.quizzes[idx+1:]...)
	l.quizzes = kept

	return l.persistLocked(ctx)
}

func (l *Library) DeleteAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.quizzes = nil
	return l.persistLocked(ctx)
}

func (l *Library) indexOf(quizID string) int {
	for idx := range l.quizzes {
		if l.quizzes[idx].ID == quizID {
			return idx
		}
	}
	return -1
}

// persistLocked writes the full list. A failed write leaves the in-memory
// list as mutated; the next successful write overwrites the stored copy.
func (l *Library) persistLocked(ctx context.Context) error {
	data, err := EncodeLibrary(l.quizzes)
	if err != nil {
		return storageError("encode", err)
	}
	if err := l.store.Save(ctx, data); err != nil {
		l.log.Error().Err(err).Int("quizzes", len(l.quizzes)).Msg("Failed to persist library")
		return storageError("save", err)
	}
	l.log.Debug().Int("quizzes", len(l.quizzes)).Int("bytes", len(data)).Msg("Library persisted")
	return nil
}

// EncodeLibrary serialises the list as one JSON array. An empty library
// encodes as [] rather than null.
func EncodeLibrary(quizzes []Quiz) ([]byte, error) {
	if quizzes == nil {
		quizzes = []Quiz{}
	}
	return json.Marshal(quizzes)
}

// DecodeLibrary parses a stored document. Empty input is an empty library.
// On malformed input it returns an empty library together with the parse error.
func DecodeLibrary(data []byte) ([]Quiz, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Quiz{}, nil
	}

	var quizzes []Quiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		return []Quiz{}, err
	}
	if quizzes == nil {
		quizzes = []Quiz{}
	}
	for idx := range quizzes {
		if quizzes[idx].Questions == nil {
			quizzes[idx].Questions = []Question{}
		}
	}
	return quizzes, nil
}
