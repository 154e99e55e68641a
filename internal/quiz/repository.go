package quiz

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrValidation         = errors.New("validation failed")
	ErrLastQuestion       = errors.New("quiz needs at least one question")
	ErrStorage            = errors.New("storage failure")
	ErrNoDraft            = errors.New("no quiz is being edited")
	ErrNoSession          = errors.New("no quiz in progress")
	ErrNoQuestions        = errors.New("quiz has no questions")
	ErrNotInProgress      = errors.New("quiz is not in progress")
	ErrNotFinished        = errors.New("quiz has not been finished")
	ErrReviewMode         = errors.New("answers cannot change while reviewing")
	ErrQuestionOutOfRange = errors.New("question index out of range")
	ErrOptionOutOfRange   = errors.New("option index out of range")
)

const lastQuestionMessage = "You need at least one question in your quiz."

// ValidationError names the first field that blocked a save.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// BlobStore persists the whole library as one opaque document.
// Load returns nil, nil when nothing has been stored yet.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
