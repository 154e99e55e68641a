package quiz

import "context"

// Editor holds the quiz being authored. Changes stay in the buffer until Save
// hands a copy to the library.
type Editor struct {
	draft    Quiz
	existing bool
}

// NewEditor starts a buffer for a brand new quiz.
func NewEditor() *Editor {
	return &Editor{draft: NewQuiz()}
}

// EditExisting copies a saved quiz into a new buffer.
func EditExisting(lib *Library, quizID string) (*Editor, error) {
	q, err := lib.Get(quizID)
	if err != nil {
		return nil, err
	}
	return &Editor{draft: q, existing: true}, nil
}

// Draft returns a copy of the buffer.
func (e *Editor) Draft() Quiz {
	return e.draft.Clone()
}

// Existing reports whether the buffer was loaded from the library.
func (e *Editor) Existing() bool {
	return e.existing
}

func (e *Editor) SetTitle(title string) {
	e.draft.Title = title
}

func (e *Editor) SetDescription(description string) {
	e.draft.Description = description
}

// SetTimeLimit stores the limit in seconds; negative values mean untimed.
func (e *Editor) SetTimeLimit(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	e.draft.TimeLimit = seconds
}

func (e *Editor) AddQuestion() int {
	e.draft.Questions = append(e.draft.Questions, Question{})
	return len(e.draft.Questions) - 1
}

// RemoveQuestion deletes by position. The last remaining question cannot be
// removed; later questions shift down by one.
func (e *Editor) RemoveQuestion(index int) error {
	if len(e.draft.Questions) <= 1 {
		return ErrLastQuestion
	}
	if index < 0 || index >= len(e.draft.Questions) {
		return ErrQuestionOutOfRange
	}

	kept := make([]Question, 0, len(e.draft.Questions)-1)
	kept = append(kept, e.draft.Questions[:index]...)
	kept = append(kept, e.draft.Questions[index+1:]...)
	e.draft.Questions = kept
	return nil
}

func (e *Editor) UpdateQuestionText(index int, text string) error {
	if index < 0 || index >= len(e.draft.Questions) {
		return ErrQuestionOutOfRange
	}
	e.draft.Questions[index].Text = text
	return nil
}

func (e *Editor) UpdateOptionText(index, option int, text string) error {
	if index < 0 || index >= len(e.draft.Questions) {
		return ErrQuestionOutOfRange
	}
	if option < 0 || option >= OptionCount {
		return ErrOptionOutOfRange
	}
	e.draft.Questions[index].Options[option] = text
	return nil
}

func (e *Editor) UpdateCorrectAnswer(index, option int) error {
	if index < 0 || index >= len(e.draft.Questions) {
		return ErrQuestionOutOfRange
	}
	if option < 0 || option >= OptionCount {
		return ErrOptionOutOfRange
	}
	e.draft.Questions[index].CorrectAnswer = option
	return nil
}

// Save validates the buffer and writes it to the library. On failure the
// buffer is left exactly as it was.
func (e *Editor) Save(ctx context.Context, lib *Library) (Quiz, error) {
	saved, err := lib.Put(ctx, e.draft)
	if err != nil {
		return Quiz{}, err
	}
	e.draft = saved.Clone()
	e.existing = true
	return saved, nil
}
