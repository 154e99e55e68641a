package quiz

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// OptionCount is the number of options every question carries.
	OptionCount = 4

	// Unanswered marks a question the user has not picked an option for.
	Unanswered = -1

	quizIDPrefix = "quiz_"
)

type Question struct {
	Text          string              `json:"text" yaml:"text" validate:"notblank"`
	Options       [OptionCount]string `json:"options" yaml:"options" validate:"dive,notblank"`
	CorrectAnswer int                 `json:"correctAnswer" yaml:"correct_answer" validate:"min=0,max=3"`
}

type Quiz struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title" validate:"notblank"`
	Description string     `json:"description" yaml:"description"`
	TimeLimit   int        `json:"timeLimit" yaml:"time_limit" validate:"min=0"`
	Questions   []Question `json:"questions" yaml:"questions" validate:"min=1,dive"`
}

// NewQuiz returns an empty quiz with a fresh id and one blank question.
func NewQuiz() Quiz {
	return Quiz{
		ID:        generateQuizID(),
		Questions: []Question{{}},
	}
}

// Clone returns a deep copy. Question options are an array so copying the
// slice of questions copies the options too.
func (q Quiz) Clone() Quiz {
	out := q
	if q.Questions != nil {
		out.Questions = make([]Question, len(q.Questions))
		copy(out.Questions, q.Questions)
	}
	return out
}

func (q Quiz) Timed() bool {
	return q.TimeLimit > 0
}

func (q Quiz) TimeLimitDuration() time.Duration {
	return time.Duration(q.TimeLimit) * time.Second
}

func cloneQuizzes(quizzes []Quiz) []Quiz {
	out := make([]Quiz, 0, len(quizzes))
	for _, item := range quizzes {
		out = append(out, item.Clone())
	}
	return out
}

// OptionLetter maps 0..3 to A..D.
func OptionLetter(index int) string {
	if index < 0 || index >= OptionCount {
		return ""
	}
	return string(rune('A' + index))
}

// ParseOptionLetter maps A..D (any case, surrounding space ignored) to 0..3.
func ParseOptionLetter(answer string) (int, bool) {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 {
		return -1, false
	}
	index := int(letter[0] - 'A')
	if index < 0 || index >= OptionCount {
		return -1, false
	}
	return index, true
}

func generateQuizID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return quizIDPrefix + uuid.NewString()
	}
	return quizIDPrefix + id.String()
}
