package quiz

import (
	"strings"
	"testing"
)

func sampleQuiz() Quiz {
	return Quiz{
		ID:          "quiz_sample",
		Title:       "Sample",
		Description: "Four questions",
		Questions: []Question{
			{Text: "Q1", Options: [4]string{"a", "b", "c", "d"}, CorrectAnswer: 0},
			{Text: "Q2", Options: [4]string{"a", "b", "c", "d"}, CorrectAnswer: 1},
			{Text: "Q3", Options: [4]string{"a", "b", "c", "d"}, CorrectAnswer: 2},
			{Text: "Q4", Options: [4]string{"a", "b", "c", "d"}, CorrectAnswer: 3},
		},
	}
}

func TestNewQuizHasIDAndOneBlankQuestion(t *testing.T) {
	q := NewQuiz()
	if !strings.HasPrefix(q.ID, quizIDPrefix) {
		t.Fatalf("unexpected quiz id format: %q", q.ID)
	}
	if len(q.Questions) != 1 {
		t.Fatalf("expected one blank question, got %d", len(q.Questions))
	}
	if q.Questions[0] != (Question{}) {
		t.Fatalf("expected blank question, got %+v", q.Questions[0])
	}

	other := NewQuiz()
	if other.ID == q.ID {
		t.Fatalf("expected distinct ids, both were %q", q.ID)
	}
}

func TestQuizCloneIsIndependent(t *testing.T) {
	original := sampleQuiz()
	clone := original.Clone()

	clone.Title = "Changed"
	clone.Questions[0].Text = "Changed"
	clone.Questions[0].Options[2] = "Changed"
	clone.Questions = append(clone.Questions, Question{})

	if original.Title != "Sample" {
		t.Fatalf("title leaked into original: %q", original.Title)
	}
	if original.Questions[0].Text != "Q1" || original.Questions[0].Options[2] != "c" {
		t.Fatalf("question edit leaked into original: %+v", original.Questions[0])
	}
	if len(original.Questions) != 4 {
		t.Fatalf("append leaked into original: %d questions", len(original.Questions))
	}
}

func TestOptionLetters(t *testing.T) {
	for idx, want := range []string{"A", "B", "C", "D"} {
		if got := OptionLetter(idx); got != want {
			t.Fatalf("OptionLetter(%d) = %q, want %q", idx, got, want)
		}
	}
	if got := OptionLetter(4); got != "" {
		t.Fatalf("OptionLetter(4) = %q, want empty", got)
	}

	if got, ok := ParseOptionLetter(" c "); !ok || got != 2 {
		t.Fatalf("ParseOptionLetter(\" c \") = (%d, %t), want (2, true)", got, ok)
	}
	for _, input := range []string{"", "E", "AB", "1"} {
		if _, ok := ParseOptionLetter(input); ok {
			t.Fatalf("expected ParseOptionLetter(%q) to fail", input)
		}
	}
}
