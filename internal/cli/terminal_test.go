package cli

import (
	"bytes"
	"strings"
	"testing"

	"quiz-studio/internal/quiz"
)

func TestRenderTimerThrottlesUntilDanger(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)

	for _, seconds := range []int{40, 39, 31, 30, 29, 11, 10, 9} {
		term.RenderTimer(quiz.TimerView{
			SecondsLeft: seconds,
			Text:        quiz.FormatTime(seconds),
			Level:       levelFor(seconds),
		})
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	got := []string{}
	for _, line := range lines {
		if line != "" {
			got = append(got, line)
		}
	}
	want := []string{
		"Time left: 00:40",
		"Time left: 00:30 (running low)",
		"Time left: 00:10 (hurry!)",
		"Time left: 00:09 (hurry!)",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("timer lines = %q, want %q", got, want)
	}
}

func levelFor(seconds int) quiz.TimerLevel {
	switch {
	case seconds <= 10:
		return quiz.TimerDanger
	case seconds <= 30:
		return quiz.TimerWarning
	default:
		return quiz.TimerNormal
	}
}

func TestRenderLibrary(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)

	term.Render(quiz.ScreenLibrary, quiz.LibraryView{Empty: true})
	if !strings.Contains(out.String(), "No quizzes yet.") {
		t.Fatalf("expected empty state, got %q", out.String())
	}

	out.Reset()
	term.Render(quiz.ScreenLibrary, quiz.LibraryView{Quizzes: []quiz.LibraryItem{
		{ID: "quiz_1", Title: "Capitals", Description: "No description", QuestionCount: 1, TimeLimit: "01:00"},
	}})
	if !strings.Contains(out.String(), "1. Capitals (quiz_1) 1 question, 01:00") {
		t.Fatalf("unexpected library output: %q", out.String())
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0.5); got != "[##########----------]" {
		t.Fatalf("progressBar(0.5) = %q", got)
	}
	if got := progressBar(1); got != "["+strings.Repeat("#", progressWidth)+"]" {
		t.Fatalf("progressBar(1) = %q", got)
	}
}
