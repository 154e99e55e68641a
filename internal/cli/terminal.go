package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"quiz-studio/internal/quiz"
)

const progressWidth = 20

// Terminal draws controller screens as plain text. Output from the command
// loop and from the countdown goroutine goes through the same lock.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Println(args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Render(screen quiz.Screen, view any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out)
	switch v := view.(type) {
	case quiz.HomeView:
		renderHome(t.out, v)
	case quiz.EditorView:
		renderEditor(t.out, v)
	case quiz.LibraryView:
		renderLibrary(t.out, v)
	case quiz.QuestionView:
		renderQuestion(t.out, v)
	case quiz.ResultView:
		renderResult(t.out, v)
	default:
		fmt.Fprintf(t.out, "[%s]\n", screen)
	}
}

func (t *Terminal) Notify(notice quiz.Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch notice.Level {
	case quiz.NoticeWarning:
		fmt.Fprintf(t.out, "! %s\n", notice.Message)
	case quiz.NoticeError:
		fmt.Fprintf(t.out, "error: %s\n", notice.Message)
	default:
		fmt.Fprintln(t.out, notice.Message)
	}
}

// RenderTimer prints the clock every ten seconds and every second once it
// is in the danger zone.
func (t *Terminal) RenderTimer(view quiz.TimerView) {
	if view.Level != quiz.TimerDanger && view.SecondsLeft%10 != 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "\n%s\n", timerLabel(view))
}

func renderHome(out io.Writer, v quiz.HomeView) {
	fmt.Fprintln(out, "Quiz Studio")
	switch v.QuizCount {
	case 0:
		fmt.Fprintln(out, "You have no saved quizzes yet.")
	case 1:
		fmt.Fprintln(out, "You have 1 saved quiz.")
	default:
		fmt.Fprintf(out, "You have %d saved quizzes.\n", v.QuizCount)
	}
	fmt.Fprintln(out, "Type 'new' to create a quiz or 'library' to browse.")
}

func renderEditor(out io.Writer, v quiz.EditorView) {
	if v.Existing {
		fmt.Fprintf(out, "Editing quiz %s\n", v.ID)
	} else {
		fmt.Fprintln(out, "New quiz")
	}
	fmt.Fprintf(out, "Title: %s\n", v.Title)
	fmt.Fprintf(out, "Description: %s\n", v.Description)
	if v.TimeLimit > 0 {
		fmt.Fprintf(out, "Time limit: %d seconds (%s)\n", v.TimeLimit, quiz.FormatTime(v.TimeLimit))
	} else {
		fmt.Fprintln(out, "Time limit: none")
	}

	for _, question := range v.Questions {
		fmt.Fprintf(out, "\nQ%d: %s\n", question.Number, question.Text)
		for option, text := range question.Options {
			marker := " "
			if option == question.CorrectAnswer {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %s. %s\n", marker, quiz.OptionLetter(option), text)
		}
	}
}

func renderLibrary(out io.Writer, v quiz.LibraryView) {
	if v.Empty {
		fmt.Fprintln(out, "No quizzes yet. Type 'new' to create one.")
		return
	}

	fmt.Fprintln(out, "Your quizzes:")
	for idx, item := range v.Quizzes {
		summary := fmt.Sprintf("%d questions", item.QuestionCount)
		if item.QuestionCount == 1 {
			summary = "1 question"
		}
		if item.TimeLimit != "" {
			summary += ", " + item.TimeLimit
		}
		fmt.Fprintf(out, "%d. %s (%s) %s\n", idx+1, item.Title, item.ID, summary)
		fmt.Fprintf(out, "   %s\n", item.Description)
	}
}

func renderQuestion(out io.Writer, v quiz.QuestionView) {
	header := v.QuizTitle
	if v.ReviewMode {
		header += " [review]"
	}
	fmt.Fprintln(out, header)
	fmt.Fprintf(out, "%s %s\n", v.Counter, progressBar(v.Progress))
	if v.ShowTimer {
		fmt.Fprintln(out, timerLabel(v.Timer))
	}

	fmt.Fprintf(out, "\n%s\n\n", v.Text)
	for _, option := range v.Options {
		fmt.Fprintf(out, "%s. %s%s\n", option.Letter, option.Text, markSuffix(option.Mark))
	}

	hints := []string{}
	if !v.ReviewMode {
		hints = append(hints, "answer A-D")
	}
	if v.PrevEnabled {
		hints = append(hints, "prev")
	}
	hints = append(hints, fmt.Sprintf("next (%s)", v.NextLabel))
	fmt.Fprintf(out, "\n%s\n", strings.Join(hints, " | "))
}

func renderResult(out io.Writer, v quiz.ResultView) {
	fmt.Fprintf(out, "Results: %s\n", v.QuizTitle)
	if v.TimedOut {
		fmt.Fprintln(out, "Time ran out.")
	}
	fmt.Fprintf(out, "Score: %s (%d%%)\n", v.Fraction, v.Percentage)
	fmt.Fprintln(out, v.Message)
	if v.ShowTimeTaken {
		fmt.Fprintf(out, "Time taken: %s\n", v.TimeTaken)
	}
	fmt.Fprintln(out, "Type 'review' to see the answers or 'library' to go back.")
}

func timerLabel(view quiz.TimerView) string {
	switch view.Level {
	case quiz.TimerDanger:
		return fmt.Sprintf("Time left: %s (hurry!)", view.Text)
	case quiz.TimerWarning:
		return fmt.Sprintf("Time left: %s (running low)", view.Text)
	default:
		return fmt.Sprintf("Time left: %s", view.Text)
	}
}

func markSuffix(mark quiz.OptionMark) string {
	switch mark {
	case quiz.MarkSelected:
		return "  <- your answer"
	case quiz.MarkCorrect:
		return "  (correct)"
	case quiz.MarkIncorrect:
		return "  (your answer, wrong)"
	default:
		return ""
	}
}

func progressBar(progress float64) string {
	filled := int(progress*progressWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > progressWidth {
		filled = progressWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + "]"
}
