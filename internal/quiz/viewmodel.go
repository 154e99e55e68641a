package quiz

import "fmt"

type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenCreate   Screen = "create"
	ScreenLibrary  Screen = "library"
	ScreenTakeQuiz Screen = "take_quiz"
	ScreenResults  Screen = "results"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level   NoticeLevel
	Message string
}

const (
	NextLabel          = "Next"
	FinishLabel        = "Finish Quiz"
	BackToResultsLabel = "Back to Results"

	noDescription = "No description"
)

type TimerLevel string

const (
	TimerNormal  TimerLevel = ""
	TimerWarning TimerLevel = "warning"
	TimerDanger  TimerLevel = "danger"
)

type HomeView struct {
	QuizCount int
}

type EditorQuestion struct {
	Number        int
	Text          string
	Options       [OptionCount]string
	CorrectAnswer int
}

type EditorView struct {
	ID          string
	Title       string
	Description string
	TimeLimit   int
	Existing    bool
	Questions   []EditorQuestion
}

type LibraryItem struct {
	ID            string
	Title         string
	Description   string
	QuestionCount int
	TimeLimit     string
}

type LibraryView struct {
	Quizzes []LibraryItem
	Empty   bool
}

type OptionView struct {
	Letter string
	Text   string
	Mark   OptionMark
}

type TimerView struct {
	SecondsLeft int
	Text        string
	Level       TimerLevel
}

type QuestionView struct {
	QuizTitle   string
	Number      int
	Total       int
	Counter     string
	Text        string
	Options     []OptionView
	Progress    float64
	ShowTimer   bool
	Timer       TimerView
	ReviewMode  bool
	PrevEnabled bool
	NextLabel   string
}

type ResultView struct {
	QuizTitle     string
	Correct       int
	Total         int
	Percentage    int
	Fraction      string
	Message       string
	ShowTimeTaken bool
	TimeTaken     string
	TimedOut      bool
}

// FormatTime renders seconds as mm:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func timerLevel(secondsLeft int) TimerLevel {
	switch {
	case secondsLeft <= 10:
		return TimerDanger
	case secondsLeft <= 30:
		return TimerWarning
	default:
		return TimerNormal
	}
}

func newTimerView(secondsLeft int) TimerView {
	return TimerView{
		SecondsLeft: secondsLeft,
		Text:        FormatTime(secondsLeft),
		Level:       timerLevel(secondsLeft),
	}
}

func newEditorView(e *Editor) EditorView {
	draft := e.draft
	view := EditorView{
		ID:          draft.ID,
		Title:       draft.Title,
		Description: draft.Description,
		TimeLimit:   draft.TimeLimit,
		Existing:    e.existing,
		Questions:   make([]EditorQuestion, 0, len(draft.Questions)),
	}
	for idx, question := range draft.Questions {
		view.Questions = append(view.Questions, EditorQuestion{
			Number:        idx + 1,
			Text:          question.Text,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
		})
	}
	return view
}

func newLibraryView(quizzes []Quiz) LibraryView {
	view := LibraryView{
		Quizzes: make([]LibraryItem, 0, len(quizzes)),
		Empty:   len(quizzes) == 0,
	}
	for _, item := range quizzes {
		description := item.Description
		if description == "" {
			description = noDescription
		}
		timeLimit := ""
		if item.Timed() {
			timeLimit = FormatTime(item.TimeLimit)
		}
		view.Quizzes = append(view.Quizzes, LibraryItem{
			ID:            item.ID,
			Title:         item.Title,
			Description:   description,
			QuestionCount: len(item.Questions),
			TimeLimit:     timeLimit,
		})
	}
	return view
}

func newQuestionView(s *Session) QuestionView {
	index := s.current
	total := len(s.quiz.Questions)
	question := s.quiz.Questions[index]
	marks := s.Marks(index)

	options := make([]OptionView, 0, OptionCount)
	for option, text := range question.Options {
		options = append(options, OptionView{
			Letter: OptionLetter(option),
			Text:   text,
			Mark:   marks[option],
		})
	}

	nextLabel := NextLabel
	if index == total-1 {
		nextLabel = FinishLabel
		if s.reviewMode {
			nextLabel = BackToResultsLabel
		}
	}

	return QuestionView{
		QuizTitle:   s.quiz.Title,
		Number:      index + 1,
		Total:       total,
		Counter:     fmt.Sprintf("Question %d of %d", index+1, total),
		Text:        question.Text,
		Options:     options,
		Progress:    float64(index+1) / float64(total),
		ShowTimer:   s.quiz.Timed() && !s.reviewMode,
		Timer:       newTimerView(s.timeLeft),
		ReviewMode:  s.reviewMode,
		PrevEnabled: index > 0,
		NextLabel:   nextLabel,
	}
}

func newResultView(s *Session) ResultView {
	result := s.Result()
	view := ResultView{
		QuizTitle:     s.quiz.Title,
		Correct:       result.Correct,
		Total:         result.Total,
		Percentage:    result.Percentage,
		Fraction:      fmt.Sprintf("%d/%d", result.Correct, result.Total),
		Message:       result.Message,
		ShowTimeTaken: result.Timed,
		TimedOut:      s.timedOut,
	}
	if result.Timed {
		view.TimeTaken = FormatTime(result.TimeTaken)
	}
	return view
}
