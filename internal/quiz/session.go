package quiz

import "time"

type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateFinished:
		return "finished"
	default:
		return "not_started"
	}
}

// Session is one attempt at a quiz. It works on its own copy of the quiz so
// the library can change underneath it without affecting the attempt.
//
// A Session is not safe for concurrent use; the Controller serialises access.
type Session struct {
	quiz       Quiz
	state      State
	current    int
	answers    []int
	reviewMode bool
	timeLeft   int
	timedOut   bool
	startedAt  time.Time
	finishedAt time.Time
}

// StartSession begins an attempt: every answer unset, first question shown,
// full time limit on the clock.
func StartSession(q Quiz, now time.Time) *Session {
	q = q.Clone()
	answers := make([]int, len(q.Questions))
	for idx := range answers {
		answers[idx] = Unanswered
	}
	return &Session{
		quiz:      q,
		state:     StateInProgress,
		answers:   answers,
		timeLeft:  q.TimeLimit,
		startedAt: now,
	}
}

func (s *Session) Quiz() Quiz {
	return s.quiz.Clone()
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) CurrentIndex() int {
	return s.current
}

func (s *Session) QuestionCount() int {
	return len(s.quiz.Questions)
}

func (s *Session) ReviewMode() bool {
	return s.reviewMode
}

func (s *Session) TimeLeft() int {
	return s.timeLeft
}

func (s *Session) TimedOut() bool {
	return s.timedOut
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

func (s *Session) FinishedAt() time.Time {
	return s.finishedAt
}

// Answers returns a copy of the recorded picks, Unanswered where skipped.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// CountdownActive reports whether the clock should be ticking.
func (s *Session) CountdownActive() bool {
	return s.state == StateInProgress && !s.reviewMode && s.quiz.Timed()
}

// SelectAnswer records a pick for the current question, replacing any earlier one.
func (s *Session) SelectAnswer(option int) error {
	if s.reviewMode {
		return ErrReviewMode
	}
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if option < 0 || option >= OptionCount {
		return ErrOptionOutOfRange
	}
	s.answers[s.current] = option
	return nil
}

// GoToQuestion moves to any question, answered or not. Allowed while taking
// the quiz and while reviewing it.
func (s *Session) GoToQuestion(index int) error {
	if s.state == StateNotStarted || (s.state == StateFinished && !s.reviewMode) {
		return ErrNotInProgress
	}
	if index < 0 || index >= len(s.quiz.Questions) {
		return ErrQuestionOutOfRange
	}
	s.current = index
	return nil
}

func (s *Session) Next() error {
	return s.GoToQuestion(s.current + 1)
}

func (s *Session) Previous() error {
	return s.GoToQuestion(s.current - 1)
}

func (s *Session) OnLastQuestion() bool {
	return s.current == len(s.quiz.Questions)-1
}

// Finish ends the attempt. Finishing twice is a no-op that returns the same result.
func (s *Session) Finish(now time.Time) Result {
	if s.state == StateInProgress {
		s.state = StateFinished
		s.finishedAt = now
	}
	return s.Result()
}

// Tick takes one second off the clock and reports whether that ran it out.
// It does nothing unless the countdown is active.
func (s *Session) Tick(now time.Time) bool {
	if !s.CountdownActive() {
		return false
	}
	s.timeLeft--
	if s.timeLeft > 0 {
		return false
	}
	s.timedOut = true
	s.Finish(now)
	return true
}

// EnterReview shows the finished attempt read-only from the first question.
func (s *Session) EnterReview() error {
	if s.state != StateFinished {
		return ErrNotFinished
	}
	s.reviewMode = true
	s.current = 0
	return nil
}

func (s *Session) ExitReview() {
	s.reviewMode = false
}

func (s *Session) Result() Result {
	return Score(s.quiz, s.answers, s.timeLeft)
}

type OptionMark int

const (
	MarkNone OptionMark = iota
	MarkSelected
	MarkCorrect
	MarkIncorrect
)

func (m OptionMark) String() string {
	switch m {
	case MarkSelected:
		return "selected"
	case MarkCorrect:
		return "correct"
	case MarkIncorrect:
		return "incorrect"
	default:
		return ""
	}
}

// Marks describes how each option of a question is highlighted. While taking
// the quiz only the user's pick is marked. In review the correct option is
// always marked and the user's pick only when it was wrong.
func (s *Session) Marks(index int) [OptionCount]OptionMark {
	var marks [OptionCount]OptionMark
	if index < 0 || index >= len(s.quiz.Questions) {
		return marks
	}

	picked := s.answers[index]
	if !s.reviewMode {
		if picked >= 0 && picked < OptionCount {
			marks[picked] = MarkSelected
		}
		return marks
	}

	correct := s.quiz.Questions[index].CorrectAnswer
	for option := range marks {
		switch {
		case option == correct:
			marks[option] = MarkCorrect
		case option == picked:
			marks[option] = MarkIncorrect
		}
	}
	return marks
}
