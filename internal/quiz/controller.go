package quiz

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	noticeSaved    = "Quiz saved!"
	noticeTimesUp  = "Time's up!"
	noticeDeleted  = "Quiz deleted."
	noticeCleared  = "All quizzes deleted."
	noticeImported = "Quiz imported."
)

// Renderer is the presentation side. Methods are called with the controller
// locked and must not call back into it.
type Renderer interface {
	Render(screen Screen, view any)
	Notify(notice Notice)
}

// TimerRenderer is optionally implemented by renderers that can redraw only
// the clock. Without it every tick re-renders the question screen.
type TimerRenderer interface {
	RenderTimer(view TimerView)
}

// Controller owns the application state: which screen is shown, the quiz
// being edited, the quiz being taken and its countdown.
type Controller struct {
	library   *Library
	renderer  Renderer
	countdown *Countdown
	now       func() time.Time
	log       zerolog.Logger

	mu         sync.Mutex
	screen     Screen
	editor     *Editor
	session    *Session
	stopTimer  context.CancelFunc
	generation uint64
}

type ControllerOption func(*Controller)

func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

func WithCountdown(countdown *Countdown) ControllerOption {
	return func(c *Controller) {
		c.countdown = countdown
	}
}

func NewController(library *Library, renderer Renderer, log zerolog.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		library:  library,
		renderer: renderer,
		now:      time.Now,
		log:      log.With().Str("component", "controller").Logger(),
		screen:   ScreenHome,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.countdown == nil {
		c.countdown = NewCountdown(DefaultTickInterval, log)
	}
	return c
}

func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// Refresh renders the current screen again.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderLocked()
}

// Close stops any running countdown.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopCountdownLocked()
}

// ─── Navigation ──────────────────────────────────────────────────────

func (c *Controller) ShowHome() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveLocked()
	c.showLocked(ScreenHome)
}

func (c *Controller) ShowLibrary() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveLocked()
	c.showLocked(ScreenLibrary)
}

// ─── Authoring ───────────────────────────────────────────────────────

func (c *Controller) NewQuiz() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveLocked()
	c.editor = NewEditor()
	c.showLocked(ScreenCreate)
}

// EditQuiz opens a saved quiz for editing. A quiz that no longer exists is
// ignored and the library is shown instead.
func (c *Controller) EditQuiz(quizID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	editor, err := EditExisting(c.library, quizID)
	if err != nil {
		c.leaveLocked()
		c.showLocked(ScreenLibrary)
		return err
	}
	c.leaveLocked()
	c.editor = editor
	c.showLocked(ScreenCreate)
	return nil
}

func (c *Controller) SetTitle(title string) error {
	return c.edit(func(e *Editor) error {
		e.SetTitle(title)
		return nil
	})
}

func (c *Controller) SetDescription(description string) error {
	return c.edit(func(e *Editor) error {
		e.SetDescription(description)
		return nil
	})
}

func (c *Controller) SetTimeLimit(seconds int) error {
	return c.edit(func(e *Editor) error {
		e.SetTimeLimit(seconds)
		return nil
	})
}

func (c *Controller) AddQuestion() error {
	return c.edit(func(e *Editor) error {
		e.AddQuestion()
		return nil
	})
}

func (c *Controller) RemoveQuestion(index int) error {
	return c.edit(func(e *Editor) error {
		return e.RemoveQuestion(index)
	})
}

func (c *Controller) UpdateQuestionText(index int, text string) error {
	return c.edit(func(e *Editor) error {
		return e.UpdateQuestionText(index, text)
	})
}

func (c *Controller) UpdateOptionText(index, option int, text string) error {
	return c.edit(func(e *Editor) error {
		return e.UpdateOptionText(index, option, text)
	})
}

func (c *Controller) UpdateCorrectAnswer(index, option int) error {
	return c.edit(func(e *Editor) error {
		return e.UpdateCorrectAnswer(index, option)
	})
}

func (c *Controller) edit(fn func(*Editor) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editor == nil || c.screen != ScreenCreate {
		return ErrNoDraft
	}
	if err := fn(c.editor); err != nil {
		if errors.Is(err, ErrLastQuestion) {
			c.notifyLocked(NoticeWarning, lastQuestionMessage)
		}
		return err
	}
	c.renderLocked()
	return nil
}

// SaveQuiz writes the buffer to the library and moves to the library screen.
// A validation failure keeps the buffer and surfaces the first problem.
func (c *Controller) SaveQuiz(ctx context.Context) (Quiz, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editor == nil || c.screen != ScreenCreate {
		return Quiz{}, ErrNoDraft
	}

	saved, err := c.editor.Save(ctx, c.library)
	if err != nil {
		c.reportLocked(err)
		return Quiz{}, err
	}

	c.log.Info().Str("quiz_id", saved.ID).Int("questions", len(saved.Questions)).Msg("Quiz saved")
	c.editor = nil
	c.notifyLocked(NoticeInfo, noticeSaved)
	c.showLocked(ScreenLibrary)
	return saved, nil
}

// DeleteCurrent removes the quiz being edited and returns to the library.
// Deleting a quiz that was never saved just discards the buffer.
func (c *Controller) DeleteCurrent(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editor == nil || c.screen != ScreenCreate {
		return ErrNoDraft
	}

	quizID := c.editor.draft.ID
	c.editor = nil
	err := c.library.Delete(ctx, quizID)
	if err != nil && !errors.Is(err, ErrQuizNotFound) {
		c.reportLocked(err)
	}
	c.showLocked(ScreenLibrary)
	if errors.Is(err, ErrQuizNotFound) {
		return nil
	}
	return err
}

// ImportQuiz stores an externally authored quiz, replacing one with the same id.
func (c *Controller) ImportQuiz(ctx context.Context, q Quiz) (Quiz, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	saved, err := c.library.Put(ctx, q)
	if err != nil {
		c.reportLocked(err)
		return Quiz{}, err
	}
	c.notifyLocked(NoticeInfo, noticeImported)
	if c.screen == ScreenLibrary || c.screen == ScreenHome {
		c.renderLocked()
	}
	return saved, nil
}

// ─── Library ─────────────────────────────────────────────────────────

// DeleteQuiz removes one quiz. A missing id is not an error for the caller.
func (c *Controller) DeleteQuiz(ctx context.Context, quizID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.library.Delete(ctx, quizID)
	switch {
	case errors.Is(err, ErrQuizNotFound):
		err = nil
	case err != nil:
		c.reportLocked(err)
	default:
		c.notifyLocked(NoticeInfo, noticeDeleted)
	}
	if c.screen == ScreenLibrary {
		c.renderLocked()
	}
	return err
}

func (c *Controller) DeleteAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.library.DeleteAll(ctx)
	if err != nil {
		c.reportLocked(err)
	} else {
		c.notifyLocked(NoticeInfo, noticeCleared)
	}
	if c.screen == ScreenLibrary {
		c.renderLocked()
	}
	return err
}

// ─── Taking a quiz ───────────────────────────────────────────────────

// StartQuiz begins a fresh attempt on a saved quiz and arms the countdown
// when the quiz has a time limit.
func (c *Controller) StartQuiz(ctx context.Context, quizID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, err := c.library.Get(quizID)
	if err != nil {
		c.leaveLocked()
		c.showLocked(ScreenLibrary)
		return err
	}
	if len(q.Questions) == 0 {
		c.notifyLocked(NoticeWarning, "This quiz has no questions.")
		return ErrNoQuestions
	}

	c.leaveLocked()
	c.session = StartSession(q, c.now())
	if c.session.CountdownActive() {
		c.startCountdownLocked(ctx)
	}
	c.log.Info().Str("quiz_id", q.ID).Int("time_limit", q.TimeLimit).Msg("Quiz started")
	c.showLocked(ScreenTakeQuiz)
	return nil
}

func (c *Controller) SelectAnswer(option int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.screen != ScreenTakeQuiz {
		return ErrNoSession
	}
	if err := c.session.SelectAnswer(option); err != nil {
		return err
	}
	c.renderLocked()
	return nil
}

func (c *Controller) GoToQuestion(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.screen != ScreenTakeQuiz {
		return ErrNoSession
	}
	if err := c.session.GoToQuestion(index); err != nil {
		return err
	}
	c.renderLocked()
	return nil
}

// Next advances one question. On the last question it finishes the quiz, or
// while reviewing returns to the results.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.screen != ScreenTakeQuiz {
		return ErrNoSession
	}
	if !c.session.OnLastQuestion() {
		if err := c.session.Next(); err != nil {
			return err
		}
		c.renderLocked()
		return nil
	}

	if c.session.ReviewMode() {
		c.session.ExitReview()
		c.showLocked(ScreenResults)
		return nil
	}
	c.finishLocked()
	return nil
}

func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.screen != ScreenTakeQuiz {
		return ErrNoSession
	}
	if err := c.session.Previous(); err != nil {
		return err
	}
	c.renderLocked()
	return nil
}

// FinishQuiz ends the attempt early and shows the results.
func (c *Controller) FinishQuiz() (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return Result{}, ErrNoSession
	}
	if c.session.State() != StateInProgress {
		return Result{}, ErrNotInProgress
	}
	return c.finishLocked(), nil
}

// EnterReview replays a finished attempt read-only from the first question.
func (c *Controller) EnterReview() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return ErrNoSession
	}
	if err := c.session.EnterReview(); err != nil {
		return err
	}
	c.stopCountdownLocked()
	c.showLocked(ScreenTakeQuiz)
	return nil
}

func (c *Controller) ExitReview() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || !c.session.ReviewMode() {
		return ErrNotFinished
	}
	c.session.ExitReview()
	c.showLocked(ScreenResults)
	return nil
}

// ExitQuiz abandons the attempt and returns to the library.
func (c *Controller) ExitQuiz() {
	c.ShowLibrary()
}

func (c *Controller) finishLocked() Result {
	c.stopCountdownLocked()
	result := c.session.Finish(c.now())
	c.log.Info().
		Str("quiz_id", c.session.quiz.ID).
		Int("correct", result.Correct).
		Int("total", result.Total).
		Int("percentage", result.Percentage).
		Bool("timed_out", c.session.TimedOut()).
		Msg("Quiz finished")
	c.showLocked(ScreenResults)
	return result
}

// ─── Countdown ───────────────────────────────────────────────────────

func (c *Controller) startCountdownLocked(ctx context.Context) {
	c.stopCountdownLocked()
	c.generation++
	generation := c.generation
	c.stopTimer = c.countdown.Start(ctx, func() bool {
		return c.tick(generation)
	})
	c.log.Debug().Uint64("generation", generation).Int("seconds", c.session.TimeLeft()).Msg("Countdown armed")
}

func (c *Controller) stopCountdownLocked() {
	if c.stopTimer == nil {
		return
	}
	c.stopTimer()
	c.stopTimer = nil
	c.generation++
}

// tick handles one countdown beat. Beats from a countdown that has since been
// stopped are dropped.
func (c *Controller) tick(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || c.session == nil {
		return true
	}

	if !c.session.Tick(c.now()) {
		if !c.session.CountdownActive() {
			return true
		}
		if tr, ok := c.renderer.(TimerRenderer); ok {
			tr.RenderTimer(newTimerView(c.session.TimeLeft()))
		} else {
			c.renderLocked()
		}
		return false
	}

	c.log.Info().Str("quiz_id", c.session.quiz.ID).Msg("Time expired")
	c.stopCountdownLocked()
	c.notifyLocked(NoticeWarning, noticeTimesUp)
	c.finishLocked()
	return true
}

// ─── Rendering ───────────────────────────────────────────────────────

// leaveLocked tears down whatever the current screen owns before moving on.
func (c *Controller) leaveLocked() {
	c.stopCountdownLocked()
	c.session = nil
	c.editor = nil
}

func (c *Controller) showLocked(screen Screen) {
	c.screen = screen
	c.renderLocked()
}

func (c *Controller) renderLocked() {
	if c.renderer == nil {
		return
	}

	switch c.screen {
	case ScreenCreate:
		if c.editor != nil {
			c.renderer.Render(ScreenCreate, newEditorView(c.editor))
		}
	case ScreenLibrary:
		c.renderer.Render(ScreenLibrary, newLibraryView(c.library.List()))
	case ScreenTakeQuiz:
		if c.session != nil {
			c.renderer.Render(ScreenTakeQuiz, newQuestionView(c.session))
		}
	case ScreenResults:
		if c.session != nil {
			c.renderer.Render(ScreenResults, newResultView(c.session))
		}
	default:
		c.renderer.Render(ScreenHome, HomeView{QuizCount: c.library.Len()})
	}
}

func (c *Controller) notifyLocked(level NoticeLevel, message string) {
	if c.renderer == nil {
		return
	}
	c.renderer.Notify(Notice{Level: level, Message: message})
}

// reportLocked surfaces an error once: validation problems as warnings,
// everything else as errors.
func (c *Controller) reportLocked(err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		c.notifyLocked(NoticeWarning, validationErr.Message)
		return
	}
	c.log.Error().Err(err).Msg("Operation failed")
	c.notifyLocked(NoticeError, err.Error())
}
