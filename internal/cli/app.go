package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"quiz-studio/internal/quiz"
)

// App is the line-oriented front end. Each command maps onto one controller
// operation; the controller draws the resulting screen through the Terminal.
type App struct {
	controller *quiz.Controller
	library    *quiz.Library
	term       *Terminal

	lines   chan string
	readErr chan error
}

func NewApp(controller *quiz.Controller, library *quiz.Library, term *Terminal) *App {
	return &App{
		controller: controller,
		library:    library,
		term:       term,
	}
}

// Run reads commands until EOF, "exit" or ctx is cancelled.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.lines = make(chan string)
	a.readErr = make(chan error, 1)
	go a.readLines(in)

	a.controller.ShowHome()
	a.term.Println()
	a.printHelp()

	for {
		a.term.Printf("\n> ")
		line, err := a.readLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				a.term.Println()
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if done := a.dispatch(ctx, line); done {
			return nil
		}
	}
}

func (a *App) readLines(in io.Reader) {
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			a.lines <- line
		}
		if err != nil {
			a.readErr <- err
			return
		}
	}
}

func (a *App) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-a.lines:
		return line, nil
	case err := <-a.readErr:
		a.readErr <- err
		return "", err
	}
}

// dispatch runs one command line and reports whether the loop should stop.
func (a *App) dispatch(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	command := strings.ToLower(args[0])

	if a.controller.Screen() == quiz.ScreenTakeQuiz && len(args) == 1 {
		if option, ok := quiz.ParseOptionLetter(command); ok {
			a.report(a.controller.SelectAnswer(option))
			return false
		}
	}

	switch command {
	case "help", "?":
		a.printHelp()
	case "exit", "quit":
		return true
	case "home":
		a.controller.ShowHome()
	case "library", "list":
		a.controller.ShowLibrary()
	case "show":
		a.controller.Refresh()

	case "new":
		a.controller.NewQuiz()
	case "edit":
		quizID, ok := a.quizArg(args, "usage: edit <quiz>")
		if ok {
			a.report(a.controller.EditQuiz(quizID))
		}
	case "title":
		a.report(a.controller.SetTitle(restOf(line, 1)))
	case "desc", "description":
		a.report(a.controller.SetDescription(restOf(line, 1)))
	case "limit":
		if len(args) != 2 {
			a.term.Println("usage: limit <seconds>")
			return false
		}
		seconds, err := strconv.Atoi(args[1])
		if err != nil {
			a.term.Println("invalid limit: must be a whole number of seconds")
			return false
		}
		a.report(a.controller.SetTimeLimit(seconds))
	case "add":
		a.report(a.controller.AddQuestion())
	case "remove":
		index, ok := a.questionArg(args, 1, "usage: remove <question>")
		if ok {
			a.report(a.controller.RemoveQuestion(index))
		}
	case "q", "question":
		index, ok := a.questionArg(args, 1, "usage: q <question> <text>")
		if ok {
			a.report(a.controller.UpdateQuestionText(index, restOf(line, 2)))
		}
	case "opt", "option":
		index, ok := a.questionArg(args, 1, "usage: opt <question> <A-D> <text>")
		if !ok {
			return false
		}
		option, ok := a.optionArg(args, 2, "usage: opt <question> <A-D> <text>")
		if ok {
			a.report(a.controller.UpdateOptionText(index, option, restOf(line, 3)))
		}
	case "correct":
		index, ok := a.questionArg(args, 1, "usage: correct <question> <A-D>")
		if !ok {
			return false
		}
		option, ok := a.optionArg(args, 2, "usage: correct <question> <A-D>")
		if ok {
			a.report(a.controller.UpdateCorrectAnswer(index, option))
		}
	case "save":
		_, err := a.controller.SaveQuiz(ctx)
		a.report(err)
	case "delete-current":
		a.report(a.controller.DeleteCurrent(ctx))

	case "delete":
		quizID, ok := a.quizArg(args, "usage: delete <quiz>")
		if ok {
			a.report(a.controller.DeleteQuiz(ctx, quizID))
		}
	case "delete-all":
		confirmed, err := a.promptYesNo(ctx, "Delete every saved quiz? (yes/no): ")
		if err != nil {
			return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
		}
		if confirmed {
			a.report(a.controller.DeleteAll(ctx))
		}
	case "import":
		if len(args) != 2 {
			a.term.Println("usage: import <path.yaml>")
			return false
		}
		q, err := quiz.ImportYAMLFile(args[1])
		if err != nil {
			a.term.Printf("error: %v\n", err)
			return false
		}
		_, err = a.controller.ImportQuiz(ctx, q)
		a.report(err)
	case "export":
		if len(args) != 3 {
			a.term.Println("usage: export <quiz> <path.yaml>")
			return false
		}
		q, err := a.library.Get(a.resolveQuiz(args[1]))
		if err != nil {
			a.report(err)
			return false
		}
		if err := quiz.ExportYAMLFile(args[2], q); err != nil {
			a.term.Printf("error: %v\n", err)
			return false
		}
		a.term.Printf("Exported %q to %s\n", q.Title, args[2])

	case "start", "take":
		quizID, ok := a.quizArg(args, "usage: start <quiz>")
		if ok {
			a.report(a.controller.StartQuiz(ctx, quizID))
		}
	case "answer":
		option, ok := a.optionArg(args, 1, "usage: answer <A-D>")
		if ok {
			a.report(a.controller.SelectAnswer(option))
		}
	case "next":
		a.report(a.controller.Next())
	case "prev", "previous":
		a.report(a.controller.Previous())
	case "goto":
		index, ok := a.questionArg(args, 1, "usage: goto <question>")
		if ok {
			a.report(a.controller.GoToQuestion(index))
		}
	case "finish":
		_, err := a.controller.FinishQuiz()
		a.report(err)
	case "review":
		a.report(a.controller.EnterReview())
	case "results":
		a.report(a.controller.ExitReview())
	case "exit-quiz":
		a.controller.ExitQuiz()

	default:
		a.term.Println("unknown command. type 'help' for usage.")
	}
	return false
}

// report prints errors the controller has not already shown as a notice.
func (a *App) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, quiz.ErrValidation) ||
		errors.Is(err, quiz.ErrLastQuestion) ||
		errors.Is(err, quiz.ErrStorage) ||
		errors.Is(err, quiz.ErrNoQuestions) {
		return
	}
	a.term.Printf("error: %v\n", err)
}

func (a *App) quizArg(args []string, usage string) (string, bool) {
	if len(args) != 2 {
		a.term.Println(usage)
		return "", false
	}
	return a.resolveQuiz(args[1]), true
}

// resolveQuiz accepts either a quiz id or its 1-based position in the library.
func (a *App) resolveQuiz(ref string) string {
	position, err := strconv.Atoi(ref)
	if err != nil {
		return ref
	}
	quizzes := a.library.List()
	if position < 1 || position > len(quizzes) {
		return ref
	}
	return quizzes[position-1].ID
}

func (a *App) questionArg(args []string, index int, usage string) (int, bool) {
	if len(args) <= index {
		a.term.Println(usage)
		return 0, false
	}
	number, err := strconv.Atoi(args[index])
	if err != nil || number < 1 {
		a.term.Println("invalid question number: must be a positive integer")
		return 0, false
	}
	return number - 1, true
}

func (a *App) optionArg(args []string, index int, usage string) (int, bool) {
	if len(args) <= index {
		a.term.Println(usage)
		return 0, false
	}
	option, ok := quiz.ParseOptionLetter(args[index])
	if !ok {
		a.term.Println("invalid option: use a letter A-D")
		return 0, false
	}
	return option, true
}

func (a *App) promptYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		a.term.Printf("%s", prompt)
		line, err := a.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			a.term.Println("Please answer yes or no.")
		}
	}
}

func (a *App) printHelp() {
	a.term.Printf("%s", helpText)
}

const helpText = `Commands:
  help | home | library | show | exit
  new                           start a new quiz
  edit <quiz>                   edit a saved quiz (id or library number)
  title <text>                  set the title
  desc <text>                   set the description
  limit <seconds>               set the time limit, 0 for none
  add                           add a blank question
  remove <n>                    remove question n
  q <n> <text>                  set the text of question n
  opt <n> <A-D> <text>          set an option of question n
  correct <n> <A-D>             mark the correct option of question n
  save                          save the quiz
  delete-current                delete the quiz being edited
  delete <quiz>                 delete a saved quiz
  delete-all                    delete every saved quiz
  import <path.yaml>            import a quiz from YAML
  export <quiz> <path.yaml>     export a quiz to YAML
  start <quiz>                  take a quiz
  A | B | C | D                 answer the current question
  next | prev | goto <n>        move between questions
  finish                        finish the quiz now
  review | results              review answers, back to results
  exit-quiz                     abandon the quiz
`

// restOf returns the line with its first n fields removed, keeping the
// spacing of what remains.
func restOf(line string, n int) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		idx := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' })
		if idx < 0 {
			return ""
		}
		rest = strings.TrimLeft(rest[idx:], " \t")
	}
	return rest
}
