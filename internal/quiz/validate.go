package quiz

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate = newValidator()

	questionIndexPattern = regexp.MustCompile(`Questions\[(\d+)\]`)
	optionIndexPattern   = regexp.MustCompile(`Options\[(\d+)\]`)
)

func newValidator() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Validate checks a quiz the way a save does and reports the first problem
// in field order: title, then each question's text followed by its options.
func Validate(q Quiz) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var fieldErrs govalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "quiz", Message: err.Error()}
	}
	return translateFieldError(fieldErrs[0])
}

func translateFieldError(fe govalidator.FieldError) *ValidationError {
	namespace := fe.StructNamespace()
	question := indexFrom(questionIndexPattern, namespace)
	option := indexFrom(optionIndexPattern, namespace)

	switch {
	case fe.StructField() == "Title":
		return &ValidationError{Field: "title", Message: "Please enter a quiz title"}
	case fe.StructField() == "TimeLimit":
		return &ValidationError{Field: "timeLimit", Message: "Time limit cannot be negative."}
	case fe.StructField() == "Questions":
		return &ValidationError{Field: "questions", Message: lastQuestionMessage}
	case option >= 0 && question >= 0:
		return &ValidationError{
			Field:   fmt.Sprintf("questions[%d].options[%d]", question, option),
			Message: fmt.Sprintf("Question %d, Option %d cannot be empty.", question+1, option+1),
		}
	case fe.StructField() == "Text" && question >= 0:
		return &ValidationError{
			Field:   fmt.Sprintf("questions[%d].text", question),
			Message: fmt.Sprintf("Question %d needs a question text.", question+1),
		}
	case fe.StructField() == "CorrectAnswer" && question >= 0:
		return &ValidationError{
			Field:   fmt.Sprintf("questions[%d].correctAnswer", question),
			Message: fmt.Sprintf("Question %d must mark one of the four options as correct.", question+1),
		}
	default:
		return &ValidationError{Field: namespace, Message: fe.Error()}
	}
}

func indexFrom(pattern *regexp.Regexp, namespace string) int {
	match := pattern.FindStringSubmatch(namespace)
	if len(match) != 2 {
		return -1
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return index
}
