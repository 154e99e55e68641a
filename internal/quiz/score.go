package quiz

import "math"

const (
	MessageExcellent = "Excellent!"
	MessageGood      = "Good job!"
	MessageNotBad    = "Not bad!"
	MessagePractice  = "Keep practicing!"
)

type Result struct {
	Correct    int
	Total      int
	Percentage int
	Message    string
	Timed      bool
	TimeTaken  int
}

// Score counts picks that match the correct option. Unanswered never matches,
// so skipped questions count as wrong.
func Score(q Quiz, answers []int, timeLeft int) Result {
	total := len(q.Questions)
	correct := 0
	for idx, question := range q.Questions {
		if idx < len(answers) && answers[idx] == question.CorrectAnswer {
			correct++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}

	result := Result{
		Correct:    correct,
		Total:      total,
		Percentage: percentage,
		Message:    ScoreMessage(percentage),
		Timed:      q.Timed(),
	}
	if result.Timed {
		result.TimeTaken = q.TimeLimit - max(timeLeft, 0)
	}
	return result
}

func ScoreMessage(percentage int) string {
	switch {
	case percentage >= 80:
		return MessageExcellent
	case percentage >= 60:
		return MessageGood
	case percentage >= 40:
		return MessageNotBad
	default:
		return MessagePractice
	}
}
