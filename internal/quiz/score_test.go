package quiz

import "testing"

func TestScoreCountsUnansweredAsWrong(t *testing.T) {
	result := Score(sampleQuiz(), []int{0, 1, Unanswered, 2}, 0)

	if result.Correct != 2 || result.Total != 4 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", result.Percentage)
	}
	if result.Message != MessageNotBad {
		t.Fatalf("expected %q, got %q", MessageNotBad, result.Message)
	}
	if result.Timed || result.TimeTaken != 0 {
		t.Fatalf("untimed quiz reported time: %+v", result)
	}
}

func TestScorePercentageRounds(t *testing.T) {
	q := sampleQuiz()
	q.Questions = q.Questions[:3]

	if got := Score(q, []int{0, 1, 0}, 0).Percentage; got != 67 {
		t.Fatalf("expected 2/3 to round to 67, got %d", got)
	}
	if got := Score(q, []int{0, 0, 0}, 0).Percentage; got != 33 {
		t.Fatalf("expected 1/3 to round to 33, got %d", got)
	}
}

func TestScoreMessageTiers(t *testing.T) {
	cases := map[int]string{
		100: MessageExcellent,
		80:  MessageExcellent,
		79:  MessageGood,
		60:  MessageGood,
		59:  MessageNotBad,
		40:  MessageNotBad,
		39:  MessagePractice,
		0:   MessagePractice,
	}
	for percentage, want := range cases {
		if got := ScoreMessage(percentage); got != want {
			t.Fatalf("ScoreMessage(%d) = %q, want %q", percentage, got, want)
		}
	}
}

func TestScoreTimeTaken(t *testing.T) {
	q := sampleQuiz()
	q.TimeLimit = 120

	result := Score(q, nil, 45)
	if !result.Timed || result.TimeTaken != 75 {
		t.Fatalf("expected 75 seconds taken, got %+v", result)
	}
	if got := Score(q, nil, -3).TimeTaken; got != 120 {
		t.Fatalf("expected overrun to read as full limit, got %d", got)
	}
}
