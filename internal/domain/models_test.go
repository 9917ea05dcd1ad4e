package domain

import "testing"

func TestGradeBands(t *testing.T) {
	cases := []struct {
		percentage float64
		want       Grade
	}{
		{100, GradeExcellent},
		{85, GradeExcellent},
		{84.9, GradeVeryGood},
		{75, GradeVeryGood},
		{74.9, GradeGood},
		{65, GradeGood},
		{64.9, GradePass},
		{50, GradePass},
		{49.9, GradeFail},
		{0, GradeFail},
	}
	for _, tc := range cases {
		if got := GradeFor(tc.percentage); got != tc.want {
			t.Fatalf("GradeFor(%v) = %s, want %s", tc.percentage, got, tc.want)
		}
	}
}

func TestSessionModeParameters(t *testing.T) {
	if got := ModeUnitQuiz.QuestionCount(); got != 20 {
		t.Fatalf("unit quiz question count = %d", got)
	}
	if got := ModeUnitQuiz.TimeLimitMinutes(); got != 20 {
		t.Fatalf("unit quiz time limit = %d", got)
	}
	if got := ModeFullExam.QuestionCount(); got != 30 {
		t.Fatalf("full exam question count = %d", got)
	}
	if got := ModeFullExam.TimeLimitMinutes(); got != 45 {
		t.Fatalf("full exam time limit = %d", got)
	}
}

func TestQuestionValid(t *testing.T) {
	base := Question{
		ID:      "q1",
		Text:    "سؤال",
		Options: []string{"أ", "ب", "ج"},
		Answer:  "ب",
	}
	if !base.Valid() {
		t.Fatalf("expected valid question")
	}

	noText := base
	noText.Text = ""
	if noText.Valid() {
		t.Fatalf("blank text must be invalid")
	}

	oneOption := base
	oneOption.Options = []string{"أ"}
	oneOption.Answer = "أ"
	if oneOption.Valid() {
		t.Fatalf("a single option is not a choice")
	}

	strayAnswer := base
	strayAnswer.Answer = "د"
	if strayAnswer.Valid() {
		t.Fatalf("answer outside the options must be invalid")
	}
}
