package scoring

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/tones"
)

func TestEvaluate_Correct(t *testing.T) {
	got := Evaluate(10, 10, Tally{Score: 2, Streak: 1})

	if !got.Correct {
		t.Error("expected correct")
	}
	if got.Tally != (Tally{Score: 3, Streak: 2}) {
		t.Errorf("tally = %+v, want {3 2}", got.Tally)
	}
	if !slices.Equal(got.Feedback, tones.Success()) {
		t.Errorf("feedback = %+v, want success", got.Feedback)
	}
}

func TestEvaluate_Incorrect(t *testing.T) {
	got := Evaluate(9, 10, Tally{Score: 2, Streak: 1})

	if got.Correct {
		t.Error("expected incorrect")
	}
	if got.Tally != (Tally{Score: 2, Streak: 0}) {
		t.Errorf("tally = %+v, want {2 0}", got.Tally)
	}
	if !slices.Equal(got.Feedback, tones.Failure()) {
		t.Errorf("feedback = %+v, want failure", got.Feedback)
	}
	if got.Milestone {
		t.Error("wrong answers never hit a milestone")
	}
}

func TestEvaluateAnswer(t *testing.T) {
	tests := []struct {
		name     string
		answer   rounds.Answer
		expected int
		want     bool
	}{
		{"leading zero", "09", 9, true},
		{"exact", "18", 18, true},
		{"wrong", "17", 18, false},
		{"empty vs zero", "", 0, false},
		{"malformed", "9a", 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateAnswer(tt.answer, tt.expected, Tally{})
			if got.Correct != tt.want {
				t.Errorf("EvaluateAnswer(%q, %d).Correct = %v, want %v", tt.answer, tt.expected, got.Correct, tt.want)
			}
		})
	}
}

func TestEvaluate_Milestone(t *testing.T) {
	got := Evaluate(1, 1, Tally{Score: 7, Streak: 4})
	if !got.Milestone {
		t.Error("expected milestone at streak 5")
	}
	got = Evaluate(1, 1, Tally{Score: 7, Streak: 5})
	if got.Milestone {
		t.Error("streak 6 is not a milestone")
	}
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{14, 15},
		{19, 20},
		{20, 25},
		{25, 30},
	}

	for _, tt := range tests {
		got := NextStreakMilestone(tt.current)
		if got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestIsMilestone(t *testing.T) {
	for streak, want := range map[int]bool{0: false, 1: false, 5: true, 10: true, 12: false, 30: true} {
		if got := IsMilestone(streak); got != want {
			t.Errorf("IsMilestone(%d) = %v, want %v", streak, got, want)
		}
	}
}

func TestProperty_ScoreMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tally := Tally{
			Score:  rapid.IntRange(0, 1000).Draw(t, "score"),
			Streak: rapid.IntRange(0, 1000).Draw(t, "streak"),
		}
		submitted := rapid.IntRange(-1, 18).Draw(t, "submitted")
		expected := rapid.IntRange(0, 18).Draw(t, "expected")

		out := Evaluate(submitted, expected, tally)
		if out.Correct != (submitted == expected) {
			t.Fatalf("Correct = %v for %d vs %d", out.Correct, submitted, expected)
		}
		if out.Tally.Score < tally.Score {
			t.Fatalf("score decreased: %d -> %d", tally.Score, out.Tally.Score)
		}
		if !out.Correct && out.Tally.Streak != 0 {
			t.Fatalf("streak = %d after wrong answer", out.Tally.Streak)
		}
		if out.Correct && out.Tally.Streak != tally.Streak+1 {
			t.Fatalf("streak = %d, want %d", out.Tally.Streak, tally.Streak+1)
		}
	})
}
