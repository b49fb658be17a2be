package quiz

import (
	"math/rand"
	"testing"
)

// playSession runs a full session answering the given sequence.
func playSession(t *testing.T, answers []bool) *Session {
	t.Helper()
	s := NewSession(Settings{
		QuestionCount: len(answers),
		Difficulty:    DifficultyNormal,
	}, NewGenerator(rand.New(rand.NewSource(11))))
	// len(answers) may not be a selectable count; bypass normalization
	// by driving the session manually when it differs.
	if s.Settings().QuestionCount != len(answers) {
		t.Fatalf("test answer sequence length %d is not a valid question count", len(answers))
	}
	s.Start()
	for _, correct := range answers {
		answer(t, s, correct)
		s.Advance()
	}
	if !s.Complete() {
		t.Fatal("session did not complete")
	}
	return s
}

func TestFinalize_Merge(t *testing.T) {
	// 7 correct of 10 with prior {5, 40, 6}.
	s := playSession(t, []bool{true, true, true, false, true, false, true, false, true, true})
	prior := Statistics{TotalGamesPlayed: 5, TotalCorrectAnswers: 40, HighestStreak: 6}

	got := Finalize(s, prior)

	if got.TotalGamesPlayed != 6 {
		t.Errorf("TotalGamesPlayed = %d, want 6", got.TotalGamesPlayed)
	}
	if got.TotalCorrectAnswers != 47 {
		t.Errorf("TotalCorrectAnswers = %d, want 47", got.TotalCorrectAnswers)
	}
	want := prior.HighestStreak
	if s.MaxStreak() > want {
		want = s.MaxStreak()
	}
	if got.HighestStreak != want {
		t.Errorf("HighestStreak = %d, want %d", got.HighestStreak, want)
	}
}

func TestFinalize_Monotonic(t *testing.T) {
	s := playSession(t, []bool{false, false, false, false, false})
	prior := Statistics{TotalGamesPlayed: 3, TotalCorrectAnswers: 12, HighestStreak: 4}

	got := Finalize(s, prior)

	if got.TotalGamesPlayed != prior.TotalGamesPlayed+1 {
		t.Errorf("TotalGamesPlayed = %d, want %d", got.TotalGamesPlayed, prior.TotalGamesPlayed+1)
	}
	if got.TotalCorrectAnswers != prior.TotalCorrectAnswers {
		t.Errorf("TotalCorrectAnswers = %d, want unchanged %d", got.TotalCorrectAnswers, prior.TotalCorrectAnswers)
	}
	if got.HighestStreak < prior.HighestStreak {
		t.Errorf("HighestStreak decreased: %d -> %d", prior.HighestStreak, got.HighestStreak)
	}
}

func TestFinalize_NewHighestStreak(t *testing.T) {
	s := playSession(t, []bool{true, true, true, true, true})
	got := Finalize(s, Statistics{HighestStreak: 3})
	if got.HighestStreak != 5 {
		t.Errorf("HighestStreak = %d, want 5", got.HighestStreak)
	}
}

func TestFinalize_DoesNotMutateInputs(t *testing.T) {
	s := playSession(t, []bool{true, false, true, false, true})
	prior := Statistics{TotalGamesPlayed: 1, TotalCorrectAnswers: 2, HighestStreak: 1}

	_ = Finalize(s, prior)

	if prior.TotalGamesPlayed != 1 || prior.TotalCorrectAnswers != 2 || prior.HighestStreak != 1 {
		t.Errorf("prior mutated: %+v", prior)
	}
	if len(s.Results()) != 5 {
		t.Errorf("session mutated: %d results", len(s.Results()))
	}
}
