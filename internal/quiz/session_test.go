package quiz

import (
	"math/rand"
	"testing"
	"time"
)

func testSession(count int) *Session {
	s := NewSession(Settings{
		QuestionCount:   count,
		Difficulty:      DifficultyEasy,
		EffectIntensity: EffectStandard,
		SoundEnabled:    false,
	}, NewGenerator(rand.New(rand.NewSource(7))))
	return s
}

// answer submits a correct or incorrect answer for the current round.
func answer(t *testing.T, s *Session, correct bool) Feedback {
	t.Helper()
	selected := s.CurrentRound().CorrectAnswer
	if !correct {
		selected = "definitely_not_a_syscall"
	}
	fb, ok := s.SubmitAnswer(selected)
	if !ok {
		t.Fatal("SubmitAnswer rejected a first submission")
	}
	if fb.Correct != correct {
		t.Fatalf("Feedback.Correct = %v, want %v", fb.Correct, correct)
	}
	return fb
}

func TestSession_StartTransitionsToInProgress(t *testing.T) {
	s := testSession(5)
	if s.State() != StateNotStarted {
		t.Fatalf("state before Start = %v", s.State())
	}

	r := s.Start()
	if s.State() != StateInProgress {
		t.Errorf("state after Start = %v, want InProgress", s.State())
	}
	if len(r.Options) != OptionsPerRound {
		t.Errorf("first round has %d options", len(r.Options))
	}
	if s.RoundIndex() != 0 {
		t.Errorf("RoundIndex = %d, want 0", s.RoundIndex())
	}
}

func TestSession_StartTwiceKeepsRound(t *testing.T) {
	s := testSession(5)
	first := s.Start()
	again := s.Start()
	if first.CorrectAnswer != again.CorrectAnswer {
		t.Error("second Start generated a new round")
	}
}

func TestSession_DoubleSubmitRejected(t *testing.T) {
	s := testSession(5)
	s.Start()
	correct := s.CurrentRound().CorrectAnswer

	fb1, ok1 := s.SubmitAnswer(correct)
	if !ok1 || !fb1.Correct {
		t.Fatalf("first submit: fb=%+v ok=%v", fb1, ok1)
	}

	// Second submission must not change anything, even if it disagrees.
	fb2, ok2 := s.SubmitAnswer("nonsense")
	if ok2 {
		t.Error("second submit was accepted")
	}
	if !fb2.Correct {
		t.Error("duplicate submit rewrote the recorded verdict")
	}
	if len(s.Results()) != 1 {
		t.Errorf("len(Results) = %d, want 1", len(s.Results()))
	}
	if s.CurrentStreak() != 1 {
		t.Errorf("CurrentStreak = %d, want 1 (duplicate must not double-count)", s.CurrentStreak())
	}
}

func TestSession_UnknownOptionScoredIncorrect(t *testing.T) {
	s := testSession(5)
	s.Start()

	fb, ok := s.SubmitAnswer("not_in_the_options_at_all")
	if !ok {
		t.Fatal("submit rejected")
	}
	if fb.Correct {
		t.Error("unknown option scored as correct")
	}
	if got := s.Results()[0]; got.Correct {
		t.Errorf("result recorded as correct: %+v", got)
	}
}

func TestSession_AdvanceBeforeAnswerIsNoop(t *testing.T) {
	s := testSession(5)
	first := s.Start()

	next, more := s.Advance()
	if !more {
		t.Fatal("Advance reported completion on round 1")
	}
	if next.CorrectAnswer != first.CorrectAnswer {
		t.Error("Advance before answering generated a new round")
	}
	if len(s.Results()) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(s.Results()))
	}
}

func TestSession_CompletionBoundary(t *testing.T) {
	s := testSession(5)
	s.Start()

	for i := 0; i < 4; i++ {
		answer(t, s, true)
		if s.Complete() {
			t.Fatalf("session complete after %d answers", i+1)
		}
		_, more := s.Advance()
		if !more {
			t.Fatalf("Advance reported completion after %d answers", i+1)
		}
	}

	answer(t, s, true)
	if !s.Complete() {
		t.Fatal("session not complete after 5th answer")
	}
	if s.State() != StateComplete {
		t.Errorf("state = %v, want Complete", s.State())
	}

	// Idempotent in Complete.
	if _, more := s.Advance(); more {
		t.Error("Advance in Complete reported more rounds")
	}
	if _, ok := s.SubmitAnswer("anything"); ok {
		t.Error("SubmitAnswer accepted in Complete")
	}
	if len(s.Results()) != 5 {
		t.Errorf("len(Results) = %d, want 5", len(s.Results()))
	}
}

func TestSession_StreakBookkeeping(t *testing.T) {
	s := testSession(5)
	s.Start()

	// Scenario: correct, correct, incorrect, correct, correct.
	seq := []bool{true, true, false, true, true}
	wantStreak := []int{1, 2, 0, 1, 2}

	for i, correct := range seq {
		answer(t, s, correct)
		if s.CurrentStreak() != wantStreak[i] {
			t.Errorf("after answer %d: CurrentStreak = %d, want %d", i, s.CurrentStreak(), wantStreak[i])
		}
		s.Advance()
	}

	if s.MaxStreak() != 2 {
		t.Errorf("MaxStreak = %d, want 2", s.MaxStreak())
	}
	if s.CurrentStreak() != 2 {
		t.Errorf("final CurrentStreak = %d, want 2", s.CurrentStreak())
	}
	if !s.Complete() {
		t.Error("session not complete")
	}
	if s.CorrectCount() != 4 {
		t.Errorf("CorrectCount = %d, want 4", s.CorrectCount())
	}
}

func TestSession_RoundTokenChangesPerRound(t *testing.T) {
	s := testSession(5)
	s.Start()
	tok := s.RoundToken()

	answer(t, s, true)
	if s.RoundToken() != tok {
		t.Error("token changed on answer; must only change on a new round")
	}

	s.Advance()
	if s.RoundToken() == tok {
		t.Error("token unchanged after Advance")
	}
}

func TestSession_ElapsedTimeRecorded(t *testing.T) {
	s := testSession(5)
	base := time.Unix(1700000000, 0)
	clock := base
	s.now = func() time.Time { return clock }

	s.Start()
	clock = clock.Add(1234 * time.Millisecond)
	answer(t, s, true)

	if got := s.Results()[0].TimeMs; got != 1234 {
		t.Errorf("TimeMs = %d, want 1234", got)
	}
}

func TestSession_InvalidSettingsNormalized(t *testing.T) {
	s := NewSession(Settings{QuestionCount: 7, Difficulty: "brutal"}, NewGenerator(rand.New(rand.NewSource(1))))
	got := s.Settings()
	if got.QuestionCount != 10 {
		t.Errorf("QuestionCount = %d, want 10", got.QuestionCount)
	}
	if got.Difficulty != DifficultyNormal {
		t.Errorf("Difficulty = %s, want normal", got.Difficulty)
	}
}

func TestSession_NoRepeatWithinSession(t *testing.T) {
	s := testSession(20)
	s.Start()

	asked := make(map[string]bool)
	for !s.Complete() {
		name := s.CurrentRound().CorrectAnswer
		if asked[name] {
			t.Fatalf("round repeated %q within a 20-round easy session", name)
		}
		asked[name] = true
		answer(t, s, true)
		s.Advance()
	}
}
