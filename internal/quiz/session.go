package quiz

import "time"

// State is the lifecycle phase of a session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateComplete
)

// RoundResult is the immutable outcome of one answered round.
type RoundResult struct {
	RoundIndex    int
	Selected      string
	CorrectAnswer string
	Correct       bool
	TimeMs        int64
}

// Feedback is what SubmitAnswer hands back so the presentation layer can
// render the verdict without re-deriving it.
type Feedback struct {
	Correct       bool
	CorrectAnswer string
}

// Session is one play-through of a fixed number of rounds. All transitions
// happen synchronously on the caller's goroutine; a round accepts exactly one
// answer, and round N+1 is never generated before round N is answered.
type Session struct {
	settings Settings
	gen      *Generator
	seen     SeenSet

	state   State
	results []RoundResult

	round      Round
	roundToken int
	roundStart time.Time
	answered   bool

	currentStreak int
	maxStreak     int

	startTime time.Time
	now       func() time.Time
}

// NewSession creates a session in StateNotStarted. Settings are normalized
// on the way in so a session never runs with an invalid round count or tier.
func NewSession(settings Settings, gen *Generator) *Session {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Session{
		settings: settings.Normalized(),
		gen:      gen,
		seen:     NewSeenSet(),
		now:      time.Now,
	}
}

// Start generates the first round and moves to StateInProgress.
// Calling Start on an already-started session returns the current round.
func (s *Session) Start() Round {
	if s.state != StateNotStarted {
		return s.round
	}
	s.state = StateInProgress
	s.startTime = s.now()
	s.nextRound()
	return s.round
}

// SubmitAnswer records the answer for the current round. The first
// submission is authoritative: repeats, and submissions outside
// StateInProgress, are rejected with accepted=false (the returned Feedback
// still describes the current round so callers can ignore the duplicate).
// A selected value not among the round's options is scored as incorrect.
func (s *Session) SubmitAnswer(selected string) (Feedback, bool) {
	fb := Feedback{CorrectAnswer: s.round.CorrectAnswer}
	if s.state != StateInProgress || s.answered {
		if len(s.results) > 0 {
			last := s.results[len(s.results)-1]
			fb = Feedback{Correct: last.Correct, CorrectAnswer: last.CorrectAnswer}
		}
		return fb, false
	}

	correct := selected == s.round.CorrectAnswer
	elapsed := s.now().Sub(s.roundStart).Milliseconds()

	s.results = append(s.results, RoundResult{
		RoundIndex:    len(s.results),
		Selected:      selected,
		CorrectAnswer: s.round.CorrectAnswer,
		Correct:       correct,
		TimeMs:        elapsed,
	})
	s.answered = true

	if correct {
		s.currentStreak++
		if s.currentStreak > s.maxStreak {
			s.maxStreak = s.currentStreak
		}
	} else {
		s.currentStreak = 0
	}

	// Complete exactly when the final round's answer is recorded.
	if len(s.results) == s.settings.QuestionCount {
		s.state = StateComplete
	}

	return Feedback{Correct: correct, CorrectAnswer: s.round.CorrectAnswer}, true
}

// Advance moves to the next round after the current one is answered.
// Returns more=false once the session is complete (idempotent: calling
// Advance in StateComplete stays there). Calling Advance before the current
// round is answered is a no-op that returns the current round.
func (s *Session) Advance() (next Round, more bool) {
	if s.state == StateComplete {
		return Round{}, false
	}
	if s.state != StateInProgress {
		return Round{}, false
	}
	if !s.answered {
		return s.round, true
	}
	s.nextRound()
	return s.round, true
}

// nextRound generates a fresh round and re-arms the answer gate.
func (s *Session) nextRound() {
	s.round = s.gen.Generate(s.settings.Difficulty, s.seen)
	s.roundToken++
	s.roundStart = s.now()
	s.answered = false
}

// State returns the session's lifecycle phase.
func (s *Session) State() State { return s.state }

// Complete reports whether all rounds have been answered.
func (s *Session) Complete() bool { return s.state == StateComplete }

// Answered reports whether the current round has been answered.
func (s *Session) Answered() bool { return s.answered }

// CurrentRound returns the active round. Zero value before Start.
func (s *Session) CurrentRound() Round { return s.round }

// RoundIndex is the 0-based index of the active round.
func (s *Session) RoundIndex() int {
	if s.answered || s.state == StateComplete {
		return len(s.results) - 1
	}
	return len(s.results)
}

// RoundToken identifies the active round for stale-timer detection: a
// scheduled auto-advance compares the token it was armed with against the
// current one and no-ops on mismatch.
func (s *Session) RoundToken() int { return s.roundToken }

// Settings returns the normalized settings this session runs with.
func (s *Session) Settings() Settings { return s.settings }

// Results returns the answered rounds in order.
func (s *Session) Results() []RoundResult { return s.results }

// CurrentStreak is the run of consecutive correct answers ending at the most
// recent one; zero after any miss.
func (s *Session) CurrentStreak() int { return s.currentStreak }

// MaxStreak is the longest streak observed this session.
func (s *Session) MaxStreak() int { return s.maxStreak }

// CorrectCount is the number of correct answers so far.
func (s *Session) CorrectCount() int {
	n := 0
	for _, r := range s.results {
		if r.Correct {
			n++
		}
	}
	return n
}

// StartTime is when Start was called.
func (s *Session) StartTime() time.Time { return s.startTime }

// Elapsed is the wall time since Start.
func (s *Session) Elapsed() time.Duration { return s.now().Sub(s.startTime) }
