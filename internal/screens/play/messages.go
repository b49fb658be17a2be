package play

import (
	"github.com/yuiseki/sysquiz/internal/quiz"
)

// gameReadyMsg is sent when the session has been built and started. A
// non-nil Err means the game could not start at all.
type gameReadyMsg struct {
	Session *quiz.Session
	GameID  string
	Err     error
}

// autoAdvanceMsg fires after the feedback delay. Token identifies the
// round it was armed for; a stale token means the round already moved on.
type autoAdvanceMsg struct {
	Token int
}

// gameFinishedMsg is sent when the finished game has been folded into the
// lifetime statistics and persisted.
type gameFinishedMsg struct {
	Lifetime quiz.Statistics
	Err      error
}
