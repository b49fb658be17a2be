package quiz

// Statistics are the persisted lifetime counters. They only ever grow:
// Finalize merges a completed session in, and nothing else mutates them.
type Statistics struct {
	TotalGamesPlayed    int `json:"totalGamesPlayed"`
	TotalCorrectAnswers int `json:"totalCorrectAnswers"`
	HighestStreak       int `json:"highestStreak"`
}

// Finalize folds a completed session into prior lifetime statistics.
// Pure function; the caller persists the result.
func Finalize(s *Session, prior Statistics) Statistics {
	next := Statistics{
		TotalGamesPlayed:    prior.TotalGamesPlayed + 1,
		TotalCorrectAnswers: prior.TotalCorrectAnswers + s.CorrectCount(),
		HighestStreak:       prior.HighestStreak,
	}
	if s.MaxStreak() > next.HighestStreak {
		next.HighestStreak = s.MaxStreak()
	}
	return next
}
