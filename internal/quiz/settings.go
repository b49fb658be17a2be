package quiz

// EffectIntensity controls how loud the presentation layer's feedback is.
// The core carries it as opaque configuration.
type EffectIntensity string

const (
	EffectSubtle   EffectIntensity = "subtle"
	EffectStandard EffectIntensity = "standard"
	EffectIntense  EffectIntensity = "intense"
)

// EffectIntensities lists all intensities in menu order.
var EffectIntensities = []EffectIntensity{EffectSubtle, EffectStandard, EffectIntense}

// QuestionCounts are the selectable game lengths.
var QuestionCounts = []int{5, 10, 20}

// Settings is the player-facing configuration for a game.
type Settings struct {
	QuestionCount   int             `json:"questionCount"`
	Difficulty      Difficulty      `json:"difficulty"`
	EffectIntensity EffectIntensity `json:"effectIntensity"`
	SoundEnabled    bool            `json:"soundEnabled"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		QuestionCount:   10,
		Difficulty:      DifficultyNormal,
		EffectIntensity: EffectStandard,
		SoundEnabled:    true,
	}
}

// Normalized clamps out-of-range values back to defaults, field by field.
// Stored settings from older or newer versions load through this so partial
// or unknown data degrades to defaults instead of failing.
func (s Settings) Normalized() Settings {
	def := DefaultSettings()

	validCount := false
	for _, c := range QuestionCounts {
		if s.QuestionCount == c {
			validCount = true
			break
		}
	}
	if !validCount {
		s.QuestionCount = def.QuestionCount
	}

	if _, ok := ParseDifficulty(string(s.Difficulty)); !ok {
		s.Difficulty = def.Difficulty
	}

	switch s.EffectIntensity {
	case EffectSubtle, EffectStandard, EffectIntense:
	default:
		s.EffectIntensity = def.EffectIntensity
	}

	return s
}
