package quiz

import (
	"math/rand"
	"time"
)

// OptionsPerRound is the number of choices shown for every round:
// one real syscall and two decoys.
const OptionsPerRound = 3

// Round is one question instance. Immutable once generated.
type Round struct {
	// CorrectAnswer is the real syscall name among the options.
	CorrectAnswer string

	// Options holds the three choices in presentation order.
	Options []string

	// Difficulty is the tier this round was drawn from.
	Difficulty Difficulty
}

// Generator produces rounds from the static pools. Randomness comes from the
// injected source so tests can be deterministic.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil rng gets a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate draws one round for the given difficulty. The seen-set is mutated
// in place: the drawn name is added, and when every real name of the tier has
// been asked the set is cleared first so generation resumes with the full
// tier (names may repeat across cycles, never within one).
//
// Pools are static and checked by ValidatePools at startup, so Generate
// assumes a valid tier: at least one real name and two decoys.
func (g *Generator) Generate(d Difficulty, seen SeenSet) Round {
	pool := PoolFor(d)

	available := make([]string, 0, len(pool.Real))
	for _, name := range pool.Real {
		if !seen.Has(name) {
			available = append(available, name)
		}
	}
	if len(available) == 0 {
		// Tier exhausted: explicit clear-and-recompute, no recursion.
		seen.Clear()
		available = append(available, pool.Real...)
	}

	correct := available[g.rng.Intn(len(available))]
	seen.Add(correct)

	// Two distinct decoys without replacement.
	i := g.rng.Intn(len(pool.Decoys))
	j := g.rng.Intn(len(pool.Decoys) - 1)
	if j >= i {
		j++
	}

	options := []string{correct, pool.Decoys[i], pool.Decoys[j]}
	g.rng.Shuffle(len(options), func(a, b int) {
		options[a], options[b] = options[b], options[a]
	})

	return Round{
		CorrectAnswer: correct,
		Options:       options,
		Difficulty:    d,
	}
}
