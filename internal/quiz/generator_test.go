package quiz

import (
	"math/rand"
	"testing"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestValidatePools(t *testing.T) {
	if err := ValidatePools(); err != nil {
		t.Fatalf("ValidatePools() = %v, want nil", err)
	}
}

func TestGenerate_OptionIntegrity(t *testing.T) {
	gen := testGenerator(1)

	for _, d := range Difficulties {
		pool := PoolFor(d)
		decoys := make(map[string]bool, len(pool.Decoys))
		for _, name := range pool.Decoys {
			decoys[name] = true
		}

		seen := NewSeenSet()
		for i := 0; i < 50; i++ {
			r := gen.Generate(d, seen)

			if len(r.Options) != OptionsPerRound {
				t.Fatalf("%s: len(Options) = %d, want %d", d, len(r.Options), OptionsPerRound)
			}
			if r.Difficulty != d {
				t.Errorf("%s: round difficulty = %s", d, r.Difficulty)
			}

			correctCount := 0
			uniq := make(map[string]bool)
			for _, opt := range r.Options {
				if uniq[opt] {
					t.Errorf("%s: duplicate option %q", d, opt)
				}
				uniq[opt] = true
				if opt == r.CorrectAnswer {
					correctCount++
				} else if !decoys[opt] {
					t.Errorf("%s: option %q is neither the answer nor a tier decoy", d, opt)
				}
			}
			if correctCount != 1 {
				t.Errorf("%s: correct answer appears %d times in options", d, correctCount)
			}
		}
	}
}

func TestGenerate_NoRepeatUntilExhaustion(t *testing.T) {
	gen := testGenerator(2)
	seen := NewSeenSet()
	pool := PoolFor(DifficultyEasy)
	n := len(pool.Real)

	asked := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		r := gen.Generate(DifficultyEasy, seen)
		if asked[r.CorrectAnswer] {
			t.Fatalf("generation %d repeated %q before exhaustion", i, r.CorrectAnswer)
		}
		asked[r.CorrectAnswer] = true
	}

	if seen.Len() != n {
		t.Errorf("seen.Len() = %d after full cycle, want %d", seen.Len(), n)
	}
}

func TestGenerate_ExhaustionResetsSeenSetOnce(t *testing.T) {
	// The easy tier holds 52 real names; the 53rd draw must clear the
	// seen-set exactly once and keep going without error.
	gen := testGenerator(3)
	seen := NewSeenSet()
	n := len(PoolFor(DifficultyEasy).Real)
	if n != 52 {
		t.Fatalf("easy tier has %d real names, want 52", n)
	}

	for i := 0; i < n; i++ {
		gen.Generate(DifficultyEasy, seen)
	}

	r := gen.Generate(DifficultyEasy, seen)
	if r.CorrectAnswer == "" {
		t.Fatal("post-exhaustion round has empty answer")
	}
	// The clear happened during call n+1, which then recorded one name.
	if seen.Len() != 1 {
		t.Errorf("seen.Len() = %d after reset draw, want 1", seen.Len())
	}
}

func TestGenerate_ShuffleVariesCorrectPosition(t *testing.T) {
	gen := testGenerator(4)
	positions := make(map[int]bool)

	for i := 0; i < 200; i++ {
		seen := NewSeenSet()
		r := gen.Generate(DifficultyNormal, seen)
		for pos, opt := range r.Options {
			if opt == r.CorrectAnswer {
				positions[pos] = true
			}
		}
	}

	// Over 200 rounds every slot should host the correct answer at
	// least once; a fixed position would mean the shuffle is broken.
	for pos := 0; pos < OptionsPerRound; pos++ {
		if !positions[pos] {
			t.Errorf("correct answer never landed in position %d", pos)
		}
	}
}

func TestGenerate_MutatesOnlySeenSet(t *testing.T) {
	gen := testGenerator(5)
	seen := NewSeenSet()

	before := len(PoolFor(DifficultyHard).Real)
	r := gen.Generate(DifficultyHard, seen)
	after := len(PoolFor(DifficultyHard).Real)

	if before != after {
		t.Errorf("pool size changed %d -> %d", before, after)
	}
	if !seen.Has(r.CorrectAnswer) {
		t.Errorf("seen-set missing drawn name %q", r.CorrectAnswer)
	}
	if seen.Len() != 1 {
		t.Errorf("seen.Len() = %d, want 1", seen.Len())
	}
}
