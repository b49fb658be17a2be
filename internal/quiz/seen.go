package quiz

// SeenSet tracks real syscall names already asked within one session so a
// name is never repeated until the tier is exhausted. Owned by a single
// session; never shared across sessions.
type SeenSet map[string]struct{}

// NewSeenSet returns an empty seen-set.
func NewSeenSet() SeenSet {
	return make(SeenSet)
}

// Add marks name as asked.
func (s SeenSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name has been asked this cycle.
func (s SeenSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names asked this cycle.
func (s SeenSet) Len() int {
	return len(s)
}

// Clear empties the set, starting a new exhaustion cycle.
func (s SeenSet) Clear() {
	for name := range s {
		delete(s, name)
	}
}
