package interp

// MemoizingInterpreter is a thin decorator that forwards every op to
// whatever Interpreter it wraps (the stateful base directly, or a
// serializing/pretty-printing interpreter stacked on top of it) and adds
// exactly one capability, reuseAware, that EmitPattern and
// internal/proofexpr's ProofThunk.Invoke consult before constructing a
// pattern or replaying a sub-proof.
//
// A key becomes eligible for reuse only if a prior CountingInterpreter dry
// run saw it constructed more than once; eligibility alone isn't enough to
// memoize for free (a serialized Save still costs two bytes), so only patterns/proofs
// that actually recur earn the memory slot.
type MemoizingInterpreter struct {
	Interpreter
	reusable map[string]bool
	saved    map[string]int
}

// NewMemoizing wraps inner, marking every key counts reports more than
// once as a memoization candidate.
func NewMemoizing(inner Interpreter, counts map[string]int) *MemoizingInterpreter {
	reusable := make(map[string]bool)
	for key, n := range counts {
		if n > 1 {
			reusable[key] = true
		}
	}
	return &MemoizingInterpreter{Interpreter: inner, reusable: reusable, saved: make(map[string]int)}
}

func (m *MemoizingInterpreter) reuseLookup(key string) (int, bool) {
	idx, ok := m.saved[key]
	return idx, ok
}

func (m *MemoizingInterpreter) reuseRecord(key string, index int) { m.saved[key] = index }

func (m *MemoizingInterpreter) isReusable(key string) bool { return m.reusable[key] }

// SavedCount reports how many distinct keys were actually memoized during
// this run, used by tests to assert how many Saves a run made.
func (m *MemoizingInterpreter) SavedCount() int { return len(m.saved) }
