// Package proofexpr implements the proof-expression layer: a small
// combinator algebra over ProofThunk that lets a proof library (see
// internal/proofs/propositional) describe a derivation as an ordinary Go
// value tree instead of hand-sequencing interpreter calls, while still
// compiling down to exactly the interpreter's proof-rule ops.
package proofexpr

import (
	"fmt"

	"mlproof/internal/interp"
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// ProofThunk is a deferred derivation: Conclusion is known statically (so
// combinators can check shapes before ever touching an interpreter), and
// Build is the closure that actually drives one when invoked.
type ProofThunk struct {
	Conclusion pattern.Pattern
	Build      func(i interp.Interpreter) (proof.Proved, error)
}

// Invoke runs the thunk against i, first checking whether i's interpreter
// already has this exact conclusion memoized (see interp.TryReuse) — if
// so, the entire Build closure, and everything it would have recursively
// invoked, is skipped in favor of a single Load. Otherwise it builds,
// asserts the result matches Conclusion, and offers it up for memoization.
func (t *ProofThunk) Invoke(i interp.Interpreter) (proof.Proved, error) {
	key := "R:" + pattern.HashKey(t.Conclusion)
	if item, found, err := interp.TryReuse(i, key); err != nil {
		return proof.Proved{}, err
	} else if found {
		pv, ok := interp.AsProved(item)
		if !ok {
			return proof.Proved{}, fmt.Errorf("proofexpr: memoized entry for %q is not a proof", t.Conclusion.Pretty(nil))
		}
		return pv, nil
	}
	pv, err := t.Build(i)
	if err != nil {
		return proof.Proved{}, err
	}
	if !pv.Conclusion().Equal(t.Conclusion) {
		return proof.Proved{}, fmt.Errorf("proofexpr: thunk built %q, expected %q", pv.Conclusion().Pretty(nil), t.Conclusion.Pretty(nil))
	}
	if err := interp.RecordReuse(i, key); err != nil {
		return proof.Proved{}, err
	}
	return pv, nil
}
