package proofexpr

import (
	"fmt"

	"mlproof/internal/interp"
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// Prop1 is the thunk for the axiom schema |- phi0 -> (phi1 -> phi0).
func Prop1() *ProofThunk {
	phi0, phi1 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1)
	return &ProofThunk{
		Conclusion: pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi0)),
		Build:      func(i interp.Interpreter) (proof.Proved, error) { return i.Prop1() },
	}
}

// Prop2 is the thunk for the axiom schema
// |- (phi0 -> (phi1 -> phi2)) -> ((phi0 -> phi1) -> (phi0 -> phi2)).
func Prop2() *ProofThunk {
	phi0, phi1, phi2 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1), pattern.CleanMetaVar(2)
	left := pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi2))
	right := pattern.NewImplies(pattern.NewImplies(phi0, phi1), pattern.NewImplies(phi0, phi2))
	return &ProofThunk{
		Conclusion: pattern.NewImplies(left, right),
		Build:      func(i interp.Interpreter) (proof.Proved, error) { return i.Prop2() },
	}
}

// Prop3 is the thunk for the axiom schema |- ((phi0 -> bot) -> bot) -> phi0.
func Prop3() *ProofThunk {
	phi0 := pattern.CleanMetaVar(0)
	bot := pattern.NewSymbol("⊥")
	inner := pattern.NewImplies(pattern.NewImplies(phi0, bot), bot)
	return &ProofThunk{
		Conclusion: pattern.NewImplies(inner, phi0),
		Build:      func(i interp.Interpreter) (proof.Proved, error) { return i.Prop3() },
	}
}

// ModusPonens combines major (a Proved(a -> b)) and minor (a Proved(a))
// into a thunk for Proved(b), rejecting the pair up front if their shapes
// can't possibly unify, rather than waiting to discover it at Build time.
func ModusPonens(major, minor *ProofThunk) (*ProofThunk, error) {
	imp, ok := pattern.AsImplies(major.Conclusion)
	if !ok {
		return nil, fmt.Errorf("proofexpr: modus_ponens: major premise %q is not an implication", major.Conclusion.Pretty(nil))
	}
	if !imp.Left.Equal(minor.Conclusion) {
		return nil, fmt.Errorf("proofexpr: modus_ponens: minor premise %q does not match antecedent %q", minor.Conclusion.Pretty(nil), imp.Left.Pretty(nil))
	}
	return &ProofThunk{
		Conclusion: imp.Right,
		Build: func(i interp.Interpreter) (proof.Proved, error) {
			if _, err := major.Invoke(i); err != nil {
				return proof.Proved{}, err
			}
			if _, err := minor.Invoke(i); err != nil {
				return proof.Proved{}, err
			}
			return i.ModusPonens()
		},
	}, nil
}

// ExistsQuantifier is the thunk for |- ESubst(phi0, x0, phi1) -> exists x0 . phi0.
func ExistsQuantifier() *ProofThunk {
	phi0, y := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1)
	concl := pattern.NewImplies(pattern.NewESubst(phi0, 0, y), pattern.NewExists(0, phi0))
	return &ProofThunk{
		Conclusion: concl,
		Build:      func(i interp.Interpreter) (proof.Proved, error) { return i.ExistsQuantifier() },
	}
}

// ExistsGeneralization lifts pf (a Proved(a -> b)) to Proved(exists v. a -> b),
// checking pf's side condition (v not free in b) before ever touching an
// interpreter.
func ExistsGeneralization(pf *ProofThunk, v uint32) (*ProofThunk, error) {
	imp, ok := pattern.AsImplies(pf.Conclusion)
	if !ok {
		return nil, fmt.Errorf("proofexpr: exists_generalization: premise %q is not an implication", pf.Conclusion.Pretty(nil))
	}
	if pattern.ContainsFreeEVar(imp.Right, v) {
		return nil, fmt.Errorf("proofexpr: exists_generalization: variable %d occurs free in %q", v, imp.Right.Pretty(nil))
	}
	concl := pattern.NewImplies(pattern.NewExists(v, imp.Left), imp.Right)
	return &ProofThunk{
		Conclusion: concl,
		Build: func(i interp.Interpreter) (proof.Proved, error) {
			if _, err := pf.Invoke(i); err != nil {
				return proof.Proved{}, err
			}
			return i.ExistsGeneralization(v)
		},
	}, nil
}

// Subst pairs a meta id with its plug. Instantiate/DynamicInst take an
// ordered slice of these, not a map: the order the caller lists them in is
// the order plugs are pushed (and thus the id order written to the wire),
// which is semantically irrelevant to the resulting pattern but is part of
// the exact byte sequence a proof-expression run produces.
type Subst struct {
	ID   uint32
	Plug pattern.Pattern
}

func substDelta(substs []Subst) map[uint32]pattern.Pattern {
	delta := make(map[uint32]pattern.Pattern, len(substs))
	for _, s := range substs {
		delta[s.ID] = s.Plug
	}
	return delta
}

// instantiateWith builds the common Instantiate/DynamicInst thunk: emit
// every plug (via emitPlug, so the caller chooses fresh or reuse-aware
// construction) before invoking pf, so pf's Proved ends up on top of stack
// exactly as interp.Instantiate requires (it pops its target first, then
// the plugs in reverse emission order — see internal/interp/base.go).
func instantiateWith(pf *ProofThunk, substs []Subst, emitPlug func(interp.Interpreter, pattern.Pattern) (pattern.Pattern, error)) *ProofThunk {
	delta := substDelta(substs)
	ids := make([]uint32, len(substs))
	for i, s := range substs {
		ids[i] = s.ID
	}
	concl := pf.Conclusion.Instantiate(delta)
	return &ProofThunk{
		Conclusion: concl,
		Build: func(i interp.Interpreter) (proof.Proved, error) {
			for j := len(substs) - 1; j >= 0; j-- {
				if _, err := emitPlug(i, substs[j].Plug); err != nil {
					return proof.Proved{}, err
				}
			}
			if _, err := pf.Invoke(i); err != nil {
				return proof.Proved{}, err
			}
			item, err := i.Instantiate(ids)
			if err != nil {
				return proof.Proved{}, err
			}
			pv, ok := interp.AsProved(item)
			if !ok {
				return proof.Proved{}, fmt.Errorf("proofexpr: instantiate did not produce a proof")
			}
			return pv, nil
		},
	}
}

// Instantiate substitutes substs into pf's conclusion, constructing each
// plug fresh: it never consults or grows the memoizing interpreter's reuse
// table, even if one is active.
func Instantiate(pf *ProofThunk, substs []Subst) *ProofThunk {
	return instantiateWith(pf, substs, interp.EmitPatternFresh)
}

// DynamicInst is Instantiate, but lifts each plug through EmitPattern
// first, so a plug already known reusable skips straight to a Load.
func DynamicInst(pf *ProofThunk, substs []Subst) *ProofThunk {
	return instantiateWith(pf, substs, interp.EmitPattern)
}
