// Package propositional is a demonstration proof module: two lemmas
// (implication reflexivity and transitivity) derived from the Hilbert
// axioms using nothing but internal/proofexpr's combinators. It exists to exercise the
// proof-expression layer end to end, not to grow into a general-purpose
// theorem library.
package propositional

import (
	"mlproof/internal/pattern"
	"mlproof/internal/proofexpr"
)

func m(id uint32) pattern.Pattern { return pattern.CleanMetaVar(id) }

// ImpReflexivity derives |- phi0 -> phi0 from prop1, prop2, and two
// modus_ponens steps, composed via dynamic_inst. The resulting thunk emits
// the canonical byte sequence for this derivation.
func ImpReflexivity() (*proofexpr.ProofThunk, error) {
	selfImp := pattern.NewImplies(m(0), m(0))

	a := proofexpr.DynamicInst(proofexpr.Prop2(), []proofexpr.Subst{
		{ID: 2, Plug: m(0)},
		{ID: 1, Plug: selfImp},
	})
	b := proofexpr.DynamicInst(proofexpr.Prop1(), []proofexpr.Subst{
		{ID: 1, Plug: selfImp},
	})
	c, err := proofexpr.ModusPonens(a, b)
	if err != nil {
		return nil, err
	}
	d := proofexpr.DynamicInst(proofexpr.Prop1(), []proofexpr.Subst{
		{ID: 1, Plug: m(0)},
	})
	return proofexpr.ModusPonens(c, d)
}

// ImpTransitivity derives |- (phi1 -> phi2) -> ((phi0 -> phi1) -> (phi0 -> phi2))
// from prop1, prop2, and modus_ponens: the standard Hilbert-style
// transitivity lemma, built the same way ImpReflexivity is.
func ImpTransitivity() (*proofexpr.ProofThunk, error) {
	phi0, phi1, phi2 := m(0), m(1), m(2)

	// step1 weakens (phi1 -> phi2) under phi0 with prop1; step2 is prop2
	// distributing phi0. Chaining step1 into step2 yields the lemma.
	step1 := proofexpr.DynamicInst(proofexpr.Prop1(), []proofexpr.Subst{
		{ID: 0, Plug: pattern.NewImplies(phi1, phi2)},
		{ID: 1, Plug: phi0},
	})
	// step1: (phi1 -> phi2) -> (phi0 -> (phi1 -> phi2))

	step2 := proofexpr.DynamicInst(proofexpr.Prop2(), []proofexpr.Subst{
		{ID: 0, Plug: phi0},
		{ID: 1, Plug: phi1},
		{ID: 2, Plug: phi2},
	})
	// step2: (phi0 -> (phi1 -> phi2)) -> ((phi0 -> phi1) -> (phi0 -> phi2))

	chained, err := chainImplication(step1, step2)
	if err != nil {
		return nil, err
	}
	return chained, nil
}

// chainImplication composes two proved implications a: X -> Y and
// b: Y -> Z into a proof of X -> Z using prop2 and two modus_ponens steps
// (the standard Hilbert-system implication transitivity derivation).
func chainImplication(a, b *proofexpr.ProofThunk) (*proofexpr.ProofThunk, error) {
	aImp, okA := pattern.AsImplies(a.Conclusion)
	bImp, okB := pattern.AsImplies(b.Conclusion)
	if !okA || !okB || !aImp.Right.Equal(bImp.Left) {
		return nil, fmtChainError(a, b)
	}
	x, y, z := aImp.Left, aImp.Right, bImp.Right

	prop2Inst := proofexpr.DynamicInst(proofexpr.Prop2(), []proofexpr.Subst{
		{ID: 0, Plug: x},
		{ID: 1, Plug: y},
		{ID: 2, Plug: z},
	})
	// prop2Inst: (x -> (y -> z)) -> ((x -> y) -> (x -> z))

	prop1Inst := proofexpr.DynamicInst(proofexpr.Prop1(), []proofexpr.Subst{
		{ID: 0, Plug: pattern.NewImplies(y, z)},
		{ID: 1, Plug: x},
	})
	// prop1Inst: (y -> z) -> (x -> (y -> z))

	lifted, err := proofexpr.ModusPonens(prop1Inst, b)
	if err != nil {
		return nil, err
	}
	// lifted: x -> (y -> z)

	inner, err := proofexpr.ModusPonens(prop2Inst, lifted)
	if err != nil {
		return nil, err
	}
	// inner: (x -> y) -> (x -> z)

	return proofexpr.ModusPonens(inner, a)
}

func fmtChainError(a, b *proofexpr.ProofThunk) error {
	return &chainShapeError{a: a.Conclusion, b: b.Conclusion}
}

type chainShapeError struct{ a, b pattern.Pattern }

func (e *chainShapeError) Error() string {
	return "propositional: cannot chain " + e.a.Pretty(nil) + " with " + e.b.Pretty(nil)
}
