package proofexpr

import (
	"fmt"

	"mlproof/internal/interp"
	"mlproof/internal/pattern"
)

// AxiomRef names a pattern published during the gamma phase so later proof
// code can refer back to it with LoadAxiom instead of reconstructing it.
type AxiomRef struct {
	name    string
	pattern pattern.Pattern
	index   int
	saved   bool
}

// Builder accumulates the three publication streams of a proof module
// (axioms, claims paired with their proofs, and nested submodules) and
// drives them through an interpreter in phase order: every axiom in the
// gamma phase, every claim in the claim phase, then every proof —
// matching claims LIFO — in the proof phase.
type Builder struct {
	Name       string
	axioms     []*AxiomRef
	claims     []*ProofThunk
	submodules []*Builder
}

// NewBuilder returns an empty builder for a module named name.
func NewBuilder(name string) *Builder {
	return &Builder{Name: name}
}

// AddAxiom declares p as an accepted axiom, returning a handle LoadAxiom
// can later use to re-push it from memory instead of rebuilding it.
func (b *Builder) AddAxiom(name string, p pattern.Pattern) *AxiomRef {
	ref := &AxiomRef{name: name, pattern: p}
	b.axioms = append(b.axioms, ref)
	return ref
}

// AddClaim registers pf as the next claim this module must publish and
// prove.
func (b *Builder) AddClaim(pf *ProofThunk) { b.claims = append(b.claims, pf) }

// AddSubmodule nests child so its axioms, claims, and proofs are executed
// as part of this module's own run.
func (b *Builder) AddSubmodule(child *Builder) { b.submodules = append(b.submodules, child) }

// LoadAxiom returns a function that re-pushes ref's pattern from memory
// rather than reconstructing it, usable anywhere a plug pattern is needed
// once ExecuteFull has published and saved ref.
func LoadAxiom(ref *AxiomRef) func(i interp.Interpreter) (pattern.Pattern, error) {
	return func(i interp.Interpreter) (pattern.Pattern, error) {
		if !ref.saved {
			return nil, fmt.Errorf("proofexpr: axiom %s has not been published yet", ref.name)
		}
		item, err := i.Load(ref.index)
		if err != nil {
			return nil, err
		}
		p, ok := interp.AsPattern(item)
		if !ok {
			return nil, fmt.Errorf("proofexpr: loaded axiom %s is not a pattern", ref.name)
		}
		return p, nil
	}
}

// ExecuteFull drives i through this builder's entire three-phase
// publication sequence, descending into submodules in the gamma phase (so
// their axioms are visible before any claim is stated). Claims are
// published in reverse order so that proving them in listed order pairs
// each proof with its claim against interp's LIFO claim stack.
func (b *Builder) ExecuteFull(i interp.Interpreter) error {
	if err := b.publishAxioms(i); err != nil {
		return err
	}
	if err := i.IntoClaimPhase(); err != nil {
		return err
	}
	if err := b.publishClaims(i); err != nil {
		return err
	}
	if err := i.IntoProofPhase(); err != nil {
		return err
	}
	return b.publishProofs(i)
}

func (b *Builder) publishAxioms(i interp.Interpreter) error {
	for _, sub := range b.submodules {
		if err := sub.publishAxioms(i); err != nil {
			return err
		}
	}
	for _, ref := range b.axioms {
		if _, err := interp.EmitPattern(i, ref.pattern); err != nil {
			return fmt.Errorf("proofexpr: module %s: axiom %s: %w", b.Name, ref.name, err)
		}
		idx, err := i.Save()
		if err != nil {
			return err
		}
		if err := i.PublishAxiom(); err != nil {
			return err
		}
		ref.index, ref.saved = idx, true
	}
	return nil
}

func (b *Builder) publishClaims(i interp.Interpreter) error {
	for _, sub := range b.submodules {
		if err := sub.publishClaims(i); err != nil {
			return err
		}
	}
	for n := len(b.claims) - 1; n >= 0; n-- {
		pf := b.claims[n]
		if _, err := interp.EmitPattern(i, pf.Conclusion); err != nil {
			return fmt.Errorf("proofexpr: module %s: claim %s: %w", b.Name, pf.Conclusion.Pretty(nil), err)
		}
		if err := i.PublishClaim(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) publishProofs(i interp.Interpreter) error {
	for _, pf := range b.claims {
		if _, err := pf.Invoke(i); err != nil {
			return fmt.Errorf("proofexpr: module %s: proof of %s: %w", b.Name, pf.Conclusion.Pretty(nil), err)
		}
		if err := i.PublishProof(); err != nil {
			return err
		}
	}
	for n := len(b.submodules) - 1; n >= 0; n-- {
		if err := b.submodules[n].publishProofs(i); err != nil {
			return err
		}
	}
	return nil
}
