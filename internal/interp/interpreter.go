package interp

import (
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// Interpreter is the capability set every concrete variant (stateful,
// serializing, pretty-printing, counting, memoizing) implements, differing
// only in which side effects accompany each state mutation. All
// pattern-constructing ops are phase-insensitive; proof rules and
// publication ops enforce the phase discipline and return a *diag.Error
// (wrapped as error) on violation.
type Interpreter interface {
	Phase() Phase
	Stack() []StackItem
	Memory() []StackItem
	Warnings() []string

	// Pattern-constructing ops.
	EVar(id uint32) (pattern.Pattern, error)
	SVar(id uint32) (pattern.Pattern, error)
	Symbol(name string) (pattern.Pattern, error)
	Implies() (pattern.Pattern, error)
	App() (pattern.Pattern, error)
	Exists(v uint32) (pattern.Pattern, error)
	Mu(v uint32) (pattern.Pattern, error)
	MetaVar(id uint32, eFresh, sFresh, positive, negative, appctx []uint32) (pattern.Pattern, error)
	CleanMetaVar(id uint32) (pattern.Pattern, error)
	ESubst(evarID uint32) (pattern.Pattern, error)
	SSubst(svarID uint32) (pattern.Pattern, error)

	// Instantiate applies to whichever kind of value is on top of the
	// stack: a Pattern (pattern-level instantiation) or a Proved (the
	// proof rule of the same name acting on its conclusion).
	Instantiate(metaIDs []uint32) (StackItem, error)

	// Proof rules.
	Prop1() (proof.Proved, error)
	Prop2() (proof.Proved, error)
	Prop3() (proof.Proved, error)
	ModusPonens() (proof.Proved, error)
	ExistsQuantifier() (proof.Proved, error)
	ExistsGeneralization(v uint32) (proof.Proved, error)

	// Memory and publication.
	Save() (int, error)
	Load(index int) (StackItem, error)
	Pop() error
	PublishAxiom() error
	PublishClaim() error
	PublishProof() error

	// Phase transitions.
	IntoClaimPhase() error
	IntoProofPhase() error
}

// reuseAware is implemented only by the memoizing interpreter. EmitPattern
// and ProofThunk.Invoke (internal/proofexpr) consult it through a type
// assertion so every other interpreter variant stays oblivious to
// memoization.
type reuseAware interface {
	reuseLookup(key string) (int, bool)
	reuseRecord(key string, index int)
	isReusable(key string) bool
}
