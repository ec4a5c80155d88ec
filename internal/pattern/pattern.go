// Package pattern implements the immutable term algebra of the matching-logic
// object language: element/set variables, symbols, implication, application,
// the two binders, schematic metavariables, and deferred substitutions.
//
// Values are structurally compared, never by identity; sharing subtrees is an
// implementation detail the memoizer exploits, not part of the semantics.
package pattern

import "fmt"

// Pattern is any term of the object language. There is exactly one concrete
// type per grammar variant; isPattern is unexported so the variant set is
// closed to this package.
type Pattern interface {
	isPattern()
	// Equal reports structural equality: same variant, same fields,
	// recursively.
	Equal(other Pattern) bool
	// Instantiate replaces every MetaVar(id) with delta[id], leaving
	// MetaVars outside delta's domain untouched.
	Instantiate(delta map[uint32]Pattern) Pattern
	// Pretty renders a textual form under opts.
	Pretty(opts *PrettyOptions) string
	// hashKey is a collision-resistant structural digest used for
	// memoization bookkeeping; two equal patterns always produce the same
	// key, but it is not meant to be a stable wire or display format.
	hashKey() string
}

// EVar is an element variable referenced by a numeric id.
type EVar struct{ ID uint32 }

// SVar is a set variable referenced by a numeric id.
type SVar struct{ ID uint32 }

// Symbol is a nullary constant.
type Symbol struct{ Name string }

// Implies is logical implication.
type Implies struct{ Left, Right Pattern }

// App is application.
type App struct{ Left, Right Pattern }

// Exists binds an element variable over Body.
type Exists struct {
	Var  uint32
	Body Pattern
}

// Mu binds a set variable over Body. Construction enforces that Var occurs
// only positively in Body (see NewMu).
type Mu struct {
	Var  uint32
	Body Pattern
}

// MetaVar is a schematic hole carrying side conditions that proof rules
// check when they fire.
type MetaVar struct {
	ID                 uint32
	EFresh             IDSet
	SFresh             IDSet
	Positive           IDSet
	Negative           IDSet
	ApplicationContext IDSet
}

// ESubst is a deferred substitution of an element variable. It is a value,
// not an eager rewrite: it normalizes only inside Instantiate.
type ESubst struct {
	Pattern Pattern
	EVarID  uint32
	Plug    Pattern
}

// SSubst is a deferred substitution of a set variable.
type SSubst struct {
	Pattern Pattern
	SVarID  uint32
	Plug    Pattern
}

func (*EVar) isPattern()    {}
func (*SVar) isPattern()    {}
func (*Symbol) isPattern()  {}
func (*Implies) isPattern() {}
func (*App) isPattern()     {}
func (*Exists) isPattern()  {}
func (*Mu) isPattern()      {}
func (*MetaVar) isPattern() {}
func (*ESubst) isPattern()  {}
func (*SSubst) isPattern()  {}

// NewEVar constructs an element variable.
func NewEVar(id uint32) *EVar { return &EVar{ID: id} }

// NewSVar constructs a set variable.
func NewSVar(id uint32) *SVar { return &SVar{ID: id} }

// NewSymbol constructs a nullary constant.
func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

// NewImplies constructs an implication.
func NewImplies(left, right Pattern) *Implies { return &Implies{Left: left, Right: right} }

// NewApp constructs an application.
func NewApp(left, right Pattern) *App { return &App{Left: left, Right: right} }

// NewExists constructs an existential binder. Unlike Mu, there is no
// well-formedness obligation to check.
func NewExists(v uint32, body Pattern) *Exists { return &Exists{Var: v, Body: body} }

// NewMu constructs a least-fixpoint binder, rejecting bodies where Var does
// not occur only positively (invariant 3 of the pattern algebra).
func NewMu(v uint32, body Pattern) (*Mu, error) {
	if !occursOnlyPositively(body, v) {
		return nil, fmt.Errorf("pattern: svar %d does not occur only positively in mu body", v)
	}
	return &Mu{Var: v, Body: body}, nil
}

// MustMu is NewMu but panics on a positivity violation; useful for
// hand-written proof libraries where the body is known-good at compile time.
func MustMu(v uint32, body Pattern) *Mu {
	m, err := NewMu(v, body)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMetaVar constructs a schematic metavariable, canonicalizing its five
// side-condition sets (sorted, deduplicated; see IDSet).
func NewMetaVar(id uint32, eFresh, sFresh, positive, negative, appCtx []uint32) *MetaVar {
	return &MetaVar{
		ID:                 id,
		EFresh:             NewIDSet(eFresh...),
		SFresh:             NewIDSet(sFresh...),
		Positive:           NewIDSet(positive...),
		Negative:           NewIDSet(negative...),
		ApplicationContext: NewIDSet(appCtx...),
	}
}

// CleanMetaVar constructs a metavariable with all side-condition sets empty.
func CleanMetaVar(id uint32) *MetaVar { return &MetaVar{ID: id} }

// NewESubst constructs a deferred element-variable substitution.
func NewESubst(p Pattern, evarID uint32, plug Pattern) *ESubst {
	return &ESubst{Pattern: p, EVarID: evarID, Plug: plug}
}

// NewSSubst constructs a deferred set-variable substitution.
func NewSSubst(p Pattern, svarID uint32, plug Pattern) *SSubst {
	return &SSubst{Pattern: p, SVarID: svarID, Plug: plug}
}

// AsImplies extracts the two children of an Implies, failing when the head
// constructor differs.
func AsImplies(p Pattern) (*Implies, bool) {
	im, ok := p.(*Implies)
	return im, ok
}
