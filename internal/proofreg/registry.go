// Package proofreg is the module registry: a name -> builder lookup for the
// small, fixed set of demonstration proof modules this repository ships.
package proofreg

import (
	"fmt"
	"sort"

	"mlproof/internal/pattern"
	"mlproof/internal/proofexpr"
	"mlproof/internal/proofs/propositional"
)

// Constructor builds a fresh proofexpr.Builder for one named proof module.
// Fresh per call so repeated lookups (e.g. in tests) never share AxiomRef
// save-state across runs.
type Constructor func() (*proofexpr.Builder, error)

var registry = map[string]Constructor{
	"propositional": buildPropositional,
}

// Lookup returns the constructor registered under name, or an error naming
// the known modules if none matches.
func Lookup(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("proofreg: unknown module %q (known: %v)", name, Names())
	}
	return ctor, nil
}

// Names returns the registered module names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildPropositional() (*proofexpr.Builder, error) {
	b := proofexpr.NewBuilder("propositional")

	phi0, phi1 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1)
	phi2 := pattern.CleanMetaVar(2)
	bot := pattern.NewSymbol("⊥")

	b.AddAxiom("prop1", pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi0)))
	b.AddAxiom("prop2", pattern.NewImplies(
		pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi2)),
		pattern.NewImplies(pattern.NewImplies(phi0, phi1), pattern.NewImplies(phi0, phi2)),
	))
	b.AddAxiom("prop3", pattern.NewImplies(
		pattern.NewImplies(pattern.NewImplies(phi0, bot), bot),
		phi0,
	))

	refl, err := propositional.ImpReflexivity()
	if err != nil {
		return nil, fmt.Errorf("proofreg: propositional: %w", err)
	}
	b.AddClaim(refl)

	trans, err := propositional.ImpTransitivity()
	if err != nil {
		return nil, fmt.Errorf("proofreg: propositional: %w", err)
	}
	b.AddClaim(trans)

	return b, nil
}
