package notation

import (
	"fmt"

	"mlproof/internal/pattern"
)

// Compile parses a `notation name = template` declaration and builds the
// pattern.Notation it denotes. The template's "->" chain right-associates
// into pattern.Implies nodes exactly the way every other Implies chain in
// this module does; "%N" becomes pattern.CleanMetaVar(N); a bare identifier
// becomes a nullary pattern.Symbol of that name.
func Compile(source string) (*pattern.Notation, error) {
	decl, err := ParseString("notation", source)
	if err != nil {
		return nil, err
	}
	shape, err := compileTemplate(decl.Template)
	if err != nil {
		return nil, fmt.Errorf("notation %s: %w", decl.Name, err)
	}
	return &pattern.Notation{Name: decl.Name, Shape: shape}, nil
}

// MustCompile is Compile but panics on error, for wiring fixed notations at
// package-init time.
func MustCompile(source string) *pattern.Notation {
	n, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return n
}

func compileTemplate(t *Template) (pattern.Pattern, error) {
	atoms := append([]*Atom{t.Head}, t.Rest...)
	patterns := make([]pattern.Pattern, len(atoms))
	for i, a := range atoms {
		p, err := compileAtom(a)
		if err != nil {
			return nil, err
		}
		patterns[i] = p
	}
	// Right-associate: a -> b -> c parses as a -> (b -> c).
	result := patterns[len(patterns)-1]
	for i := len(patterns) - 2; i >= 0; i-- {
		result = pattern.NewImplies(patterns[i], result)
	}
	return result, nil
}

func compileAtom(a *Atom) (pattern.Pattern, error) {
	switch {
	case a.MetaVar != nil:
		if *a.MetaVar < 0 {
			return nil, fmt.Errorf("metavariable id %d must be non-negative", *a.MetaVar)
		}
		return pattern.CleanMetaVar(uint32(*a.MetaVar)), nil
	case a.Group != nil:
		return compileTemplate(a.Group)
	case a.Symbol != "":
		return pattern.NewSymbol(a.Symbol), nil
	default:
		return nil, fmt.Errorf("empty template atom")
	}
}
