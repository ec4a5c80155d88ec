package pattern

import "fmt"

// Notation is a named printable abbreviation for a pattern shape. It affects
// only Pretty output; it never changes equality, instantiation, or the wire
// format.
type Notation struct {
	Name  string
	Shape Pattern
}

// PrettyOptions controls Pretty rendering. The zero value renders every
// pattern in its raw structural form with no notation substitution
// ("notation-suppressed"), matching what the serialize/deserialize
// round-trip requires.
type PrettyOptions struct {
	UseNotation bool
	Notations   []*Notation
}

func (o *PrettyOptions) lookup(p Pattern) (string, bool) {
	if o == nil || !o.UseNotation {
		return "", false
	}
	for _, n := range o.Notations {
		if n.Shape.Equal(p) {
			return n.Name, true
		}
	}
	return "", false
}

func (e *EVar) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(e); ok {
		return name
	}
	return fmt.Sprintf("x%d", e.ID)
}

func (s *SVar) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(s); ok {
		return name
	}
	return fmt.Sprintf("X%d", s.ID)
}

func (s *Symbol) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(s); ok {
		return name
	}
	return s.Name
}

func (i *Implies) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(i); ok {
		return name
	}
	return fmt.Sprintf("(%s -> %s)", i.Left.Pretty(opts), i.Right.Pretty(opts))
}

func (a *App) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(a); ok {
		return name
	}
	return fmt.Sprintf("(%s %s)", a.Left.Pretty(opts), a.Right.Pretty(opts))
}

func (e *Exists) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(e); ok {
		return name
	}
	return fmt.Sprintf("(exists x%d . %s)", e.Var, e.Body.Pretty(opts))
}

func (m *Mu) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(m); ok {
		return name
	}
	return fmt.Sprintf("(mu X%d . %s)", m.Var, m.Body.Pretty(opts))
}

func (m *MetaVar) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(m); ok {
		return name
	}
	return fmt.Sprintf("phi%d", m.ID)
}

func (e *ESubst) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(e); ok {
		return name
	}
	return fmt.Sprintf("%s[%s/x%d]", e.Pattern.Pretty(opts), e.Plug.Pretty(opts), e.EVarID)
}

func (s *SSubst) Pretty(opts *PrettyOptions) string {
	if name, ok := opts.lookup(s); ok {
		return name
	}
	return fmt.Sprintf("%s[%s/X%d]", s.Pattern.Pretty(opts), s.Plug.Pretty(opts), s.SVarID)
}
