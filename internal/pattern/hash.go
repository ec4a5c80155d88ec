package pattern

import (
	"fmt"
	"strings"
)

// HashKey returns a structural digest of p: two patterns are Equal iff their
// HashKey strings are identical (assuming canonical IDSets, which every
// constructor in this package guarantees). It is used by the counting
// interpreter to key a reference-count table without relying on pointer
// identity, and is not meant as a display or wire format.
func HashKey(p Pattern) string { return p.hashKey() }

func (e *EVar) hashKey() string { return fmt.Sprintf("E%d", e.ID) }
func (s *SVar) hashKey() string { return fmt.Sprintf("S%d", s.ID) }
func (s *Symbol) hashKey() string { return "Y(" + s.Name + ")" }

func (i *Implies) hashKey() string { return "I(" + i.Left.hashKey() + "," + i.Right.hashKey() + ")" }
func (a *App) hashKey() string     { return "A(" + a.Left.hashKey() + "," + a.Right.hashKey() + ")" }

func (e *Exists) hashKey() string { return fmt.Sprintf("X%d(%s)", e.Var, e.Body.hashKey()) }
func (m *Mu) hashKey() string     { return fmt.Sprintf("U%d(%s)", m.Var, m.Body.hashKey()) }

func idSetKey(s IDSet) string {
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ".")
}

func (m *MetaVar) hashKey() string {
	return fmt.Sprintf("M%d[%s|%s|%s|%s|%s]", m.ID,
		idSetKey(m.EFresh), idSetKey(m.SFresh), idSetKey(m.Positive),
		idSetKey(m.Negative), idSetKey(m.ApplicationContext))
}

func (e *ESubst) hashKey() string {
	return fmt.Sprintf("ES%d(%s;%s)", e.EVarID, e.Pattern.hashKey(), e.Plug.hashKey())
}

func (s *SSubst) hashKey() string {
	return fmt.Sprintf("SS%d(%s;%s)", s.SVarID, s.Pattern.hashKey(), s.Plug.hashKey())
}
