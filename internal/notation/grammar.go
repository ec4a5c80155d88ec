// Package notation parses notation template declarations — textual
// abbreviations of the form `notation name = template` where `%N` stands
// for the metavariable with id N — into pattern.Notation values usable by
// pattern.PrettyOptions. It never affects equality, instantiation, or the
// wire codec; it only controls how Pretty renders a pattern.
//
// The grammar is intentionally small: an arrow chain over atoms, built with
// struct tags rather than a hand-rolled parser.
package notation

// Decl is the root production: `notation <name> = <template>`.
type Decl struct {
	Name     string    `"notation" @Ident "="`
	Template *Template `@@`
}

// Template is a right-associative chain of atoms joined by "->", matching
// the same associativity pattern.NewImplies chains use everywhere else in
// this module.
type Template struct {
	Head *Atom   `@@`
	Rest []*Atom `( "->" @@ )*`
}

// Atom is either a metavariable placeholder (%N), a bare nullary symbol
// name, or a parenthesized sub-template.
type Atom struct {
	MetaVar *int      `  "%" @Integer`
	Symbol  string    `| @Ident`
	Group   *Template `| "(" @@ ")"`
}
