package interp

import (
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// StackItem is anything that can live on the interpreter stack or in
// memory: a Pattern or a Proved. The stack is an ordered sequence of
// entries, each either a Pattern or a Proved.
type StackItem interface {
	Pretty(opts *pattern.PrettyOptions) string
}

// AsPattern type-asserts item as a Pattern.
func AsPattern(item StackItem) (pattern.Pattern, bool) {
	p, ok := item.(pattern.Pattern)
	return p, ok
}

// AsProved type-asserts item as a Proved.
func AsProved(item StackItem) (proof.Proved, bool) {
	pv, ok := item.(proof.Proved)
	return pv, ok
}

// itemKey returns the memoization/counting key for item: patterns and
// proofs are tracked in separate namespaces (a pattern and a proof can
// share a structural hash of their conclusion without colliding).
func itemKey(item StackItem) string {
	if p, ok := AsPattern(item); ok {
		return "P:" + pattern.HashKey(p)
	}
	pv, _ := AsProved(item)
	return "R:" + pattern.HashKey(pv.Conclusion())
}
