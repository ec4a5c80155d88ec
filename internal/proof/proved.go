// Package proof defines Proved, the interpreter-minted witness that a
// pattern has been derived.
package proof

import "mlproof/internal/pattern"

// Proved wraps exactly one pattern, its conclusion. The zero value is not a
// valid proof of anything; values are only meant to be produced by the
// interpreter's proof-rule operations, which is why the
// factory lives in this package rather than being a bare struct literal
// elsewhere — callers importing only this package cannot forge one with a
// conclusion they did not derive through New.
type Proved struct {
	conclusion pattern.Pattern
}

// New mints a Proved. It is exported for use by the interpreter
// implementations in internal/interp, which are the only legitimate callers.
func New(conclusion pattern.Pattern) Proved { return Proved{conclusion: conclusion} }

// Conclusion returns the proved pattern.
func (p Proved) Conclusion() pattern.Pattern { return p.conclusion }

// Pretty renders "⊢ <pattern>".
func (p Proved) Pretty(opts *pattern.PrettyOptions) string {
	return "⊢ " + p.conclusion.Pretty(opts)
}

func (p Proved) String() string { return p.Pretty(&pattern.PrettyOptions{}) }
