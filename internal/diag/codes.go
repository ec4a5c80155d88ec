// Package diag implements a structured error/warning taxonomy: one stable
// code per error kind, plus the non-fatal warning channel an interpreter
// accumulates across a run.
package diag

// Code identifies an error or warning kind. Codes below P0800 are fatal;
// P0800 and above are warnings.
type Code string

const (
	ShapeMismatch           Code = "P0001"
	PhaseViolation          Code = "P0002"
	ClaimMismatch           Code = "P0003"
	MetaObligationViolation Code = "P0004"
	UnknownReference        Code = "P0005"
	IOFailure               Code = "P0006"

	UnsafeInterpretation Code = "P0800"
)

// IsWarning reports whether code names a warning rather than a fatal error.
func IsWarning(code Code) bool { return code >= "P0800" }

// Description returns a short human-readable description of code.
func Description(code Code) string {
	switch code {
	case ShapeMismatch:
		return "an operand's shape did not match what the operation expected"
	case PhaseViolation:
		return "the operation is not legal in the interpreter's current phase"
	case ClaimMismatch:
		return "a published proof's conclusion did not match the next expected claim"
	case MetaObligationViolation:
		return "an instantiation plug violated a metavariable's side condition"
	case UnknownReference:
		return "a variable, memory slot, or notation name was not bound"
	case IOFailure:
		return "writing to an output sink failed"
	case UnsafeInterpretation:
		return "a safety check was bypassed by an unsafe interpreter"
	default:
		return "unknown diagnostic"
	}
}
