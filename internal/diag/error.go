package diag

import "fmt"

// Error is a structured, coded error, the uniform shape every fatal
// condition in the interpreter stack returns. There is no local recovery:
// the proof pipeline is atomic per run.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New builds a coded error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Warning is a non-fatal diagnostic accumulated in an interpreter's
// warnings list. The CLI prints that list once, after a successful run;
// nothing is printed at the phase boundaries.
type Warning struct {
	Code    Code
	Message string
}

func (w Warning) String() string { return fmt.Sprintf("%s: %s", w.Code, w.Message) }
