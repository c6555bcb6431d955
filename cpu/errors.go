package cpu

import (
	"errors"
	"fmt"
)

// ErrInfiniteLoopDetected is returned by Run when the CPU's visited-state
// fingerprint recurs, indicating the program has entered a cycle with no
// externally observable progress. It is a defensive guard for
// bounded-state programs, not a general halting oracle, and best-effort:
// the set of visited fingerprints is not capped and grows with every
// Step until the next Reset.
var ErrInfiniteLoopDetected = errors.New("infinite loop detected")

// ErrInvalidInstruction reports a machine-code word that could not be
// parsed, or that does not fit in 16 bits.
type ErrInvalidInstruction struct {
	Message string
	Raw     string
}

func (e *ErrInvalidInstruction) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Raw)
}

// ErrInvalidValueCode reports an operand code outside the 6-bit range the
// instruction codec ever produces. The instruction decoder masks operand
// fields to 6 bits, so in practice this can only be reached defensively;
// it exists so the dispatcher's operand switch has an exhaustive default.
type ErrInvalidValueCode struct {
	Code uint16
}

func (e *ErrInvalidValueCode) Error() string {
	return fmt.Sprintf("value code was out of range: %#x", e.Code)
}

// ErrOpCodeNotImplemented reports a non-basic sub-opcode with no handler
// (only JSR is implemented).
type ErrOpCodeNotImplemented struct {
	Code uint16
}

func (e *ErrOpCodeNotImplemented) Error() string {
	return fmt.Sprintf("%#x", e.Code)
}
