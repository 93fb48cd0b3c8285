package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// Construction errors.
var (
	ErrNilOperand    = errors.New("nil operand")
	ErrArityMismatch = errors.New("operand count does not match operation arity")
)

// ArityError reports an operation applied to the wrong number of operands.
type ArityError struct {
	Op   ops.Operation
	Want int
	Got  int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: want %d operands, got %d", e.Op, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrArityMismatch.
func (e *ArityError) Unwrap() error {
	return ErrArityMismatch
}
