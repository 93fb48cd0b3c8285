// Package ops defines the closed set of scalar operations a graph node can carry.
//
// Each operation is a tagged value that provides:
//   - Forward rule: computes the node value from operand values, once, at construction
//   - Local derivative: partial derivative of the node value with respect to each operand
//
// Supported operations:
//   - Leaf: externally supplied input or parameter (arity 0)
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Sub: a - b (d/da = 1, d/db = -1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Sigmoid: σ(x) (dσ/dx = σ(x)(1 - σ(x)))
//   - Tanh: tanh(x) (d/dx = 1 - tanh²(x))
package ops

import "fmt"

// Kind tags an Operation variant.
type Kind uint8

// Operation kinds.
const (
	KindLeaf Kind = iota
	KindAdd
	KindSub
	KindMul
	KindSigmoid
	KindTanh
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindAdd:
		return "add"
	case KindSub:
		return "sub"
	case KindMul:
		return "mul"
	case KindSigmoid:
		return "sigmoid"
	case KindTanh:
		return "tanh"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MaxArity is the largest operand count any operation accepts.
const MaxArity = 2

// Partials holds the local derivatives of a node with respect to its operands.
// Unary operations only fill index 0.
type Partials [MaxArity]float64

// forwardFunc computes a node value from operand values.
type forwardFunc func(operands []float64) float64

// derivativeFunc computes local derivatives from operand values and the
// node's own cached output.
type derivativeFunc func(operands []float64, output float64) Partials

// Operation is a closed tagged variant describing how a node was produced.
//
// The zero value is not usable; use one of the package variables
// (Leaf, Add, Sub, Mul, Sigmoid, Tanh).
type Operation struct {
	kind       Kind
	arity      int
	symbol     string
	forward    forwardFunc
	derivative derivativeFunc
}

// Kind returns the variant tag.
func (op Operation) Kind() Kind {
	return op.kind
}

// Arity returns the number of operands the operation requires.
func (op Operation) Arity() int {
	return op.arity
}

// Symbol returns a short human-readable symbol (e.g. "+", "tanh").
func (op Operation) Symbol() string {
	return op.symbol
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	return op.kind.String()
}

// IsLeaf reports whether op is the leaf variant.
func (op Operation) IsLeaf() bool {
	return op.arity == 0
}

// IsUnary reports whether op takes exactly one operand.
func (op Operation) IsUnary() bool {
	return op.arity == 1
}

// IsBinary reports whether op takes exactly two operands.
func (op Operation) IsBinary() bool {
	return op.arity == 2
}

// Forward applies the value rule to the operand values.
//
// Panics if op is the leaf variant (leaf values are supplied externally)
// or if len(operands) does not match the arity.
func (op Operation) Forward(operands ...float64) float64 {
	if op.forward == nil {
		panic(fmt.Sprintf("ops: %s has no forward rule", op))
	}
	if len(operands) != op.arity {
		panic(fmt.Sprintf("ops: %s expects %d operands, got %d", op, op.arity, len(operands)))
	}
	return op.forward(operands)
}

// Derivative evaluates the local derivative rule.
//
// operands are the operand values, output is the consuming node's own cached
// value (used by Sigmoid and Tanh). Panics for the leaf variant.
func (op Operation) Derivative(operands []float64, output float64) Partials {
	if op.derivative == nil {
		panic(fmt.Sprintf("ops: %s has no derivative rule", op))
	}
	if len(operands) != op.arity {
		panic(fmt.Sprintf("ops: %s expects %d operands, got %d", op, op.arity, len(operands)))
	}
	return op.derivative(operands, output)
}

// Variants returns every operation variant in Kind order.
func Variants() []Operation {
	return []Operation{Leaf, Add, Sub, Mul, Sigmoid, Tanh}
}

// Lookup returns the variant with the given kind.
func Lookup(k Kind) (Operation, bool) {
	for _, op := range Variants() {
		if op.kind == k {
			return op, true
		}
	}
	return Operation{}, false
}
