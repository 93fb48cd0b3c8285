package ops

// Mul represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
//
// The derivative reads the operand values at backward time.
var Mul = Operation{
	kind:   KindMul,
	arity:  2,
	symbol: "*",
	forward: func(operands []float64) float64 {
		return operands[0] * operands[1]
	},
	derivative: func(operands []float64, _ float64) Partials {
		return Partials{operands[1], operands[0]}
	},
}
