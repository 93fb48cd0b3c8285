package ops

// Sub represents scalar subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
var Sub = Operation{
	kind:   KindSub,
	arity:  2,
	symbol: "-",
	forward: func(operands []float64) float64 {
		return operands[0] - operands[1]
	},
	derivative: func(_ []float64, _ float64) Partials {
		return Partials{1, -1}
	},
}
