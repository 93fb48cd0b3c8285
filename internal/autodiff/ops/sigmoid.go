package ops

import "math"

// Sigmoid represents the logistic activation: σ(x) = 1 / (1 + exp(-x)).
//
// For σ(x):
// dσ/dx = σ(x) * (1 - σ(x))
//
// Since the output σ(x) is already cached on the node, the derivative uses it
// instead of the input value. Overflow in exp is not special-cased.
var Sigmoid = Operation{
	kind:   KindSigmoid,
	arity:  1,
	symbol: "sigmoid",
	forward: func(operands []float64) float64 {
		return 1 / (1 + math.Exp(-operands[0]))
	},
	derivative: func(_ []float64, output float64) Partials {
		return Partials{output * (1 - output)}
	},
}
