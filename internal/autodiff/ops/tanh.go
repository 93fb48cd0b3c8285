package ops

import "math"

// Tanh represents the hyperbolic tangent activation.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// The derivative is computed from the cached output tanh(x).
var Tanh = Operation{
	kind:   KindTanh,
	arity:  1,
	symbol: "tanh",
	forward: func(operands []float64) float64 {
		return math.Tanh(operands[0])
	},
	derivative: func(_ []float64, output float64) Partials {
		return Partials{1 - output*output}
	},
}
