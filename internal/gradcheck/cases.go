package gradcheck

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// Case is a named expression with the point it is checked at.
type Case struct {
	Name  string
	Build BuildFunc
	Point []float64
}

// Cases returns the built-in expressions used by the check command.
func Cases() []Case {
	return []Case{
		{
			Name:  "linear",
			Point: []float64{2, 3, 4},
			Build: func(g *autodiff.Graph, x []*autodiff.Node) (*autodiff.Node, error) {
				// x*w + b
				return g.Add(g.Mul(x[0], x[1]), x[2]), nil
			},
		},
		{
			Name:  "shared",
			Point: []float64{2, 3, 4},
			Build: func(g *autodiff.Graph, x []*autodiff.Node) (*autodiff.Node, error) {
				// (x*y) + (x*z) + (y*x)*z
				a, b, c := x[0], x[1], x[2]
				return g.Add(g.Add(g.Mul(a, b), g.Mul(a, c)), g.Mul(g.Mul(b, a), c)), nil
			},
		},
		{
			Name:  "shared_compound",
			Point: []float64{0.4, -0.7},
			Build: func(g *autodiff.Graph, x []*autodiff.Node) (*autodiff.Node, error) {
				// s = tanh(x0 - x1); s*s + σ(s)
				s := g.Tanh(g.Sub(x[0], x[1]))
				return g.Add(g.Mul(s, s), g.Sigmoid(s)), nil
			},
		},
		{
			Name:  "neuron_tanh",
			Point: []float64{1, 0, -1, 0.3, -0.2, 0.9, 0.1},
			Build: neuron(ops.Tanh),
		},
		{
			Name:  "neuron_sigmoid",
			Point: []float64{0.5, -1.5, 2, 0.7, 0.1, -0.4, -0.3},
			Build: neuron(ops.Sigmoid),
		},
	}
}

// neuron builds act(Σ wᵢxᵢ + b) over leaves laid out as x0..x2, w0..w2, b.
func neuron(act ops.Operation) BuildFunc {
	return func(g *autodiff.Graph, v []*autodiff.Node) (*autodiff.Node, error) {
		x, w, b := v[0:3], v[3:6], v[6]
		terms := make([]*autodiff.Node, 0, 4)
		for i := range x {
			terms = append(terms, g.Mul(w[i], x[i]))
		}
		terms = append(terms, b)
		return g.Unary(act, g.Sum(terms...))
	}
}
