package nn

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"gonum.org/v1/gonum/floats"
)

// ErrInputSize is returned when the number of inputs differs from the
// neuron's dimension.
var ErrInputSize = errors.New("input count does not match neuron dimension")

// Neuron computes act(Σ wᵢ·xᵢ + b).
//
// Weights and bias are Parameters initialised from U(0, 1). Each call to
// Forward builds a fresh expression over the current parameter values.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 3, nn.Tanh, rand.New(rand.NewSource(42)))
//	out, err := n.Forward(g, x1, x2, x3)
type Neuron struct {
	weights    []*autodiff.Parameter
	bias       *autodiff.Parameter
	activation Activation
}

// NewNeuron creates a neuron with dim weights. A nil rng uses DefaultSeed.
func NewNeuron(g *autodiff.Graph, dim int, activation Activation, rng *rand.Rand) *Neuron {
	if dim <= 0 {
		panic(fmt.Sprintf("nn: neuron dimension must be positive, got %d", dim))
	}

	values := Uniform(rng, dim+1, 0, 1)
	weights := make([]*autodiff.Parameter, dim)
	for i := range weights {
		weights[i] = g.Parameter(fmt.Sprintf("w_%d", i), values[i])
	}

	return &Neuron{
		weights:    weights,
		bias:       g.Parameter("b", values[dim]),
		activation: activation,
	}
}

// Dim returns the number of inputs.
func (n *Neuron) Dim() int {
	return len(n.weights)
}

// Activation returns the configured nonlinearity.
func (n *Neuron) Activation() Activation {
	return n.activation
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*autodiff.Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *autodiff.Parameter {
	return n.bias
}

// Parameters returns weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Parameter {
	params := make([]*autodiff.Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Forward builds act(w_0·x_0 + w_1·x_1 + ... + b) in g.
func (n *Neuron) Forward(g *autodiff.Graph, inputs ...*autodiff.Node) (*autodiff.Node, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("neuron: got %d inputs, want %d: %w", len(inputs), len(n.weights), ErrInputSize)
	}

	var acc *autodiff.Node
	for i, w := range n.weights {
		term, err := g.Binary(ops.Mul, w.Node(), inputs[i])
		if err != nil {
			return nil, fmt.Errorf("neuron: input %d: %w", i, err)
		}
		if acc == nil {
			acc = term
			continue
		}
		if acc, err = g.Binary(ops.Add, acc, term); err != nil {
			return nil, err
		}
	}

	pre, err := g.Binary(ops.Add, acc, n.bias.Node())
	if err != nil {
		return nil, err
	}
	return n.activation.Apply(g, pre)
}

// Predict evaluates the neuron on plain values without building a graph.
func (n *Neuron) Predict(inputs []float64) (float64, error) {
	if len(inputs) != len(n.weights) {
		return 0, fmt.Errorf("neuron: got %d inputs, want %d: %w", len(inputs), len(n.weights), ErrInputSize)
	}
	w := make([]float64, len(n.weights))
	for i, p := range n.weights {
		w[i] = p.Value()
	}
	return n.activation.Eval(floats.Dot(w, inputs) + n.bias.Value()), nil
}

// Gradients returns the weight gradients and the bias gradient.
func (n *Neuron) Gradients() ([]float64, float64) {
	grads := make([]float64, len(n.weights))
	for i, w := range n.weights {
		grads[i] = w.Grad()
	}
	return grads, n.bias.Grad()
}
