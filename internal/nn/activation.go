package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// Activation selects the nonlinearity applied to a neuron's pre-activation.
type Activation int

// Supported activations.
const (
	Identity Activation = iota
	Sigmoid
	Tanh
)

// ParseActivation maps a name ("identity", "sigmoid", "tanh") to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "identity", "linear", "none":
		return Identity, nil
	case "sigmoid":
		return Sigmoid, nil
	case "tanh":
		return Tanh, nil
	default:
		return Identity, fmt.Errorf("unknown activation %q", name)
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("activation(%d)", int(a))
	}
}

// Apply builds act(x) in g. Identity returns x unchanged.
func (a Activation) Apply(g *autodiff.Graph, x *autodiff.Node) (*autodiff.Node, error) {
	switch a {
	case Identity:
		if x == nil {
			return nil, autodiff.ErrNilOperand
		}
		return x, nil
	case Sigmoid:
		return g.Unary(ops.Sigmoid, x)
	case Tanh:
		return g.Unary(ops.Tanh, x)
	default:
		return nil, fmt.Errorf("unknown activation %s", a)
	}
}

// Eval applies the activation to a plain value.
func (a Activation) Eval(v float64) float64 {
	switch a {
	case Sigmoid:
		return ops.Sigmoid.Forward(v)
	case Tanh:
		return ops.Tanh.Forward(v)
	default:
		return v
	}
}
