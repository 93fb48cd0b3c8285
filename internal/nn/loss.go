package nn

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// LossFunc builds a scalar loss node from a prediction and a target leaf.
type LossFunc func(g *autodiff.Graph, prediction, target *autodiff.Node) (*autodiff.Node, error)

// Difference builds prediction - target.
//
// Its gradient with respect to the prediction is constant, so minimising it
// drives the prediction down without bound; it is kept for reproducing the
// signed-error demo.
func Difference(g *autodiff.Graph, prediction, target *autodiff.Node) (*autodiff.Node, error) {
	return g.Binary(ops.Sub, prediction, target)
}

// SquaredError builds (prediction - target)².
func SquaredError(g *autodiff.Graph, prediction, target *autodiff.Node) (*autodiff.Node, error) {
	diff, err := g.Binary(ops.Sub, prediction, target)
	if err != nil {
		return nil, err
	}
	return g.Binary(ops.Mul, diff, diff)
}

// ParseLoss maps a name ("difference", "squared") to a LossFunc.
func ParseLoss(name string) (LossFunc, error) {
	switch name {
	case "difference", "diff":
		return Difference, nil
	case "squared", "mse":
		return SquaredError, nil
	default:
		return nil, fmt.Errorf("unknown loss %q", name)
	}
}
