package optim_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSGD_SimpleUpdate tests x_new = x_old - lr * grad.
func TestSGD_SimpleUpdate(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Parameter("x", 2)
	c := g.Leaf(1)

	loss := g.Mul(x.Node(), c) // d/dx = 1
	autodiff.Backward(loss)

	optimizer := optim.NewSGD([]*autodiff.Parameter{x}, optim.SGDConfig{LR: 0.1})
	optimizer.Step()

	assert.InDelta(t, 1.9, x.Value(), 1e-12)
	// The gradient itself is untouched by Step.
	assert.Equal(t, 1.0, x.Grad())
}

// TestSGD_DefaultLR tests the zero-value default.
func TestSGD_DefaultLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.GetLR())

	var _ optim.Optimizer = optimizer
}

// TestSGD_ZeroGrad tests that only the parameter leaves are cleared.
func TestSGD_ZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()
	w := g.Parameter("w", 3)
	x := g.Leaf(2)
	loss := g.Mul(w.Node(), x)
	autodiff.Backward(loss)

	optimizer := optim.NewSGD([]*autodiff.Parameter{w}, optim.SGDConfig{})
	require.Len(t, optimizer.Parameters(), 1)
	optimizer.ZeroGrad()

	assert.Equal(t, 0.0, w.Grad())
	assert.Equal(t, 3.0, x.Grad())
}

// TestConvergence_SimpleQuadratic minimizes (x - 3)² from x = 0.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Parameter("x", 0)
	target := g.Leaf(3)
	optimizer := optim.NewSGD([]*autodiff.Parameter{x}, optim.SGDConfig{LR: 0.1})

	for i := 0; i < 200; i++ {
		diff := g.Sub(x.Node(), target)
		loss := g.Mul(diff, diff)
		autodiff.Backward(loss)
		optimizer.Step()
		autodiff.ZeroGrad(loss)
	}

	assert.InDelta(t, 3.0, x.Value(), 1e-6)
	assert.Equal(t, 0.0, x.Grad())
}
