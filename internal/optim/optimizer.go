// Package optim implements parameter updates for training scalar models.
//
// This package provides:
//   - Optimizer interface: Base interface for optimizers
//   - SGD: single-step gradient descent on Parameter leaves
//
// Example usage:
//
//	optimizer := optim.NewSGD(neuron.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    loss := buildLoss(g, neuron, sample)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	    autodiff.ZeroGrad(loss)
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter from its accumulated gradient.
	Step()

	// ZeroGrad clears the gradients of the optimized parameter leaves.
	//
	// Intermediate nodes of the loss expression are not touched; use
	// autodiff.ZeroGrad on the loss root to clear the whole graph.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}
