package optim

import "github.com/born-ml/minigrad/internal/autodiff"

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(neuron.Parameters(), optim.SGDConfig{
//	    LR: 0.01,
//	})
type SGD struct {
	params []*autodiff.Parameter
	lr     float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*autodiff.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step performs a single descent step on every parameter.
func (s *SGD) Step() {
	for _, param := range s.params {
		param.Update(-s.lr * param.Grad())
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// Parameters returns the optimized parameters.
func (s *SGD) Parameters() []*autodiff.Parameter {
	return s.params
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
