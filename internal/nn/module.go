// Package nn implements single-neuron building blocks on top of the scalar
// autodiff graph.
//
// This package provides:
//   - Module interface: anything exposing trainable parameters
//   - Neuron: act(Σ wᵢ·xᵢ + b) with parameter leaves for weights and bias
//   - Activations: Identity, Sigmoid, Tanh
//   - Loss builders: Difference, SquaredError
//   - Initialisation: seeded uniform draws
package nn

import "github.com/born-ml/minigrad/internal/autodiff"

// Module is the base interface for trainable components.
type Module interface {
	// Parameters returns every trainable leaf of the module.
	Parameters() []*autodiff.Parameter
}
