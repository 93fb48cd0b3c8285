// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
)

// Module is the interface for components with trainable parameters.
type Module = nn.Module

// Neuron computes act(Σ wᵢ·xᵢ + b).
type Neuron = nn.Neuron

// Activation selects a neuron nonlinearity.
type Activation = nn.Activation

// LossFunc builds a scalar loss node from a prediction and a target.
type LossFunc = nn.LossFunc

// Activations.
const (
	Identity = nn.Identity
	Sigmoid  = nn.Sigmoid
	Tanh     = nn.Tanh
)

// ErrInputSize is returned when a neuron receives the wrong number of inputs.
var ErrInputSize = nn.ErrInputSize

// NewNeuron creates a neuron with dim weights drawn from U(0, 1).
//
// Example:
//
//	g := autodiff.NewGraph()
//	neuron := nn.NewNeuron(g, 3, nn.Tanh, rand.New(rand.NewSource(42)))
func NewNeuron(g *autodiff.Graph, dim int, activation Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, dim, activation, rng)
}

// ParseActivation maps a name to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Difference builds prediction - target.
func Difference(g *autodiff.Graph, prediction, target *autodiff.Node) (*autodiff.Node, error) {
	return nn.Difference(g, prediction, target)
}

// SquaredError builds (prediction - target)².
func SquaredError(g *autodiff.Graph, prediction, target *autodiff.Node) (*autodiff.Node, error) {
	return nn.SquaredError(g, prediction, target)
}

// ParseLoss maps a name to a LossFunc.
func ParseLoss(name string) (LossFunc, error) {
	return nn.ParseLoss(name)
}
