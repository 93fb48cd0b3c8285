// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides single-neuron building blocks over scalar autodiff graphs.
//
// # Overview
//
// This package contains:
//   - Neuron: act(Σ wᵢ·xᵢ + b) with trainable weight and bias leaves
//   - Activations: Identity, Sigmoid, Tanh
//   - Loss builders: Difference, SquaredError
//   - Module interface
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/minigrad/autodiff"
//	    "github.com/born-ml/minigrad/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    neuron := nn.NewNeuron(g, 3, nn.Tanh, nil)
//
//	    out, _ := neuron.Forward(g, g.Leaf(1), g.Leaf(0), g.Leaf(-1))
//	    loss, _ := nn.SquaredError(g, out, g.Leaf(1))
//	    autodiff.Backward(loss)
//	}
package nn
