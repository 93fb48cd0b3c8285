// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter updates for training scalar models.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent (param -= lr * grad)
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	g := autodiff.NewGraph()
//	neuron := nn.NewNeuron(g, 3, nn.Tanh, nil)
//	optimizer := optim.NewSGD(neuron.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range 100 {
//	    out, _ := neuron.Forward(g, inputs...)
//	    loss, _ := nn.SquaredError(g, out, target)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	    autodiff.ZeroGrad(loss)
//	}
package optim
