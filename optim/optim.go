// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD represents plain gradient descent.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(neuron.Parameters(), optim.SGDConfig{LR: 0.01})
func NewSGD(params []*autodiff.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
