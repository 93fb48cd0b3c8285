// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that Neuron implements Module.
func TestModuleInterface(t *testing.T) {
	g := autodiff.NewGraph()
	var module nn.Module = nn.NewNeuron(g, 2, nn.Sigmoid, nil)
	assert.Len(t, module.Parameters(), 3)
}

func TestNeuron_Backward(t *testing.T) {
	g := autodiff.NewGraph()
	neuron := nn.NewNeuron(g, 3, nn.Tanh, nil)

	out, err := neuron.Forward(g, g.Leaf(1), g.Leaf(0), g.Leaf(-1))
	require.NoError(t, err)

	loss, err := nn.SquaredError(g, out, g.Leaf(1))
	require.NoError(t, err)
	autodiff.Backward(loss)

	wGrads, bGrad := neuron.Gradients()
	// x_1 = 0 contributes nothing to w_1.
	assert.Equal(t, 0.0, wGrads[1])
	assert.InDelta(t, bGrad, wGrads[0], 1e-12)
	assert.InDelta(t, -bGrad, wGrads[2], 1e-12)
}
