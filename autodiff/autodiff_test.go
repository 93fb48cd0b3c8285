// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI exercises the re-exported surface end to end.
func TestPublicAPI(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.NamedLeaf("x", 2)
	w := g.NamedLeaf("w", 3)
	b := g.NamedLeaf("b", 4)

	o := g.Add(g.Mul(x, w), b)
	assert.Equal(t, 10.0, autodiff.Evaluate(o))

	autodiff.Backward(o)
	assert.Equal(t, 3.0, x.Grad())
	assert.Equal(t, 2.0, w.Grad())
	assert.Equal(t, 1.0, b.Grad())
	assert.Len(t, autodiff.TopoSort(o), 5)

	autodiff.ZeroGrad(o)
	assert.Equal(t, 0.0, x.Grad())

	autodiff.BackwardSeed(o, 2)
	assert.Equal(t, 6.0, x.Grad())
}

func TestPublicAPI_Errors(t *testing.T) {
	g := autodiff.NewGraph()

	_, err := g.Unary(autodiff.OpAdd, g.Leaf(1))
	require.ErrorIs(t, err, autodiff.ErrArityMismatch)

	var arityErr *autodiff.ArityError
	assert.ErrorAs(t, err, &arityErr)

	_, err = g.Binary(autodiff.OpMul, nil, g.Leaf(1))
	assert.ErrorIs(t, err, autodiff.ErrNilOperand)
}
