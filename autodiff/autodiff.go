// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar computation graphs.
//
// Example:
//
//	import "github.com/born-ml/minigrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.NamedLeaf("x", 2)
//	    w := g.NamedLeaf("w", 3)
//	    b := g.NamedLeaf("b", 4)
//
//	    o := g.Add(g.Mul(x, w), b)
//	    autodiff.Backward(o)
//
//	    fmt.Println(x.Grad(), w.Grad(), b.Grad()) // 3 2 1
//	    autodiff.ZeroGrad(o)
//	}
package autodiff

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// Node is a scalar vertex in the computation graph.
type Node = autodiff.Node

// Graph is a construction session with deterministic node ids.
type Graph = autodiff.Graph

// Parameter is a trainable leaf whose value may be updated between iterations.
type Parameter = autodiff.Parameter

// Operation describes how a node value and its local derivatives are computed.
type Operation = ops.Operation

// ArityError reports an operation applied to the wrong number of operands.
type ArityError = autodiff.ArityError

// Construction errors.
var (
	ErrNilOperand    = autodiff.ErrNilOperand
	ErrArityMismatch = autodiff.ErrArityMismatch
)

// Operation variants.
var (
	OpLeaf    = ops.Leaf
	OpAdd     = ops.Add
	OpSub     = ops.Sub
	OpMul     = ops.Mul
	OpSigmoid = ops.Sigmoid
	OpTanh    = ops.Tanh
)

// NewGraph creates a new construction session.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Evaluate returns the cached value of n.
func Evaluate(n *Node) float64 {
	return autodiff.Evaluate(n)
}

// Backward accumulates d(root)/d(node) into every node reachable from root.
func Backward(root *Node) {
	autodiff.Backward(root)
}

// BackwardSeed is Backward with an explicit root gradient.
func BackwardSeed(root *Node, seed float64) {
	autodiff.BackwardSeed(root, seed)
}

// ZeroGrad clears the gradients of root and every node reachable from it.
func ZeroGrad(root *Node) {
	autodiff.ZeroGrad(root)
}

// TopoSort lists nodes reachable from root, parents before operands.
func TopoSort(root *Node) []*Node {
	return autodiff.TopoSort(root)
}
