// Package autodiff implements reverse-mode automatic differentiation over
// graphs of scalar nodes.
//
// Architecture:
//   - Node: graph vertex caching a value and accumulating a gradient
//   - Graph: construction session that allocates node ids and evaluates values eagerly
//   - ops.Operation: closed set of value/derivative rules (Leaf, Add, Sub, Mul, Sigmoid, Tanh)
//   - Backward: topological sort followed by a single accumulation sweep
//   - ZeroGrad: clears gradients across the reachable subgraph
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.NamedLeaf("x", 2)
//	w := g.NamedLeaf("w", 3)
//	b := g.NamedLeaf("b", 4)
//	o := g.Add(g.Mul(x, w), b) // o = x*w + b
//
//	autodiff.Backward(o)
//	fmt.Println(x.Grad()) // do/dx = w = 3
//
// Nodes are not safe for concurrent use. Callers that share a graph across
// goroutines must serialize construction, Backward, ZeroGrad and Parameter
// updates themselves.
package autodiff

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// Node is a vertex in the computation graph.
//
// The value is computed once when the node is built and never recomputed.
// Operands are shared, not owned: one node may feed several parents.
type Node struct {
	id       int
	label    string
	value    float64
	grad     float64
	op       ops.Operation
	operands []*Node
}

// ID returns the id allocated by the graph that built the node.
func (n *Node) ID() int {
	return n.id
}

// Label returns the debug label, or "" if none was set.
func (n *Node) Label() string {
	return n.label
}

// SetLabel sets the debug label and returns n.
// Labels have no effect on evaluation or differentiation.
func (n *Node) SetLabel(label string) *Node {
	n.label = label
	return n
}

// Name returns the label if set, otherwise "#<id>".
func (n *Node) Name() string {
	if n.label != "" {
		return n.label
	}
	return fmt.Sprintf("#%d", n.id)
}

// Value returns the cached value.
func (n *Node) Value() float64 {
	return n.value
}

// Grad returns the accumulated gradient.
func (n *Node) Grad() float64 {
	return n.grad
}

// Op returns the operation that produced the node.
func (n *Node) Op() ops.Operation {
	return n.op
}

// Operands returns a copy of the operand list.
func (n *Node) Operands() []*Node {
	out := make([]*Node, len(n.operands))
	copy(out, n.operands)
	return out
}

// IsLeaf reports whether the node has no operands.
func (n *Node) IsLeaf() bool {
	return n.op.IsLeaf()
}

// Backward propagates d(n)/d(node) into every reachable node. See Backward.
func (n *Node) Backward() {
	Backward(n)
}

// ZeroGrad resets gradients of n and everything reachable from it.
func (n *Node) ZeroGrad() {
	ZeroGrad(n)
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node(%s, value=%g, grad=%g, op=%s)", n.Name(), n.value, n.grad, n.op)
}

// Evaluate returns the cached value of n.
func Evaluate(n *Node) float64 {
	return n.value
}

// operandValues collects operand values into buf.
func (n *Node) operandValues(buf *[ops.MaxArity]float64) []float64 {
	vals := buf[:len(n.operands)]
	for i, o := range n.operands {
		vals[i] = o.value
	}
	return vals
}
