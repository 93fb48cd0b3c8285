package autodiff

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// Graph is a construction session. It hands out sequential node ids so that
// two builds of the same expression produce identical ids and values.
//
// A Graph does not keep the nodes it creates alive; nodes are reclaimed once
// nothing references them.
type Graph struct {
	nextID int
}

// NewGraph creates an empty construction session.
func NewGraph() *Graph {
	return &Graph{}
}

// NumNodes returns the number of nodes built so far.
func (g *Graph) NumNodes() int {
	return g.nextID
}

func (g *Graph) allocID() int {
	id := g.nextID
	g.nextID++
	return id
}

// Leaf creates an input node holding value.
func (g *Graph) Leaf(value float64) *Node {
	return &Node{
		id:    g.allocID(),
		value: value,
		op:    ops.Leaf,
	}
}

// NamedLeaf creates a labelled input node.
func (g *Graph) NamedLeaf(label string, value float64) *Node {
	n := g.Leaf(value)
	n.label = label
	return n
}

// Node builds a compound node from op and operands, evaluating its value.
//
// Returns ErrNilOperand if any operand is nil and an *ArityError if the
// operand count does not match op. Leaves are built with Leaf, not Node.
func (g *Graph) Node(op ops.Operation, operands ...*Node) (*Node, error) {
	if op.IsLeaf() {
		return nil, &ArityError{Op: op, Want: 0, Got: len(operands)}
	}
	if len(operands) != op.Arity() {
		return nil, &ArityError{Op: op, Want: op.Arity(), Got: len(operands)}
	}
	for i, o := range operands {
		if o == nil {
			return nil, fmt.Errorf("%s operand %d: %w", op, i, ErrNilOperand)
		}
	}

	n := &Node{
		op:       op,
		operands: append([]*Node(nil), operands...),
	}
	var buf [ops.MaxArity]float64
	n.value = op.Forward(n.operandValues(&buf)...)
	n.id = g.allocID()
	return n, nil
}

// Binary builds left <op> right for a two-operand operation.
func (g *Graph) Binary(op ops.Operation, left, right *Node) (*Node, error) {
	if !op.IsBinary() {
		return nil, &ArityError{Op: op, Want: op.Arity(), Got: 2}
	}
	return g.Node(op, left, right)
}

// Unary builds op(input) for a one-operand operation.
func (g *Graph) Unary(op ops.Operation, input *Node) (*Node, error) {
	if !op.IsUnary() {
		return nil, &ArityError{Op: op, Want: op.Arity(), Got: 1}
	}
	return g.Node(op, input)
}

// Add returns a + b. Panics if either operand is nil.
func (g *Graph) Add(a, b *Node) *Node {
	return must(g.Binary(ops.Add, a, b))
}

// Sub returns a - b. Panics if either operand is nil.
func (g *Graph) Sub(a, b *Node) *Node {
	return must(g.Binary(ops.Sub, a, b))
}

// Mul returns a * b. Panics if either operand is nil.
func (g *Graph) Mul(a, b *Node) *Node {
	return must(g.Binary(ops.Mul, a, b))
}

// Sigmoid returns σ(x). Panics if x is nil.
func (g *Graph) Sigmoid(x *Node) *Node {
	return must(g.Unary(ops.Sigmoid, x))
}

// Tanh returns tanh(x). Panics if x is nil.
func (g *Graph) Tanh(x *Node) *Node {
	return must(g.Unary(ops.Tanh, x))
}

// Sum folds nodes with Add from left to right. Panics on an empty list.
func (g *Graph) Sum(nodes ...*Node) *Node {
	if len(nodes) == 0 {
		panic("autodiff: Sum of no nodes")
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		acc = g.Add(acc, n)
	}
	return acc
}

func must(n *Node, err error) *Node {
	if err != nil {
		panic(fmt.Sprintf("autodiff: %v", err))
	}
	return n
}
