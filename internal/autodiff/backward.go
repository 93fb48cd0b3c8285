package autodiff

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
)

// TopoSort returns every node reachable from root ordered so that each node
// appears before all of its operands. root is first.
//
// The order is the reverse of an iterative depth-first postorder, so graph
// depth is bounded by heap memory rather than the goroutine stack. A node
// reachable along several paths appears once.
func TopoSort(root *Node) []*Node {
	if root == nil {
		return nil
	}

	type frame struct {
		node     *Node
		expanded bool
	}

	var post []*Node
	visited := make(map[*Node]bool)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			post = append(post, top.node)
			continue
		}
		if visited[top.node] {
			continue
		}
		visited[top.node] = true

		stack = append(stack, frame{node: top.node, expanded: true})
		for i := len(top.node.operands) - 1; i >= 0; i-- {
			if o := top.node.operands[i]; !visited[o] {
				stack = append(stack, frame{node: o})
			}
		}
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}

// Backward accumulates d(root)/d(node) into the gradient of every node
// reachable from root, seeding root with 1.
func Backward(root *Node) {
	BackwardSeed(root, 1)
}

// BackwardSeed is Backward with an explicit seed for the root gradient.
//
// Algorithm:
//  1. Order the reachable nodes with TopoSort (parents before operands)
//  2. Start a zeroed per-pass buffer and set the root entry to seed
//  3. Sweep the order once; every node has received all contributions from
//     its parents before it propagates to its own operands
//  4. Add each buffer entry into the node's stored gradient
//
// Gradients are additive: two passes without ZeroGrad in between leave twice
// the single-pass values. Panics if a node's operand count does not match
// its operation.
func BackwardSeed(root *Node, seed float64) {
	order := TopoSort(root)
	if len(order) == 0 {
		return
	}

	index := make(map[*Node]int, len(order))
	for i, n := range order {
		index[n] = i
	}

	pass := make([]float64, len(order))
	pass[0] = seed

	var buf [ops.MaxArity]float64
	for i, n := range order {
		upstream := pass[i]
		n.grad += upstream
		if n.op.IsLeaf() {
			continue
		}
		if len(n.operands) != n.op.Arity() {
			panic(fmt.Sprintf("backward: %s has %d operands, %s needs %d",
				n.Name(), len(n.operands), n.op, n.op.Arity()))
		}

		local := n.op.Derivative(n.operandValues(&buf), n.value)
		for j, o := range n.operands {
			pass[index[o]] += local[j] * upstream
		}
	}
}

// ZeroGrad sets the gradient of root and of every node reachable from it to
// zero. It is idempotent and a no-op on a graph that was never differentiated.
func ZeroGrad(root *Node) {
	if root == nil {
		return
	}

	visited := make(map[*Node]bool)
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		n.grad = 0
		for _, o := range n.operands {
			if !visited[o] {
				stack = append(stack, o)
			}
		}
	}
}
