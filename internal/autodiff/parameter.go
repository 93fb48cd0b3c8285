package autodiff

// Parameter is a trainable leaf.
//
// It is the only handle that may change a leaf value after construction.
// Compound nodes built from the parameter keep their cached values, so a
// caller updates parameters between iterations and rebuilds the expression.
//
// Example:
//
//	w := g.Parameter("w", 0.5)
//	loss := g.Mul(w.Node(), x)
//	autodiff.Backward(loss)
//	w.Update(-lr * w.Grad())
//	autodiff.ZeroGrad(loss)
type Parameter struct {
	node *Node
}

// Parameter creates a labelled trainable leaf.
func (g *Graph) Parameter(label string, value float64) *Parameter {
	return &Parameter{node: g.NamedLeaf(label, value)}
}

// Node returns the leaf node for composing expressions.
func (p *Parameter) Node() *Node {
	return p.node
}

// Name returns the parameter label.
func (p *Parameter) Name() string {
	return p.node.Name()
}

// Value returns the current value.
func (p *Parameter) Value() float64 {
	return p.node.value
}

// Grad returns the accumulated gradient of the leaf.
func (p *Parameter) Grad() float64 {
	return p.node.grad
}

// SetValue overwrites the leaf value.
func (p *Parameter) SetValue(v float64) {
	p.node.value = v
}

// Update adds delta to the leaf value.
func (p *Parameter) Update(delta float64) {
	p.node.value += delta
}

// ZeroGrad clears the leaf gradient only.
func (p *Parameter) ZeroGrad() {
	p.node.grad = 0
}
