package ops

// Leaf is an externally supplied scalar: an input feature or a trainable parameter.
//
// It has neither a forward rule nor a derivative rule. Leaves terminate
// gradient propagation; calling Forward or Derivative on Leaf panics.
var Leaf = Operation{
	kind:   KindLeaf,
	arity:  0,
	symbol: "<<",
}
