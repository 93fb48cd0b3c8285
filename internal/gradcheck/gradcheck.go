// Package gradcheck compares gradients from the backward pass against central
// finite differences.
package gradcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/minigrad/internal/autodiff"
	"gonum.org/v1/gonum/diff/fd"
)

// ErrNoInputs is returned when Check is called with an empty point.
var ErrNoInputs = errors.New("gradcheck: no inputs")

// BuildFunc builds a scalar expression over the given leaves in g.
type BuildFunc func(g *autodiff.Graph, leaves []*autodiff.Node) (*autodiff.Node, error)

// Config holds finite-difference settings.
type Config struct {
	Step      float64 // Finite-difference step (default: 1e-6)
	Tolerance float64 // Maximum accepted absolute difference (default: 1e-5)
}

// Report holds the analytic and numeric gradients at one point.
type Report struct {
	Point      []float64
	Value      float64
	Analytic   []float64
	Numeric    []float64
	MaxAbsDiff float64
	Tolerance  float64
}

// OK reports whether every component agrees within the tolerance.
func (r Report) OK() bool {
	return r.MaxAbsDiff <= r.Tolerance
}

// String formats the report one component per line.
func (r Report) String() string {
	s := fmt.Sprintf("value=%g max_abs_diff=%.3g ok=%t", r.Value, r.MaxAbsDiff, r.OK())
	for i := range r.Point {
		s += fmt.Sprintf("\n  x[%d]=%g analytic=%.9g numeric=%.9g", i, r.Point[i], r.Analytic[i], r.Numeric[i])
	}
	return s
}

// Check builds the expression at point, runs the backward pass and compares
// each leaf gradient with a central difference of the expression value.
func Check(build BuildFunc, point []float64, config Config) (Report, error) {
	if len(point) == 0 {
		return Report{}, ErrNoInputs
	}
	if config.Step == 0 {
		config.Step = 1e-6
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-5
	}

	g := autodiff.NewGraph()
	leaves := makeLeaves(g, point)
	root, err := build(g, leaves)
	if err != nil {
		return Report{}, fmt.Errorf("gradcheck: build: %w", err)
	}
	autodiff.Backward(root)

	report := Report{
		Point:     append([]float64(nil), point...),
		Value:     root.Value(),
		Analytic:  make([]float64, len(point)),
		Tolerance: config.Tolerance,
	}
	for i, leaf := range leaves {
		report.Analytic[i] = leaf.Grad()
	}

	var buildErr error
	f := func(x []float64) float64 {
		g := autodiff.NewGraph()
		n, err := build(g, makeLeaves(g, x))
		if err != nil {
			buildErr = err
			return math.NaN()
		}
		return n.Value()
	}
	report.Numeric = fd.Gradient(nil, f, point, &fd.Settings{
		Formula: fd.Central,
		Step:    config.Step,
	})
	if buildErr != nil {
		return Report{}, fmt.Errorf("gradcheck: rebuild: %w", buildErr)
	}

	for i := range point {
		report.MaxAbsDiff = math.Max(report.MaxAbsDiff, math.Abs(report.Analytic[i]-report.Numeric[i]))
	}
	return report, nil
}

func makeLeaves(g *autodiff.Graph, values []float64) []*autodiff.Node {
	leaves := make([]*autodiff.Node, len(values))
	for i, v := range values {
		leaves[i] = g.NamedLeaf(fmt.Sprintf("x%d", i), v)
	}
	return leaves
}
