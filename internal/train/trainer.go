// Package train runs the gradient-descent loop for a single neuron.
package train

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"gonum.org/v1/gonum/floats"
)

// ErrNoSamples is returned by Fit when called with an empty dataset.
var ErrNoSamples = errors.New("no training samples")

// Sample is one labelled input vector.
type Sample struct {
	Inputs []float64
	Target float64
}

// Config holds trainer settings.
type Config struct {
	Epochs   int         // Passes over the dataset (default: 100)
	LogEvery int         // Log every N epochs, 0 disables logging
	Logger   *log.Logger // Destination for progress lines (default: discard)
}

// EpochStats summarises one epoch.
type EpochStats struct {
	Epoch    int
	MeanLoss float64
	GradNorm float64 // L2 norm of the parameter gradients of the last sample
}

// History records the progress of a Fit call.
type History struct {
	Epochs []EpochStats
}

// FinalLoss returns the mean loss of the last epoch, or NaN if empty.
func (h History) FinalLoss() float64 {
	if len(h.Epochs) == 0 {
		return math.NaN()
	}
	return h.Epochs[len(h.Epochs)-1].MeanLoss
}

// Trainer runs forward, loss, backward, step and reset for every sample.
//
// The trainer owns the construction session: parameters and every per-sample
// expression are built in the same Graph so node ids stay unique.
type Trainer struct {
	graph     *autodiff.Graph
	model     *nn.Neuron
	optimizer optim.Optimizer
	loss      nn.LossFunc
	config    Config
}

// NewTrainer creates a trainer. model must have been built in g.
func NewTrainer(g *autodiff.Graph, model *nn.Neuron, optimizer optim.Optimizer, loss nn.LossFunc, config Config) *Trainer {
	if config.Epochs == 0 {
		config.Epochs = 100
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, "", 0)
	}
	if loss == nil {
		loss = nn.SquaredError
	}

	return &Trainer{
		graph:     g,
		model:     model,
		optimizer: optimizer,
		loss:      loss,
		config:    config,
	}
}

// Step trains on one sample and returns the loss value before the update.
func (t *Trainer) Step(s Sample) (float64, error) {
	return t.step(s, nil)
}

// Fit runs Config.Epochs passes over samples.
func (t *Trainer) Fit(samples []Sample) (History, error) {
	if len(samples) == 0 {
		return History{}, ErrNoSamples
	}

	history := History{Epochs: make([]EpochStats, 0, t.config.Epochs)}
	grads := make([]float64, len(t.model.Parameters()))

	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		var total, norm float64
		for i, s := range samples {
			value, err := t.step(s, grads)
			if err != nil {
				return history, fmt.Errorf("epoch %d sample %d: %w", epoch, i, err)
			}
			total += value
			norm = floats.Norm(grads, 2)
		}

		stats := EpochStats{
			Epoch:    epoch,
			MeanLoss: total / float64(len(samples)),
			GradNorm: norm,
		}
		history.Epochs = append(history.Epochs, stats)

		if t.config.LogEvery > 0 && (epoch%t.config.LogEvery == 0 || epoch == t.config.Epochs) {
			t.config.Logger.Printf("epoch %d/%d loss=%.6f grad_norm=%.6f lr=%g",
				epoch, t.config.Epochs, stats.MeanLoss, stats.GradNorm, t.optimizer.GetLR())
		}
	}

	return history, nil
}

// step builds the loss for s, backpropagates, updates the parameters and
// resets the graph. If grads is non-nil it receives the parameter gradients
// seen by the update.
func (t *Trainer) step(s Sample, grads []float64) (float64, error) {
	g := t.graph

	inputs := make([]*autodiff.Node, len(s.Inputs))
	for i, v := range s.Inputs {
		inputs[i] = g.NamedLeaf(fmt.Sprintf("x_%d", i), v)
	}

	out, err := t.model.Forward(g, inputs...)
	if err != nil {
		return 0, fmt.Errorf("forward: %w", err)
	}
	loss, err := t.loss(g, out, g.NamedLeaf("y", s.Target))
	if err != nil {
		return 0, fmt.Errorf("loss: %w", err)
	}

	autodiff.Backward(loss)
	if grads != nil {
		for i, p := range t.model.Parameters() {
			grads[i] = p.Grad()
		}
	}
	t.optimizer.Step()
	autodiff.ZeroGrad(loss)

	return loss.Value(), nil
}
