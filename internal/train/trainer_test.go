package train

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrainer(t *testing.T, act nn.Activation, lr float64, cfg Config) (*Trainer, *nn.Neuron) {
	t.Helper()
	g := autodiff.NewGraph()
	neuron := nn.NewNeuron(g, 3, act, nil)
	opt := optim.NewSGD(neuron.Parameters(), optim.SGDConfig{LR: lr})
	return NewTrainer(g, neuron, opt, nn.SquaredError, cfg), neuron
}

func TestTrainer_Converges(t *testing.T) {
	trainer, neuron := newTrainer(t, nn.Tanh, 0.1, Config{Epochs: 300})
	samples := []Sample{{Inputs: []float64{1, 0, -1}, Target: 0.5}}

	history, err := trainer.Fit(samples)
	require.NoError(t, err)
	require.Len(t, history.Epochs, 300)

	assert.Less(t, history.FinalLoss(), 1e-6)
	assert.Less(t, history.FinalLoss(), history.Epochs[0].MeanLoss)

	pred, err := neuron.Predict(samples[0].Inputs)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pred, 1e-3)

	// Gradients are reset after every step.
	for _, p := range neuron.Parameters() {
		assert.Equal(t, 0.0, p.Grad(), p.Name())
	}
}

func TestTrainer_Step(t *testing.T) {
	trainer, neuron := newTrainer(t, nn.Identity, 0.05, Config{})
	neuron.Weights()[0].SetValue(1)
	neuron.Weights()[1].SetValue(1)
	neuron.Weights()[2].SetValue(1)
	neuron.Bias().SetValue(0)

	// pred = 1 + 2 + 3 = 6, loss = (6 - 4)² = 4
	loss, err := trainer.Step(Sample{Inputs: []float64{1, 2, 3}, Target: 4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, loss)

	// dL/dw_i = 2(pred - y)x_i = 4x_i; w_i -= 0.05 * 4x_i
	assert.InDelta(t, 0.8, neuron.Weights()[0].Value(), 1e-12)
	assert.InDelta(t, 0.6, neuron.Weights()[1].Value(), 1e-12)
	assert.InDelta(t, 0.4, neuron.Weights()[2].Value(), 1e-12)
	assert.InDelta(t, -0.2, neuron.Bias().Value(), 1e-12)
}

func TestTrainer_Defaults(t *testing.T) {
	g := autodiff.NewGraph()
	neuron := nn.NewNeuron(g, 1, nn.Sigmoid, nil)
	trainer := NewTrainer(g, neuron, optim.NewSGD(neuron.Parameters(), optim.SGDConfig{}), nil, Config{})

	history, err := trainer.Fit([]Sample{{Inputs: []float64{1}, Target: 1}})
	require.NoError(t, err)
	assert.Len(t, history.Epochs, 100)
}

func TestTrainer_Logging(t *testing.T) {
	var buf bytes.Buffer
	trainer, _ := newTrainer(t, nn.Tanh, 0.01, Config{
		Epochs:   10,
		LogEvery: 5,
		Logger:   log.New(&buf, "", 0),
	})

	_, err := trainer.Fit([]Sample{{Inputs: []float64{1, 0, -1}, Target: 1}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "epoch 5/10")
	assert.Contains(t, out, "epoch 10/10")
	assert.NotContains(t, out, "epoch 1/10")
}

func TestTrainer_GradNorm(t *testing.T) {
	trainer, _ := newTrainer(t, nn.Identity, 0.01, Config{Epochs: 1})
	history, err := trainer.Fit([]Sample{{Inputs: []float64{1, 1, 1}, Target: 100}})
	require.NoError(t, err)

	stats := history.Epochs[0]
	assert.Greater(t, stats.GradNorm, 0.0)
	assert.False(t, math.IsNaN(stats.GradNorm))
}

func TestTrainer_Errors(t *testing.T) {
	trainer, _ := newTrainer(t, nn.Tanh, 0.01, Config{Epochs: 1})

	_, err := trainer.Fit(nil)
	assert.ErrorIs(t, err, ErrNoSamples)

	_, err = trainer.Fit([]Sample{{Inputs: []float64{1}, Target: 0}})
	assert.ErrorIs(t, err, nn.ErrInputSize)

	assert.True(t, math.IsNaN(History{}.FinalLoss()))
}
