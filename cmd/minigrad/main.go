// Package main provides the minigrad CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/gradcheck"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/born-ml/minigrad/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("minigrad: ")

	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("minigrad %s\n", version)
	case "train":
		err = runTrain(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("minigrad - scalar reverse-mode autodiff")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a single neuron on one sample")
	fmt.Println("  check      Compare backward gradients with finite differences")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	inputsFlag := fs.String("inputs", "1,0,-1", "Comma-separated input features")
	target := fs.Float64("target", 1, "Training label")
	epochs := fs.Int("epochs", 100, "Number of training iterations")
	lr := fs.Float64("lr", 0.01, "Learning rate for SGD")
	activationFlag := fs.String("activation", "tanh", "Activation: identity, sigmoid or tanh")
	lossFlag := fs.String("loss", "squared", "Loss: squared or difference")
	seed := fs.Int64("seed", nn.DefaultSeed, "Seed for weight initialization")
	logEvery := fs.Int("log-every", 10, "Log every N epochs (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inputs, err := parseFloats(*inputsFlag)
	if err != nil {
		return fmt.Errorf("-inputs: %w", err)
	}
	activation, err := nn.ParseActivation(*activationFlag)
	if err != nil {
		return fmt.Errorf("-activation: %w", err)
	}
	lossFn, err := nn.ParseLoss(*lossFlag)
	if err != nil {
		return fmt.Errorf("-loss: %w", err)
	}

	g := autodiff.NewGraph()
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	neuron := nn.NewNeuron(g, len(inputs), activation, rand.New(rand.NewSource(*seed)))
	optimizer := optim.NewSGD(neuron.Parameters(), optim.SGDConfig{LR: *lr})

	printParameters("initial", neuron)

	trainer := train.NewTrainer(g, neuron, optimizer, lossFn, train.Config{
		Epochs:   *epochs,
		LogEvery: *logEvery,
		Logger:   log.New(os.Stdout, "", 0),
	})
	history, err := trainer.Fit([]train.Sample{{Inputs: inputs, Target: *target}})
	if err != nil {
		return err
	}

	printParameters("final", neuron)
	prediction, err := neuron.Predict(inputs)
	if err != nil {
		return err
	}
	fmt.Printf("prediction=%.6f target=%g loss=%.6f\n", prediction, *target, history.FinalLoss())
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	step := fs.Float64("step", 1e-6, "Finite-difference step")
	tol := fs.Float64("tol", 1e-5, "Maximum absolute difference")
	verbose := fs.Bool("v", false, "Print every gradient component")
	if err := fs.Parse(args); err != nil {
		return err
	}

	failed := 0
	for _, c := range gradcheck.Cases() {
		report, err := gradcheck.Check(c.Build, c.Point, gradcheck.Config{Step: *step, Tolerance: *tol})
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		status := "ok"
		if !report.OK() {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%-16s %s max_abs_diff=%.3g\n", c.Name, status, report.MaxAbsDiff)
		if *verbose || !report.OK() {
			fmt.Println(report)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d gradient checks failed", failed)
	}
	return nil
}

func printParameters(stage string, neuron *nn.Neuron) {
	parts := make([]string, 0, len(neuron.Parameters()))
	for _, p := range neuron.Parameters() {
		parts = append(parts, fmt.Sprintf("%s=%.6f", p.Name(), p.Value()))
	}
	fmt.Printf("%s: %s\n", stage, strings.Join(parts, " "))
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}
