// Package trainer drives the playnet engine through training steps.
//
// A Trainer owns a network, an optimizer and a feature set, and advances
// training one synchronous step at a time: forward, backward, update, in
// that fixed order. It never schedules itself: the timeline controller
// (or the CLI loop) decides when the next step runs, and pausing is simply
// not calling OneStep again.
package trainer

import (
	"github.com/playnet-ml/playnet/internal/dataset"
	"github.com/playnet-ml/playnet/internal/nn"
	"github.com/playnet-ml/playnet/internal/optim"
)

// Config holds trainer configuration.
type Config struct {
	// BatchSize is the number of examples whose gradients accumulate
	// before each optimizer step. 1 (and the zero value) steps after every
	// example via the single-example path; larger sizes use the mini-batch
	// forward/backward path.
	BatchSize int

	// Loss is the error function. The zero value is the squared error.
	Loss nn.Loss

	// Features derive network inputs from example coordinates. The
	// feature count must match the network's input layer size.
	Features []Feature
}

// Trainer runs forward → backward → update cycles over a network.
type Trainer struct {
	net       *nn.Network
	opt       optim.Optimizer
	loss      nn.Loss
	batchSize int
	features  []Feature
	steps     int
}

// New creates a Trainer for net and opt. Zero config fields take their
// documented defaults; nil Features defaults to the raw x and y inputs.
func New(net *nn.Network, opt optim.Optimizer, cfg Config) *Trainer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}
	features := cfg.Features
	if features == nil {
		features, _ = SelectFeatures([]string{"x", "y"})
	}
	return &Trainer{
		net:       net,
		opt:       opt,
		loss:      cfg.Loss,
		batchSize: cfg.BatchSize,
		features:  features,
	}
}

// OneStep trains over examples once, applying an optimizer step after
// every batch (including a trailing partial batch).
//
// With batch size 1 each example runs through the single-example
// Forward/Backward pair; otherwise batches run through the mini-batch pair,
// whose gradients accumulate into the same per-node and per-link
// accumulators before the update averages them out.
func (t *Trainer) OneStep(examples []dataset.Example2D) error {
	if t.batchSize == 1 {
		for _, ex := range examples {
			if _, err := t.net.Forward(inputs(t.features, ex)); err != nil {
				return err
			}
			t.net.Backward(ex.Label, t.loss)
			t.opt.Step(t.net)
		}
		t.steps++
		return nil
	}

	for start := 0; start < len(examples); start += t.batchSize {
		end := start + t.batchSize
		if end > len(examples) {
			end = len(examples)
		}
		batch := make([][]float64, 0, end-start)
		targets := make([]float64, 0, end-start)
		for _, ex := range examples[start:end] {
			batch = append(batch, inputs(t.features, ex))
			targets = append(targets, ex.Label)
		}
		if _, err := t.net.ForwardBatch(batch); err != nil {
			return err
		}
		t.net.BackwardBatch(targets, t.loss)
		t.opt.Step(t.net)
	}
	t.steps++
	return nil
}

// Loss returns the average error over examples, leaving parameters
// untouched (forward passes only).
func (t *Trainer) Loss(examples []dataset.Example2D) (float64, error) {
	if len(examples) == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, ex := range examples {
		out, err := t.net.Forward(inputs(t.features, ex))
		if err != nil {
			return 0, err
		}
		sum += t.loss.Output(out, ex.Label)
	}
	return sum / float64(len(examples)), nil
}

// Network returns the trained network for inspection.
func (t *Trainer) Network() *nn.Network { return t.net }

// Steps returns the number of completed OneStep calls.
func (t *Trainer) Steps() int { return t.steps }
