// Copyright 2025 The playnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is the public surface of the playnet network engine.
//
// It re-exports the internal engine types: the node/link network graph,
// forward and backward propagation, and the scalar activation, loss and
// regularization function tables. The rendering and control-panel layers
// build against this package only.
package nn

import (
	"github.com/playnet-ml/playnet/internal/nn"
)

// Network is a layered, fully connected node/link graph. See the engine
// documentation for the mutation contract.
type Network = nn.Network

// Config describes a network to build.
type Config = nn.Config

// Node is a single computation unit.
type Node = nn.Node

// Link is a weighted directed edge between nodes in adjacent layers.
type Link = nn.Link

// NodeRef addresses a node by (layer, position).
type NodeRef = nn.NodeRef

// ErrShapeMismatch reports an input vector whose length disagrees with the
// input layer size.
var ErrShapeMismatch = nn.ErrShapeMismatch

// NewNetwork builds a network from cfg.
//
// Example:
//
//	net, err := nn.NewNetwork(nn.Config{
//	    Shape:            []int{2, 4, 2, 1},
//	    HiddenActivation: nn.ActivationTanh,
//	    OutputActivation: nn.ActivationTanh,
//	    InputIDs:         []string{"x", "y"},
//	})
func NewNetwork(cfg Config) (*Network, error) {
	return nn.NewNetwork(cfg)
}

// Snapshot is the serializable persistent state of a network, as produced
// by Network.Snapshot and consumed by Network.Restore.
type Snapshot = nn.Snapshot

// Activations

// Activation identifies a scalar (value, derivative) activation pair.
type Activation = nn.Activation

const (
	ActivationTanh    = nn.ActivationTanh
	ActivationReLU    = nn.ActivationReLU
	ActivationSigmoid = nn.ActivationSigmoid
	ActivationLinear  = nn.ActivationLinear
)

// ParseActivation maps a name to its Activation tag.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Loss functions

// Loss identifies a scalar error function.
type Loss = nn.Loss

// LossSquare is the squared error.
const LossSquare = nn.LossSquare

// Regularization

// Regularization identifies a weight penalty.
type Regularization = nn.Regularization

const (
	RegNone = nn.RegNone
	RegL1   = nn.RegL1
	RegL2   = nn.RegL2
)

// ParseRegularization maps a name to its Regularization tag.
func ParseRegularization(name string) (Regularization, error) {
	return nn.ParseRegularization(name)
}

// Normalization

// Normalization selects the activation-rescaling mode.
type Normalization = nn.Normalization

const (
	NormNone  = nn.NormNone
	NormBatch = nn.NormBatch
	NormLayer = nn.NormLayer
)

// ParseNormalization maps a name to its Normalization tag.
func ParseNormalization(name string) (Normalization, error) {
	return nn.ParseNormalization(name)
}
