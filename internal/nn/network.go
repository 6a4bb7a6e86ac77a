// Package nn implements the feed-forward network engine behind the
// playnet visualization.
//
// The package provides:
//   - Node, Link: mutable graph primitives holding parameters and per-step
//     derivative accumulators
//   - Network: a layered, fully connected node/link arena
//   - Forward / ForwardBatch: single-example and mini-batch propagation
//   - Backward / BackwardBatch: reverse-mode gradient computation
//   - Activation, Loss, Regularization, Normalization: tagged scalar
//     function tables
//
// The network is a flat arena: the Network owns all node and link storage,
// links address their endpoints by (layer, index) handles, and nodes refer
// to links by index. Every training step mutates this state in place; the
// graph structure itself is immutable after construction except for the
// irreversible IsDead transition on links.
//
// The engine is single-threaded by contract. Callers drive training as
// repeated synchronous forward → backward → update cycles and must never
// run two of those concurrently on one network.
package nn

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
)

// ErrShapeMismatch is returned when an input vector's length disagrees with
// the input layer's node count. It is the engine's only validated failure;
// callers detect it with errors.Is.
var ErrShapeMismatch = errors.New("nn: shape mismatch")

// Network is an ordered sequence of layers, fully connected between
// adjacent layers. Layer 0 is the input layer; the last layer has exactly
// one node, the output.
//
// A Network is built once per configuration and then mutated in place by
// every training step. Rebuild rather than reconfigure: none of the build
// parameters can change afterwards.
type Network struct {
	// Layers holds all node storage, outer index = layer.
	Layers [][]Node

	// Links holds all link storage. Node.InLinks/OutLinks and the builder's
	// insertion order are the only orderings that matter: they fix the
	// floating-point summation order of the forward pass.
	Links []Link

	// Normalization is the rescaling mode chosen at build time.
	Normalization Normalization
}

// Config describes a network to build.
type Config struct {
	// Shape lists the node count of every layer, input first. The last
	// entry must be 1.
	Shape []int

	// HiddenActivation is applied to every non-output layer's nodes.
	// The zero value is Tanh.
	HiddenActivation Activation

	// OutputActivation is applied to the output node. The zero value is
	// Tanh.
	OutputActivation Activation

	// Regularization is the weight penalty shared by all links.
	Regularization Regularization

	// Normalization selects the rescaling mode (none, batch or layer).
	Normalization Normalization

	// InputIDs labels the input nodes, in order. Its length must equal
	// Shape[0].
	InputIDs []string

	// ZeroInit starts every weight, bias and optimizer moment at zero
	// instead of the defaults (bias 0.1, weights uniform in (-0.5, 0.5)).
	ZeroInit bool

	// Rand is the source for weight initialization. Nil falls back to the
	// shared math/rand source.
	Rand *rand.Rand
}

// NewNetwork builds a layered, fully connected network from cfg.
//
// Node ids: the input layer uses cfg.InputIDs in order; every other node
// takes the next value of a single integer counter starting at 1, assigned
// in layer order then position order.
//
// Returns an error when the shape has fewer than two layers, when the
// output layer size is not exactly 1, or when len(cfg.InputIDs) does not
// match Shape[0].
func NewNetwork(cfg Config) (*Network, error) {
	if len(cfg.Shape) < 2 {
		return nil, fmt.Errorf("nn: network needs at least input and output layers, got shape %v", cfg.Shape)
	}
	if out := cfg.Shape[len(cfg.Shape)-1]; out != 1 {
		return nil, fmt.Errorf("nn: output layer must have exactly 1 node, got %d", out)
	}
	if len(cfg.InputIDs) != cfg.Shape[0] {
		return nil, fmt.Errorf("nn: got %d input ids for %d input nodes", len(cfg.InputIDs), cfg.Shape[0])
	}

	rnd := cfg.Rand
	net := &Network{
		Layers:        make([][]Node, len(cfg.Shape)),
		Normalization: cfg.Normalization,
	}

	nextID := 1
	for layerIdx, size := range cfg.Shape {
		isInput := layerIdx == 0
		isOutput := layerIdx == len(cfg.Shape)-1

		activation := cfg.HiddenActivation
		if isOutput {
			activation = cfg.OutputActivation
		}

		layer := make([]Node, size)
		for i := range layer {
			node := &layer[i]
			if isInput {
				node.ID = cfg.InputIDs[i]
			} else {
				node.ID = strconv.Itoa(nextID)
				nextID++
			}
			node.Activation = activation
			if !cfg.ZeroInit {
				node.Bias = 0.1
			}
			node.BatchNormGamma = 1
			node.BatchNormEpsilon = DefaultBatchNormEpsilon
			node.LayerNormGamma = 1
			node.LayerNormEpsilon = DefaultLayerNormEpsilon
		}
		net.Layers[layerIdx] = layer

		if isInput {
			continue
		}
		prev := net.Layers[layerIdx-1]
		for i := range layer {
			for j := range prev {
				linkIdx := len(net.Links)
				link := Link{
					ID:             prev[j].ID + "-" + layer[i].ID,
					Source:         NodeRef{Layer: layerIdx - 1, Index: j},
					Dest:           NodeRef{Layer: layerIdx, Index: i},
					Regularization: cfg.Regularization,
				}
				if !cfg.ZeroInit {
					link.Weight = initWeight(rnd)
				}
				net.Links = append(net.Links, link)
				prev[j].OutLinks = append(prev[j].OutLinks, linkIdx)
				layer[i].InLinks = append(layer[i].InLinks, linkIdx)
			}
		}
	}
	return net, nil
}

// initWeight draws a uniform starting weight in (-0.5, 0.5).
func initWeight(rnd *rand.Rand) float64 {
	if rnd == nil {
		return rand.Float64() - 0.5
	}
	return rnd.Float64() - 0.5
}

// Node returns the node addressed by ref.
func (n *Network) Node(ref NodeRef) *Node {
	return &n.Layers[ref.Layer][ref.Index]
}

// Link returns the link at index i of the link arena.
func (n *Network) Link(i int) *Link {
	return &n.Links[i]
}

// OutputNode returns the single node of the last layer. Its Output (or
// BatchOutput) field is where forward propagation leaves its result.
func (n *Network) OutputNode() *Node {
	last := n.Layers[len(n.Layers)-1]
	return &last[0]
}

// ForEachNode calls fn for every node, in layer order then position order,
// optionally skipping the input layer. Renderers use this to walk the
// network with read/write access between steps.
func (n *Network) ForEachNode(ignoreInputs bool, fn func(ref NodeRef, node *Node)) {
	start := 0
	if ignoreInputs {
		start = 1
	}
	for layerIdx := start; layerIdx < len(n.Layers); layerIdx++ {
		layer := n.Layers[layerIdx]
		for i := range layer {
			fn(NodeRef{Layer: layerIdx, Index: i}, &layer[i])
		}
	}
}
