package nn

import (
	"fmt"
	"math"
)

// Normalization selects the activation-rescaling mode a network applies
// during forward propagation.
//
// The two modes deliberately normalize over different axes:
//
//   - NormLayer runs on the single-example path and standardizes the raw
//     outputs of a hidden layer across that layer's nodes.
//   - NormBatch runs on the mini-batch path and standardizes each node's
//     outputs across the examples of the batch, one node at a time.
//
// Both use biased (divide-by-N) variance and the per-node gamma/beta scale
// and shift parameters.
type Normalization int

const (
	// NormNone disables normalization.
	NormNone Normalization = iota

	// NormBatch normalizes across batch slots, per node (mini-batch path).
	NormBatch

	// NormLayer normalizes across nodes, per layer (single-example path).
	NormLayer
)

// String returns the lowercase mode name used by the CLI.
func (m Normalization) String() string {
	switch m {
	case NormNone:
		return "none"
	case NormBatch:
		return "batch"
	case NormLayer:
		return "layer"
	default:
		return fmt.Sprintf("normalization(%d)", int(m))
	}
}

// ParseNormalization maps a name to its Normalization tag.
func ParseNormalization(name string) (Normalization, error) {
	switch name {
	case "none", "":
		return NormNone, nil
	case "batch":
		return NormBatch, nil
	case "layer":
		return NormLayer, nil
	default:
		return 0, fmt.Errorf("nn: unknown normalization %q", name)
	}
}

// layerNormalize standardizes the freshly computed outputs of one hidden
// layer across its nodes, overwriting each node's Output with
//
//	gamma * (output - mean) / sqrt(variance + eps) + beta
//
// using that node's own gamma, beta and epsilon. The computed statistics
// are recorded on every node of the layer for inspection.
func layerNormalize(layer []Node) {
	mean := 0.0
	for i := range layer {
		mean += layer[i].Output
	}
	mean /= float64(len(layer))

	variance := 0.0
	for i := range layer {
		d := layer[i].Output - mean
		variance += d * d
	}
	variance /= float64(len(layer))

	for i := range layer {
		node := &layer[i]
		node.LayerNormMean = mean
		node.LayerNormVariance = variance
		norm := (node.Output - mean) / math.Sqrt(variance+node.LayerNormEpsilon)
		node.Output = node.LayerNormGamma*norm + node.LayerNormBeta
	}
}

// batchNormalize standardizes one node's outputs across the slots of the
// current mini-batch. Statistics are computed over the node's own
// BatchOutput slice only, never pooled across the layer.
func batchNormalize(node *Node) {
	n := float64(len(node.BatchOutput))

	mean := 0.0
	for _, v := range node.BatchOutput {
		mean += v
	}
	mean /= n

	variance := 0.0
	for _, v := range node.BatchOutput {
		d := v - mean
		variance += d * d
	}
	variance /= n

	node.BatchNormMean = mean
	node.BatchNormVariance = variance
	scale := 1 / math.Sqrt(variance+node.BatchNormEpsilon)
	for i, v := range node.BatchOutput {
		node.BatchOutput[i] = node.BatchNormGamma*(v-mean)*scale + node.BatchNormBeta
	}
}
