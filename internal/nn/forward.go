package nn

import "fmt"

// Forward propagates a single example through the network.
//
// Each input node's Output is set to the corresponding entry of inputs,
// then every later layer computes per node
//
//	totalInput = bias + Σ weight_i * source_i.output
//	output     = activation(totalInput)
//
// over its input links in insertion order. Dead links keep their frozen
// zero weight in the sum. With layer normalization enabled, every hidden
// layer's raw outputs are additionally standardized across the layer's
// nodes (see Normalization).
//
// Returns the output node's value. The same value stays readable as
// OutputNode().Output until the next forward pass. Returns
// ErrShapeMismatch, with the network untouched, when len(inputs) differs
// from the input layer size.
func (n *Network) Forward(inputs []float64) (float64, error) {
	inputLayer := n.Layers[0]
	if len(inputs) != len(inputLayer) {
		return 0, fmt.Errorf("%w: %d inputs for %d input nodes", ErrShapeMismatch, len(inputs), len(inputLayer))
	}

	for i := range inputLayer {
		inputLayer[i].Output = inputs[i]
	}

	for layerIdx := 1; layerIdx < len(n.Layers); layerIdx++ {
		layer := n.Layers[layerIdx]
		for i := range layer {
			node := &layer[i]
			total := node.Bias
			for _, li := range node.InLinks {
				link := &n.Links[li]
				total += link.Weight * n.Node(link.Source).Output
			}
			node.TotalInput = total
			node.Output = node.Activation.Value(total)
		}
		if n.Normalization == NormLayer && layerIdx != len(n.Layers)-1 {
			layerNormalize(layer)
		}
	}
	return n.OutputNode().Output, nil
}

// ForwardBatch propagates a mini-batch of examples through the network.
//
// The computation mirrors Forward, but reads and writes the per-slot
// TotalBatchInput/BatchOutput fields, one slot per batch element. With
// batch normalization enabled, every non-output layer's nodes are
// standardized across their own batch slots after the layer is computed
// (per node, never pooled across the layer; see Normalization).
//
// Returns the output node's BatchOutput slice, one value per example; the
// slice aliases network state and is overwritten by the next batch pass.
// Returns ErrShapeMismatch, with the network untouched, when any element of
// batch has the wrong length.
func (n *Network) ForwardBatch(batch [][]float64) ([]float64, error) {
	inputLayer := n.Layers[0]
	for b, inputs := range batch {
		if len(inputs) != len(inputLayer) {
			return nil, fmt.Errorf("%w: batch element %d has %d inputs for %d input nodes",
				ErrShapeMismatch, b, len(inputs), len(inputLayer))
		}
	}
	batchSize := len(batch)
	n.ForEachNode(false, func(_ NodeRef, node *Node) {
		node.TotalBatchInput = resize(node.TotalBatchInput, batchSize)
		node.BatchOutput = resize(node.BatchOutput, batchSize)
	})

	for i := range inputLayer {
		for b := range batch {
			inputLayer[i].BatchOutput[b] = batch[b][i]
		}
	}

	for layerIdx := 1; layerIdx < len(n.Layers); layerIdx++ {
		layer := n.Layers[layerIdx]
		for i := range layer {
			node := &layer[i]
			for b := 0; b < batchSize; b++ {
				total := node.Bias
				for _, li := range node.InLinks {
					link := &n.Links[li]
					total += link.Weight * n.Node(link.Source).BatchOutput[b]
				}
				node.TotalBatchInput[b] = total
				node.BatchOutput[b] = node.Activation.Value(total)
			}
		}
		if n.Normalization == NormBatch && layerIdx != len(n.Layers)-1 {
			for i := range layer {
				batchNormalize(&layer[i])
			}
		}
	}
	return n.OutputNode().BatchOutput, nil
}

// resize returns s with length size, reusing its backing array when large
// enough.
func resize(s []float64, size int) []float64 {
	if cap(s) < size {
		return make([]float64, size)
	}
	return s[:size]
}
