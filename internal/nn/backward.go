package nn

// Backward computes error derivatives for the single example most recently
// propagated by Forward, accumulating gradients into the per-node and
// per-link accumulators.
//
// Walking layers from the output down to the first hidden layer:
//
//  1. every node's InputDer = OutputDer * activation.Der(TotalInput), added
//     into AccInputDer;
//  2. every live input link's ErrorDer = dest.InputDer * source.Output,
//     added into AccErrorDer;
//  3. unless this is the first hidden layer, the previous layer's
//     OutputDer values are recomputed (overwritten, not accumulated) as
//     Σ weight * dest.InputDer over each node's outgoing links.
//
// Dead links are skipped in step 2; with their zero weight they contribute
// nothing in step 3 either. Accumulators keep growing across calls until an
// optimizer step resets them, which is what makes batch-style accumulation
// over repeated Forward/Backward pairs work.
//
// Calling Backward without a preceding Forward is undefined behavior.
func (n *Network) Backward(target float64, loss Loss) {
	out := n.OutputNode()
	out.OutputDer = loss.Der(out.Output, target)
	n.backProp(func(node *Node) float64 { return node.TotalInput },
		func(node *Node) float64 { return node.Output })
}

// BackwardBatch runs the Backward algorithm once per element of the batch
// most recently propagated by ForwardBatch, reading the per-slot
// TotalBatchInput/BatchOutput fields. Gradients from every element
// accumulate into the same shared accumulators, so a following optimizer
// step averages over the whole batch.
//
// targets must have at least one entry per batch element; extras are
// ignored.
func (n *Network) BackwardBatch(targets []float64, loss Loss) {
	out := n.OutputNode()
	for b := range out.BatchOutput {
		out.OutputDer = loss.Der(out.BatchOutput[b], targets[b])
		n.backProp(func(node *Node) float64 { return node.TotalBatchInput[b] },
			func(node *Node) float64 { return node.BatchOutput[b] })
	}
}

// backProp runs one reverse pass, reading pre-activation sums and outputs
// through the supplied accessors so the single and batch paths share the
// same traversal.
func (n *Network) backProp(totalInput, output func(*Node) float64) {
	for layerIdx := len(n.Layers) - 1; layerIdx >= 1; layerIdx-- {
		layer := n.Layers[layerIdx]

		for i := range layer {
			node := &layer[i]
			node.InputDer = node.OutputDer * node.Activation.Der(totalInput(node))
			node.AccInputDer += node.InputDer
			node.NumAccumulatedDers++
		}

		for i := range layer {
			node := &layer[i]
			for _, li := range node.InLinks {
				link := &n.Links[li]
				if link.IsDead {
					continue
				}
				link.ErrorDer = node.InputDer * output(n.Node(link.Source))
				link.AccErrorDer += link.ErrorDer
				link.NumAccumulatedDers++
			}
		}

		if layerIdx == 1 {
			continue
		}
		prev := n.Layers[layerIdx-1]
		for i := range prev {
			node := &prev[i]
			node.OutputDer = 0
			for _, li := range node.OutLinks {
				link := &n.Links[li]
				node.OutputDer += link.Weight * n.Node(link.Dest).InputDer
			}
		}
	}
}
