package optim

import "github.com/playnet-ml/playnet/internal/nn"

// SGD implements plain stochastic gradient descent over the network graph.
//
// Update rule, per parameter with accumulated gradient:
//
//	bias   -= lr * accInputDer / numAccumulatedDers
//	weight -= lr * accErrorDer / numAccumulatedDers
//	weight -= lr * lambda * reg.Der(weight)   // regularization step
//
// Because the accumulators divide by their count, gradients collected over
// a mini-batch (or over repeated single examples between steps) are
// averaged, never summed raw.
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.03})
type SGD struct {
	lr     float64
	lambda float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR        float64 // Learning rate (default: 0.01)
	RegLambda float64 // Regularization rate (default: 0.0)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:     config.LR,
		lambda: config.RegLambda,
	}
}

// Step applies one plain gradient-descent update to net.
//
// Walks every non-input node: the bias takes the averaged accumulated
// gradient, then each live input link takes its averaged gradient followed
// by the regularization step (with L1 zero-crossing pruning). All touched
// accumulators are reset to zero.
func (s *SGD) Step(net *nn.Network) {
	net.ForEachNode(true, func(_ nn.NodeRef, node *nn.Node) {
		if node.NumAccumulatedDers > 0 {
			node.Bias -= s.lr * node.AccInputDer / float64(node.NumAccumulatedDers)
			node.AccInputDer = 0
			node.NumAccumulatedDers = 0
		}
		for _, li := range node.InLinks {
			link := net.Link(li)
			if link.IsDead {
				continue
			}
			if link.NumAccumulatedDers == 0 {
				continue
			}
			candidate := link.Weight - s.lr/float64(link.NumAccumulatedDers)*link.AccErrorDer
			applyRegularization(link, candidate, link.Regularization.Der(candidate), s.lr, s.lambda)
			link.AccErrorDer = 0
			link.NumAccumulatedDers = 0
		}
	})
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 { return s.lr }

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
