package optim

import (
	"math"

	"github.com/playnet-ml/playnet/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) update rule over
// the network graph.
//
// Per parameter with accumulated gradient g (already averaged over the
// accumulator count):
//
//	m = beta1*m + (1-beta1)*g        // first moment
//	v = beta2*v + (1-beta2)*g²       // second moment
//	mHat = m / (1 - beta1^t)         // bias correction
//	vHat = v / (1 - beta2^t)
//	param -= lr * mHat / (sqrt(vHat) + eps)
//
// The moment estimates live on the nodes and links themselves (MBias/VBias,
// MWeight/VWeight) and persist across steps; the 1-indexed timestep t is
// incremented internally on every Step call. Regularization folds into the
// same update step, with the L1 pruning check applied to the
// pre-regularization candidate weight exactly as in SGD.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
type Adam struct {
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	lambda float64
	t      int // timestep for bias correction
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR        float64    // Learning rate (default: 0.001)
	Betas     [2]float64 // Moment decay rates (default: [0.9, 0.999])
	Eps       float64    // Numerical stability constant (default: 1e-8)
	RegLambda float64    // Regularization rate (default: 0.0)
}

// NewAdam creates a new Adam optimizer with defaults filled in for zero
// config fields.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		lambda: config.RegLambda,
	}
}

// Step applies one bias-corrected adaptive-moment update to net and resets
// every touched accumulator. Dead links are skipped; their moments stay
// frozen along with their weight.
func (a *Adam) Step(net *nn.Network) {
	a.t++
	net.ForEachNode(true, func(_ nn.NodeRef, node *nn.Node) {
		if node.NumAccumulatedDers > 0 {
			g := node.AccInputDer / float64(node.NumAccumulatedDers)
			node.MBias = a.beta1*node.MBias + (1-a.beta1)*g
			node.VBias = a.beta2*node.VBias + (1-a.beta2)*g*g
			node.Bias -= a.lr * a.correct(node.MBias, node.VBias)
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
			g := link.AccErrorDer / float64(link.NumAccumulatedDers)
			link.MWeight = a.beta1*link.MWeight + (1-a.beta1)*g
			link.VWeight = a.beta2*link.VWeight + (1-a.beta2)*g*g
			candidate := link.Weight - a.lr*a.correct(link.MWeight, link.VWeight)
			applyRegularization(link, candidate, link.Regularization.Der(link.Weight), a.lr, a.lambda)
			link.AccErrorDer = 0
			link.NumAccumulatedDers = 0
		}
	})
}

// correct returns the bias-corrected update direction mHat/(sqrt(vHat)+eps)
// for the current timestep.
func (a *Adam) correct(m, v float64) float64 {
	mHat := m / (1 - math.Pow(a.beta1, float64(a.t)))
	vHat := v / (1 - math.Pow(a.beta2, float64(a.t)))
	return mHat / (math.Sqrt(vHat) + a.eps)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 { return a.lr }

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) { a.lr = lr }

// Timestep returns the number of Step calls applied so far.
func (a *Adam) Timestep() int { return a.t }
