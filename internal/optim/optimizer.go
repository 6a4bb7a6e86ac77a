// Package optim implements the parameter update rules for the playnet
// engine.
//
// This package provides:
//   - Optimizer interface: one Step applies accumulated gradients
//   - SGD: plain gradient descent
//   - Adam: adaptive moment estimation with bias correction
//
// Unlike tensor-framework optimizers, these operate directly on the
// network's node/link graph: the forward/backward passes leave averaged
// gradient accumulators on every node and live link, and Step consumes and
// resets them in place. Both optimizers share the regularization handling,
// including L1 zero-crossing pruning that permanently kills a link whose
// regularization step flips its weight's sign.
//
// Example usage:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.03, RegLambda: 0.001})
//
//	for step := 0; step < steps; step++ {
//	    net.Forward(input)
//	    net.Backward(target, nn.LossSquare)
//	    opt.Step(net)
//	}
package optim

import "github.com/playnet-ml/playnet/internal/nn"

// Optimizer is the base interface for all update rules.
//
// Step applies every accumulated gradient to the network's biases and
// weights and resets the accumulators, completing one training step.
// Implementations must leave all AccInputDer/AccErrorDer fields and their
// counts at exactly zero on return.
type Optimizer interface {
	// Step applies one parameter update to net in place.
	//
	// Nodes and links that accumulated no gradient since the last Step are
	// left unchanged.
	Step(net *nn.Network)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate. The visualization's control panel
	// adjusts it between steps without rebuilding the optimizer.
	SetLR(lr float64)
}

// applyRegularization finalizes one link's weight update. candidate is the
// weight after the gradient step alone; the returned weight additionally
// carries the regularization step
//
//	candidate - lr * lambda * regDer
//
// where regDer is the penalty derivative evaluated by the caller (SGD uses
// the post-gradient weight, Adam the pre-update weight). Under L1, a
// regularization step that crosses zero snaps the weight to exactly 0 and
// marks the link dead, permanently.
func applyRegularization(link *nn.Link, candidate, regDer, lr, lambda float64) {
	newWeight := candidate - lr*lambda*regDer
	if link.Regularization == nn.RegL1 && candidate*newWeight < 0 {
		link.Weight = 0
		link.IsDead = true
		return
	}
	link.Weight = newWeight
}
