package nn

import (
	"fmt"
	"math"
)

// Activation identifies a scalar activation function.
//
// Each activation is a pure (value, derivative) pair evaluated at a node's
// pre-activation sum. Activations carry no state and are shared by every
// node of a layer, so they are represented as a tagged constant with method
// dispatch rather than an object hierarchy.
//
// Example:
//
//	act := nn.ActivationTanh
//	y := act.Value(0.5)   // tanh(0.5)
//	dy := act.Der(0.5)    // 1 - tanh(0.5)^2
type Activation int

const (
	// ActivationTanh is the hyperbolic tangent, range (-1, 1).
	//
	// Tanh(±Inf) is ±1, which matters when upstream activations have
	// already overflowed: saturation keeps the output renderable.
	ActivationTanh Activation = iota

	// ActivationReLU is the rectified linear unit: f(x) = max(0, x).
	ActivationReLU

	// ActivationSigmoid is the logistic function, range (0, 1).
	ActivationSigmoid

	// ActivationLinear is the identity: f(x) = x.
	ActivationLinear
)

// Value evaluates the activation at x.
func (a Activation) Value(x float64) float64 {
	switch a {
	case ActivationTanh:
		return math.Tanh(x)
	case ActivationReLU:
		return math.Max(0, x)
	case ActivationSigmoid:
		return 1 / (1 + math.Exp(-x))
	case ActivationLinear:
		return x
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// Der evaluates the activation's derivative at x.
func (a Activation) Der(x float64) float64 {
	switch a {
	case ActivationTanh:
		out := math.Tanh(x)
		return 1 - out*out
	case ActivationReLU:
		if x <= 0 {
			return 0
		}
		return 1
	case ActivationSigmoid:
		out := 1 / (1 + math.Exp(-x))
		return out * (1 - out)
	case ActivationLinear:
		return 1
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// String returns the lowercase name used by the CLI and ParseActivation.
func (a Activation) String() string {
	switch a {
	case ActivationTanh:
		return "tanh"
	case ActivationReLU:
		return "relu"
	case ActivationSigmoid:
		return "sigmoid"
	case ActivationLinear:
		return "linear"
	default:
		return fmt.Sprintf("activation(%d)", int(a))
	}
}

// ParseActivation maps a name to its Activation tag.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "tanh":
		return ActivationTanh, nil
	case "relu":
		return ActivationReLU, nil
	case "sigmoid":
		return ActivationSigmoid, nil
	case "linear":
		return ActivationLinear, nil
	default:
		return 0, fmt.Errorf("nn: unknown activation %q", name)
	}
}
