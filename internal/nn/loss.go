package nn

import "fmt"

// Loss identifies a scalar error function comparing a network output
// against a target value.
//
// Like Activation, a Loss is a pure (value, derivative) pair with no state.
type Loss int

const (
	// LossSquare is the squared error: E = 0.5 * (output - target)^2.
	//
	// The 0.5 factor makes the derivative exactly (output - target).
	LossSquare Loss = iota
)

// Output evaluates the error for a single (output, target) pair.
func (l Loss) Output(output, target float64) float64 {
	switch l {
	case LossSquare:
		d := output - target
		return 0.5 * d * d
	default:
		panic(fmt.Sprintf("nn: unknown loss %d", int(l)))
	}
}

// Der evaluates dE/d(output) for a single (output, target) pair.
func (l Loss) Der(output, target float64) float64 {
	switch l {
	case LossSquare:
		return output - target
	default:
		panic(fmt.Sprintf("nn: unknown loss %d", int(l)))
	}
}

// String returns the loss name.
func (l Loss) String() string {
	switch l {
	case LossSquare:
		return "square"
	default:
		return fmt.Sprintf("loss(%d)", int(l))
	}
}
