package nn

import (
	"fmt"
	"math"
)

// Regularization identifies a weight penalty applied during parameter
// updates.
//
// The penalty itself is added to the reported loss by callers that want it;
// the engine only consumes Der during updates. L1 additionally enables
// weight pruning: when a regularization step would flip a weight's sign, the
// weight is snapped to zero and its link permanently killed (see optim).
type Regularization int

const (
	// RegNone disables the penalty. Value and Der are identically zero.
	RegNone Regularization = iota

	// RegL1 penalizes |w|, driving small weights to exactly zero.
	RegL1

	// RegL2 penalizes 0.5 * w^2, shrinking weights proportionally.
	RegL2
)

// Value evaluates the penalty at weight w.
func (r Regularization) Value(w float64) float64 {
	switch r {
	case RegNone:
		return 0
	case RegL1:
		return math.Abs(w)
	case RegL2:
		return 0.5 * w * w
	default:
		panic(fmt.Sprintf("nn: unknown regularization %d", int(r)))
	}
}

// Der evaluates the penalty's derivative at weight w.
//
// For L1 the derivative at exactly zero is defined as zero, so a pruned
// weight receives no further regularization pressure.
func (r Regularization) Der(w float64) float64 {
	switch r {
	case RegNone:
		return 0
	case RegL1:
		switch {
		case w < 0:
			return -1
		case w > 0:
			return 1
		default:
			return 0
		}
	case RegL2:
		return w
	default:
		panic(fmt.Sprintf("nn: unknown regularization %d", int(r)))
	}
}

// String returns the lowercase name used by the CLI and ParseRegularization.
func (r Regularization) String() string {
	switch r {
	case RegNone:
		return "none"
	case RegL1:
		return "l1"
	case RegL2:
		return "l2"
	default:
		return fmt.Sprintf("regularization(%d)", int(r))
	}
}

// ParseRegularization maps a name to its Regularization tag.
func ParseRegularization(name string) (Regularization, error) {
	switch name {
	case "none", "":
		return RegNone, nil
	case "l1":
		return RegL1, nil
	case "l2":
		return RegL2, nil
	default:
		return 0, fmt.Errorf("nn: unknown regularization %q", name)
	}
}
