package nn

// Default normalization epsilons. Batch normalization follows the common
// 1e-3 convention; layer normalization the tighter 1e-5.
const (
	DefaultBatchNormEpsilon = 1e-3
	DefaultLayerNormEpsilon = 1e-5
)

// NodeRef addresses a node inside a Network's layer arena by (layer,
// position). Links store NodeRefs instead of node pointers so the network
// owns all storage and the graph has no pointer cycles.
type NodeRef struct {
	Layer int
	Index int
}

// Node is a single computation unit.
//
// A node holds one trainable parameter (its bias), an activation tag, and a
// set of transient fields that every forward/backward/update cycle mutates
// in place. All fields are exported so a renderer can read (and, for gamma
// and beta, write) state between steps; the engine assumes exclusive access
// while a step is running.
type Node struct {
	// ID is a stable, network-unique label. Input nodes carry
	// caller-supplied ids; all other nodes get a shared integer counter.
	ID string

	// Bias is the node's trainable offset. Defaults to 0.1, or 0 when the
	// network is built with zero initialization.
	Bias float64

	// Activation is the node's activation function tag, fixed at build
	// time per layer role.
	Activation Activation

	// InLinks and OutLinks index into Network.Links, in insertion order.
	// InLinks is empty iff the node is in the input layer; OutLinks is
	// empty iff it is the output node.
	InLinks  []int
	OutLinks []int

	// Per-step forward/backward state (single-example path).
	TotalInput float64 // pre-activation sum
	Output     float64 // post-activation value
	OutputDer  float64 // dE/d(output)
	InputDer   float64 // dE/d(totalInput)

	// Gradient accumulator, shared by the single and batch paths. Reset to
	// zero by every optimizer step.
	AccInputDer        float64
	NumAccumulatedDers int

	// Per-batch forward state, parallel slices indexed by position within
	// the current mini-batch.
	TotalBatchInput []float64
	BatchOutput     []float64

	// Adam moment estimates for the bias, persisted across steps.
	MBias float64
	VBias float64

	// Normalization state: a (gamma, beta, epsilon, running mean/variance)
	// set for batch normalization and a separate set for layer
	// normalization. Gamma defaults to 1 and beta to 0.
	BatchNormGamma    float64
	BatchNormBeta     float64
	BatchNormEpsilon  float64
	BatchNormMean     float64
	BatchNormVariance float64

	LayerNormGamma    float64
	LayerNormBeta     float64
	LayerNormEpsilon  float64
	LayerNormMean     float64
	LayerNormVariance float64
}

// Link is a directed, weighted edge between two nodes in adjacent layers.
//
// Exactly one link exists per (source, dest) pair; links are never added or
// removed after construction. The only permitted structural change is the
// irreversible IsDead transition performed by L1 pruning.
type Link struct {
	// ID is derived from the endpoint ids: sourceID + "-" + destID.
	ID string

	// Source and Dest address the endpoints in the network arena.
	Source NodeRef
	Dest   NodeRef

	// Weight is the trainable edge parameter. Randomly initialized in
	// (-0.5, 0.5), or 0 under zero initialization.
	Weight float64

	// IsDead marks a pruned link. A dead link keeps its zero weight in the
	// forward weighted sum but is permanently excluded from gradient
	// computation and updates.
	IsDead bool

	// Per-step gradient state. Reset to zero by every optimizer step.
	ErrorDer           float64
	AccErrorDer        float64
	NumAccumulatedDers int

	// Adam moment estimates for the weight, persisted across steps.
	MWeight float64
	VWeight float64

	// Regularization is the weight penalty tag shared by all links, fixed
	// at build time.
	Regularization Regularization
}
