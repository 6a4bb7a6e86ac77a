package optim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playnet-ml/playnet/internal/nn"
)

// buildNetwork creates a deterministic test network.
func buildNetwork(t *testing.T, cfg nn.Config) *nn.Network {
	t.Helper()
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(3))
	}
	net, err := nn.NewNetwork(cfg)
	require.NoError(t, err)
	return net
}

// tinyNetwork builds a 1-input, 1-output linear network with a single link.
func tinyNetwork(t *testing.T, reg nn.Regularization) *nn.Network {
	t.Helper()
	return buildNetwork(t, nn.Config{
		Shape:            []int{1, 1},
		OutputActivation: nn.ActivationLinear,
		Regularization:   reg,
		InputIDs:         []string{"x"},
		ZeroInit:         true,
	})
}

// requireAccumulatorsReset asserts the post-update reset law: every
// accumulator and count is exactly zero.
func requireAccumulatorsReset(t *testing.T, net *nn.Network) {
	t.Helper()
	net.ForEachNode(true, func(_ nn.NodeRef, node *nn.Node) {
		require.Zero(t, node.AccInputDer, "node %s", node.ID)
		require.Zero(t, node.NumAccumulatedDers, "node %s", node.ID)
	})
	for i := range net.Links {
		if net.Links[i].IsDead {
			continue
		}
		require.Zero(t, net.Links[i].AccErrorDer, "link %s", net.Links[i].ID)
		require.Zero(t, net.Links[i].NumAccumulatedDers, "link %s", net.Links[i].ID)
	}
}

func TestSGD_Defaults(t *testing.T) {
	opt := NewSGD(SGDConfig{})
	assert.Equal(t, 0.01, opt.GetLR())
	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.GetLR())
}

func TestSGD_UpdateRule(t *testing.T) {
	net := tinyNetwork(t, nn.RegNone)
	out := net.OutputNode()
	link := net.Link(0)
	link.Weight = 0.4
	out.Bias = 0.2

	// One accumulated gradient of 0.5 on the weight and 0.25 on the bias.
	link.AccErrorDer = 0.5
	link.NumAccumulatedDers = 1
	out.AccInputDer = 0.25
	out.NumAccumulatedDers = 1

	NewSGD(SGDConfig{LR: 0.1}).Step(net)

	assert.InDelta(t, 0.4-0.1*0.5, link.Weight, 1e-12)
	assert.InDelta(t, 0.2-0.1*0.25, out.Bias, 1e-12)
	requireAccumulatorsReset(t, net)
}

func TestSGD_AveragesAccumulatedGradients(t *testing.T) {
	net := tinyNetwork(t, nn.RegNone)
	link := net.Link(0)
	link.Weight = 1

	// Four accumulated derivatives averaging to 0.5.
	link.AccErrorDer = 2.0
	link.NumAccumulatedDers = 4

	NewSGD(SGDConfig{LR: 0.1}).Step(net)
	assert.InDelta(t, 1-0.1*0.5, link.Weight, 1e-12)
}

func TestSGD_SkipsParametersWithoutGradient(t *testing.T) {
	net := tinyNetwork(t, nn.RegNone)
	link := net.Link(0)
	link.Weight = 0.4
	net.OutputNode().Bias = 0.2

	NewSGD(SGDConfig{LR: 0.1}).Step(net)

	assert.Equal(t, 0.4, link.Weight)
	assert.Equal(t, 0.2, net.OutputNode().Bias)
}

func TestSGD_ResetsAccumulatorsAfterTraining(t *testing.T) {
	net := buildNetwork(t, nn.Config{
		Shape:    []int{2, 3, 1},
		InputIDs: []string{"x", "y"},
	})
	opt := NewSGD(SGDConfig{LR: 0.03})
	for step := 0; step < 5; step++ {
		_, err := net.Forward([]float64{0.5, -0.5})
		require.NoError(t, err)
		net.Backward(1, nn.LossSquare)
		opt.Step(net)
		requireAccumulatorsReset(t, net)
	}
}

func TestSGD_L2Regularization(t *testing.T) {
	net := tinyNetwork(t, nn.RegL2)
	link := net.Link(0)
	link.Weight = 1
	link.AccErrorDer = 0
	link.NumAccumulatedDers = 1

	NewSGD(SGDConfig{LR: 0.1, RegLambda: 0.5}).Step(net)

	// candidate = 1, then w -= lr * lambda * w.
	assert.InDelta(t, 1-0.1*0.5*1, link.Weight, 1e-12)
	assert.False(t, link.IsDead)
}

// TestSGD_L1Pruning drives a small positive weight across zero with the
// regularization step alone: the weight snaps to exactly 0 and the link
// dies permanently.
func TestSGD_L1Pruning(t *testing.T) {
	net := tinyNetwork(t, nn.RegL1)
	link := net.Link(0)
	link.Weight = 0.01
	link.AccErrorDer = 0
	link.NumAccumulatedDers = 1

	// candidate = 0.01; reg step = lr * lambda * sign(0.01) = 0.1 > 0.01.
	NewSGD(SGDConfig{LR: 0.1, RegLambda: 1}).Step(net)

	assert.Equal(t, 0.0, link.Weight)
	assert.True(t, link.IsDead)
}

func TestSGD_DeadLinkStaysDead(t *testing.T) {
	net := buildNetwork(t, nn.Config{
		Shape:          []int{2, 2, 1},
		Regularization: nn.RegL1,
		InputIDs:       []string{"x", "y"},
	})
	dead := net.Link(0)
	dead.Weight = 0
	dead.IsDead = true

	opt := NewSGD(SGDConfig{LR: 0.3, RegLambda: 0.1})
	for step := 0; step < 10; step++ {
		_, err := net.Forward([]float64{1, -1})
		require.NoError(t, err)
		net.Backward(1, nn.LossSquare)
		opt.Step(net)

		assert.True(t, dead.IsDead, "isDead is monotonic")
		assert.Equal(t, 0.0, dead.Weight, "a dead link's weight never changes")
	}
}
