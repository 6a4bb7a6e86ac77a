package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playnet-ml/playnet/nn"
	"github.com/playnet-ml/playnet/optim"
)

// TestTrainingStepRoundTrip drives the public API through the fixed
// forward → backward → update cycle a renderer-facing driver would use.
func TestTrainingStepRoundTrip(t *testing.T) {
	net, err := nn.NewNetwork(nn.Config{
		Shape:            []int{2, 3, 1},
		HiddenActivation: nn.ActivationTanh,
		OutputActivation: nn.ActivationTanh,
		Regularization:   nn.RegL2,
		InputIDs:         []string{"x", "y"},
		Rand:             rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	opt := optim.NewSGD(optim.SGDConfig{LR: 0.03, RegLambda: 0.001})

	input := []float64{0.5, -0.25}
	before, err := net.Forward(input)
	require.NoError(t, err)

	for step := 0; step < 20; step++ {
		_, err := net.Forward(input)
		require.NoError(t, err)
		net.Backward(1, nn.LossSquare)
		opt.Step(net)
	}

	after, err := net.Forward(input)
	require.NoError(t, err)
	assert.Greater(t, after, before, "repeated steps pull the output toward the +1 target")

	// Inspection surface: nodes and links expose their state for drawing.
	seen := 0
	net.ForEachNode(true, func(_ nn.NodeRef, node *nn.Node) {
		seen++
		assert.NotEmpty(t, node.ID)
	})
	assert.Equal(t, 4, seen)
	for i := range net.Links {
		assert.False(t, net.Links[i].IsDead)
	}
}
