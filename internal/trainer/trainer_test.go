package trainer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xrand "golang.org/x/exp/rand"

	"github.com/playnet-ml/playnet/internal/dataset"
	"github.com/playnet-ml/playnet/internal/nn"
	"github.com/playnet-ml/playnet/internal/optim"
)

func TestSelectFeatures(t *testing.T) {
	features, err := SelectFeatures([]string{"x", "sin(y)", "xy"})
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, []string{"x", "sin(y)", "xy"}, FeatureNames(features))
	assert.InDelta(t, 6.0, features[2].Eval(2, 3), 1e-12)

	_, err = SelectFeatures([]string{"x", "cos(x)"})
	assert.Error(t, err)
}

func newTrainer(t *testing.T, batchSize int, opt optim.Optimizer) *Trainer {
	t.Helper()
	features, err := SelectFeatures([]string{"x", "y"})
	require.NoError(t, err)

	net, err := nn.NewNetwork(nn.Config{
		Shape:    []int{2, 4, 1},
		InputIDs: FeatureNames(features),
		Rand:     rand.New(rand.NewSource(11)),
	})
	require.NoError(t, err)

	return New(net, opt, Config{
		BatchSize: batchSize,
		Loss:      nn.LossSquare,
		Features:  features,
	})
}

// TestTrainer_LossDecreases trains on the cleanly separable two-gaussians
// dataset and expects the averaged loss to drop substantially.
func TestTrainer_LossDecreases(t *testing.T) {
	cases := []struct {
		name      string
		batchSize int
		opt       optim.Optimizer
	}{
		{"sgd per-example", 1, optim.NewSGD(optim.SGDConfig{LR: 0.03})},
		{"sgd mini-batch", 10, optim.NewSGD(optim.SGDConfig{LR: 0.03})},
		{"adam mini-batch", 10, optim.NewAdam(optim.AdamConfig{LR: 0.01})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			examples := dataset.TwoGaussians(200, 0, xrand.NewSource(1))
			dataset.Shuffle(examples, xrand.NewSource(2))
			train, test := dataset.Split(examples, 0.5)

			tr := newTrainer(t, tc.batchSize, tc.opt)
			before, err := tr.Loss(train)
			require.NoError(t, err)

			for epoch := 0; epoch < 50; epoch++ {
				require.NoError(t, tr.OneStep(train))
			}
			after, err := tr.Loss(train)
			require.NoError(t, err)
			testLoss, err := tr.Loss(test)
			require.NoError(t, err)

			assert.Less(t, after, before/2, "training loss should at least halve")
			assert.Less(t, testLoss, before, "test loss should improve too")
			assert.Equal(t, 50, tr.Steps())
		})
	}
}

func TestTrainer_FeatureCountMismatch(t *testing.T) {
	features, err := SelectFeatures([]string{"x", "y", "xy"})
	require.NoError(t, err)

	// Network expects two inputs, the feature set supplies three.
	net, err := nn.NewNetwork(nn.Config{
		Shape:    []int{2, 1},
		InputIDs: []string{"x", "y"},
		Rand:     rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	tr := New(net, optim.NewSGD(optim.SGDConfig{}), Config{Features: features})
	err = tr.OneStep(dataset.XOR(10, 0, xrand.NewSource(1)))
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)
}

func TestTrainer_DefaultFeatures(t *testing.T) {
	net, err := nn.NewNetwork(nn.Config{
		Shape:    []int{2, 1},
		InputIDs: []string{"x", "y"},
		Rand:     rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	tr := New(net, optim.NewSGD(optim.SGDConfig{}), Config{})
	require.NoError(t, tr.OneStep(dataset.XOR(4, 0, xrand.NewSource(1))))
	assert.Equal(t, 1, tr.Steps())
}
