package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestClassificationGenerators(t *testing.T) {
	generators := map[string]func(n int, noise float64, src rand.Source) []Example2D{
		"circle": Circle,
		"xor":    XOR,
		"gauss":  TwoGaussians,
		"spiral": Spiral,
	}
	for name, generate := range generators {
		t.Run(name, func(t *testing.T) {
			examples := generate(101, 0.1, rand.NewSource(1))
			require.Len(t, examples, 101)

			positives := 0
			for _, ex := range examples {
				require.Contains(t, []float64{-1, 1}, ex.Label)
				if ex.Label == 1 {
					positives++
				}
			}
			assert.Greater(t, positives, 0, "both classes present")
			assert.Less(t, positives, 101, "both classes present")
		})
	}
}

func TestRegressionGenerators(t *testing.T) {
	generators := map[string]func(n int, noise float64, src rand.Source) []Example2D{
		"plane":     Plane,
		"reg-gauss": RegressGaussians,
	}
	for name, generate := range generators {
		t.Run(name, func(t *testing.T) {
			examples := generate(200, 0, rand.NewSource(1))
			require.Len(t, examples, 200)
			for _, ex := range examples {
				assert.GreaterOrEqual(t, ex.Label, -1.0)
				assert.LessOrEqual(t, ex.Label, 1.0)
			}
		})
	}
}

func TestGenerators_DeterministicPerSeed(t *testing.T) {
	a := Spiral(50, 0.2, rand.NewSource(9))
	b := Spiral(50, 0.2, rand.NewSource(9))
	assert.Equal(t, a, b)

	c := Spiral(50, 0.2, rand.NewSource(10))
	assert.NotEqual(t, a, c)
}

func TestTwoGaussians_ClusterCenters(t *testing.T) {
	examples := TwoGaussians(2000, 0, rand.NewSource(4))

	var posX, posY, negX, negY float64
	var pos, neg int
	for _, ex := range examples {
		if ex.Label == 1 {
			posX += ex.X
			posY += ex.Y
			pos++
		} else {
			negX += ex.X
			negY += ex.Y
			neg++
		}
	}
	require.Equal(t, 1000, pos)
	require.Equal(t, 1000, neg)

	// Sample means close to the (±2, ±2) centers; sigma is sqrt(0.5) at
	// zero noise, so the mean of 1000 draws is within ~0.1.
	assert.InDelta(t, 2, posX/float64(pos), 0.15)
	assert.InDelta(t, 2, posY/float64(pos), 0.15)
	assert.InDelta(t, -2, negX/float64(neg), 0.15)
	assert.InDelta(t, -2, negY/float64(neg), 0.15)
}

func TestCircle_SeparatesAtZeroNoise(t *testing.T) {
	for _, ex := range Circle(400, 0, rand.NewSource(2)) {
		dist := math.Hypot(ex.X, ex.Y)
		if ex.Label == 1 {
			assert.Less(t, dist, 2.5)
		} else {
			assert.GreaterOrEqual(t, dist, 3.5-1e-9)
		}
	}
}

func TestSplit(t *testing.T) {
	examples := XOR(10, 0, rand.NewSource(3))
	train, test := Split(examples, 0.5)
	assert.Len(t, train, 5)
	assert.Len(t, test, 5)

	train, test = Split(examples, 1)
	assert.Len(t, train, 10)
	assert.Empty(t, test)
}

func TestShuffle_Deterministic(t *testing.T) {
	a := XOR(20, 0, rand.NewSource(5))
	b := append([]Example2D(nil), a...)

	Shuffle(a, rand.NewSource(6))
	Shuffle(b, rand.NewSource(6))
	assert.Equal(t, a, b)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"circle", "xor", "gauss", "spiral", "plane", "reg-gauss"} {
		generate, ok := ByName(name)
		require.True(t, ok, name)
		assert.Len(t, generate(10, 0, rand.NewSource(1)), 10)
	}
	_, ok := ByName("moons")
	assert.False(t, ok)
}
