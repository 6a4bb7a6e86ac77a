package dataset

import (
	"math"

	"golang.org/x/exp/rand"
)

// TwoGaussians generates two gaussian clusters: positive examples around
// (2, 2) and negative around (-2, -2). Noise widens the cluster variance
// from 0.5 (noise 0) up to 4 (noise 0.5).
func TwoGaussians(n int, noise float64, src rand.Source) []Example2D {
	variance := scaleLinear(noise, 0, 0.5, 0.5, 4)
	sigma := math.Sqrt(variance)

	examples := make([]Example2D, 0, n)
	cluster := func(count int, cx, cy, label float64) {
		for i := 0; i < count; i++ {
			examples = append(examples, Example2D{
				X:     normal(cx, sigma, src),
				Y:     normal(cy, sigma, src),
				Label: label,
			})
		}
	}
	cluster(n/2, 2, 2, 1)
	cluster(n-n/2, -2, -2, -1)
	return examples
}

// Circle generates a positive disc of radius 2.5 inside a negative ring
// between radius 3.5 and 5. Labels come from the noisy coordinates, so
// points near the gap flip class as noise grows.
func Circle(n int, noise float64, src rand.Source) []Example2D {
	const radius = 5.0
	label := func(x, y float64) float64 {
		if math.Hypot(x, y) < radius*0.5 {
			return 1
		}
		return -1
	}

	examples := make([]Example2D, 0, n)
	ring := func(count int, rMin, rMax float64) {
		for i := 0; i < count; i++ {
			r := uniform(rMin, rMax, src)
			angle := uniform(0, 2*math.Pi, src)
			x := r * math.Sin(angle)
			y := r * math.Cos(angle)
			noiseX := uniform(-radius, radius, src) * noise
			noiseY := uniform(-radius, radius, src) * noise
			examples = append(examples, Example2D{X: x, Y: y, Label: label(x+noiseX, y+noiseY)})
		}
	}
	ring(n/2, 0, radius*0.5)
	ring(n-n/2, radius*0.7, radius)
	return examples
}

// XOR generates uniformly scattered points labeled by the sign of x*y,
// with a 0.3 padding pushing points away from the axes.
func XOR(n int, noise float64, src rand.Source) []Example2D {
	const padding = 0.3
	pad := func(v float64) float64 {
		if v > 0 {
			return v + padding
		}
		return v - padding
	}

	examples := make([]Example2D, 0, n)
	for i := 0; i < n; i++ {
		x := pad(uniform(-5, 5, src))
		y := pad(uniform(-5, 5, src))
		noiseX := uniform(-5, 5, src) * noise
		noiseY := uniform(-5, 5, src) * noise
		label := -1.0
		if (x+noiseX)*(y+noiseY) >= 0 {
			label = 1.0
		}
		examples = append(examples, Example2D{X: x, Y: y, Label: label})
	}
	return examples
}

// Spiral generates two interleaved spiral arms, positive and negative.
func Spiral(n int, noise float64, src rand.Source) []Example2D {
	examples := make([]Example2D, 0, n)
	arm := func(count int, deltaT, label float64) {
		for i := 0; i < count; i++ {
			r := float64(i) / float64(count) * 5
			t := 1.75*float64(i)/float64(count)*2*math.Pi + deltaT
			x := r*math.Sin(t) + uniform(-1, 1, src)*noise
			y := r*math.Cos(t) + uniform(-1, 1, src)*noise
			examples = append(examples, Example2D{X: x, Y: y, Label: label})
		}
	}
	arm(n/2, 0, 1)
	arm(n-n/2, math.Pi, -1)
	return examples
}

// Plane generates the regression dataset labeled by the (clamped, scaled)
// sum x + y, ranging linearly from -1 at the bottom-left corner to +1 at
// the top-right.
func Plane(n int, noise float64, src rand.Source) []Example2D {
	examples := make([]Example2D, 0, n)
	for i := 0; i < n; i++ {
		x := uniform(-6, 6, src)
		y := uniform(-6, 6, src)
		noiseX := uniform(-6, 6, src) * noise
		noiseY := uniform(-6, 6, src) * noise
		label := scaleLinear(x+noiseX+y+noiseY, -12, 12, -1, 1)
		examples = append(examples, Example2D{X: x, Y: y, Label: label})
	}
	return examples
}

// regressGaussianCenters lists the (x, y, sign) bumps of RegressGaussians.
var regressGaussianCenters = [][3]float64{
	{-4, 2.5, 1},
	{0, 2.5, -1},
	{4, 2.5, 1},
	{-4, -2.5, -1},
	{0, -2.5, 1},
	{4, -2.5, -1},
}

// RegressGaussians generates the regression dataset labeled by the nearest
// of six signed gaussian bumps; the label decays linearly from ±1 at a
// bump's center to 0 at distance 2.
func RegressGaussians(n int, noise float64, src rand.Source) []Example2D {
	labelAt := func(x, y float64) float64 {
		label := 0.0
		best := math.MaxFloat64
		for _, c := range regressGaussianCenters {
			d := math.Hypot(x-c[0], y-c[1])
			if d < best {
				best = d
				label = c[2] * scaleLinear(d, 0, 2, 1, 0)
			}
		}
		return label
	}

	examples := make([]Example2D, 0, n)
	for i := 0; i < n; i++ {
		x := uniform(-6, 6, src)
		y := uniform(-6, 6, src)
		noiseX := uniform(-6, 6, src) * noise
		noiseY := uniform(-6, 6, src) * noise
		examples = append(examples, Example2D{X: x, Y: y, Label: labelAt(x+noiseX, y+noiseY)})
	}
	return examples
}

// ByName returns the generator registered under name: "circle", "xor",
// "gauss", "spiral", "plane" or "reg-gauss".
func ByName(name string) (func(n int, noise float64, src rand.Source) []Example2D, bool) {
	switch name {
	case "circle":
		return Circle, true
	case "xor":
		return XOR, true
	case "gauss":
		return TwoGaussians, true
	case "spiral":
		return Spiral, true
	case "plane":
		return Plane, true
	case "reg-gauss":
		return RegressGaussians, true
	default:
		return nil, false
	}
}
