// Package dataset generates the synthetic 2-D point sets the playnet
// visualization trains on.
//
// Every generator produces n labeled examples in the [-6, 6] × [-6, 6]
// plane. Classification generators label points ±1; the regression
// generators produce labels in [-1, 1]. The noise parameter (0 to ~0.5)
// perturbs the coordinates used for labeling, so higher noise blurs the
// class boundary without moving the rendered points.
//
// Generators draw from an explicit rand.Source so runs are reproducible;
// gaussian and uniform sampling go through gonum's distuv distributions.
package dataset

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Example2D is one labeled training or test point.
type Example2D struct {
	X     float64
	Y     float64
	Label float64
}

// Split divides examples into train and test sets at trainRatio (0..1).
// The slices share backing storage with examples; shuffle first if the
// generator orders by class.
func Split(examples []Example2D, trainRatio float64) (train, test []Example2D) {
	cut := int(float64(len(examples)) * trainRatio)
	if cut < 0 {
		cut = 0
	}
	if cut > len(examples) {
		cut = len(examples)
	}
	return examples[:cut], examples[cut:]
}

// Shuffle permutes examples in place using src.
func Shuffle(examples []Example2D, src rand.Source) {
	rnd := rand.New(src)
	rnd.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

// uniform draws from [min, max) using src.
func uniform(min, max float64, src rand.Source) float64 {
	u := distuv.Uniform{Min: min, Max: max, Src: src}
	return u.Rand()
}

// normal draws from N(mu, sigma²) using src.
func normal(mu, sigma float64, src rand.Source) float64 {
	n := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	return n.Rand()
}

// scaleLinear maps v from the domain [d0, d1] onto the range [r0, r1],
// clamping to the range ends.
func scaleLinear(v, d0, d1, r0, r1 float64) float64 {
	t := (v - d0) / (d1 - d0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return r0 + t*(r1-r0)
}
