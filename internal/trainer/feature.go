package trainer

import (
	"fmt"
	"math"

	"github.com/playnet-ml/playnet/internal/dataset"
)

// Feature derives one network input from a 2-D example's coordinates.
// The feature panel of the visualization maps each enabled feature to one
// input node, in order.
type Feature struct {
	Name string
	Eval func(x, y float64) float64
}

// AllFeatures lists the available input features in panel order.
func AllFeatures() []Feature {
	return []Feature{
		{Name: "x", Eval: func(x, _ float64) float64 { return x }},
		{Name: "y", Eval: func(_, y float64) float64 { return y }},
		{Name: "x^2", Eval: func(x, _ float64) float64 { return x * x }},
		{Name: "y^2", Eval: func(_, y float64) float64 { return y * y }},
		{Name: "xy", Eval: func(x, y float64) float64 { return x * y }},
		{Name: "sin(x)", Eval: func(x, _ float64) float64 { return math.Sin(x) }},
		{Name: "sin(y)", Eval: func(_, y float64) float64 { return math.Sin(y) }},
	}
}

// SelectFeatures resolves names against AllFeatures, preserving order.
func SelectFeatures(names []string) ([]Feature, error) {
	all := AllFeatures()
	features := make([]Feature, 0, len(names))
	for _, name := range names {
		found := false
		for _, f := range all {
			if f.Name == name {
				features = append(features, f)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("trainer: unknown feature %q", name)
		}
	}
	return features, nil
}

// FeatureNames returns the ids for a feature set, usable as network input
// node ids.
func FeatureNames(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name
	}
	return names
}

// inputs builds the network input vector for one example.
func inputs(features []Feature, ex dataset.Example2D) []float64 {
	vec := make([]float64, len(features))
	for i, f := range features {
		vec[i] = f.Eval(ex.X, ex.Y)
	}
	return vec
}
