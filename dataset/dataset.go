// Copyright 2025 The playnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset is the public surface of the playnet synthetic dataset
// generators.
package dataset

import (
	"golang.org/x/exp/rand"

	"github.com/playnet-ml/playnet/internal/dataset"
)

// Example2D is one labeled 2-D training or test point.
type Example2D = dataset.Example2D

// Generator produces n labeled examples with the given coordinate noise.
type Generator = func(n int, noise float64, src rand.Source) []Example2D

// Classification generators.
var (
	Circle       Generator = dataset.Circle
	XOR          Generator = dataset.XOR
	TwoGaussians Generator = dataset.TwoGaussians
	Spiral       Generator = dataset.Spiral
)

// Regression generators.
var (
	Plane            Generator = dataset.Plane
	RegressGaussians Generator = dataset.RegressGaussians
)

// ByName returns the generator registered under name.
func ByName(name string) (Generator, bool) {
	return dataset.ByName(name)
}

// Split divides examples into train and test sets at trainRatio.
func Split(examples []Example2D, trainRatio float64) (train, test []Example2D) {
	return dataset.Split(examples, trainRatio)
}

// Shuffle permutes examples in place using src.
func Shuffle(examples []Example2D, src rand.Source) {
	dataset.Shuffle(examples, src)
}
