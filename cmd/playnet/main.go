// Package main provides the playnet CLI: a headless stand-in for the
// visualization that trains a network on a synthetic dataset and logs the
// train/test loss curve.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/playnet-ml/playnet/internal/dataset"
	"github.com/playnet-ml/playnet/internal/nn"
	"github.com/playnet-ml/playnet/internal/optim"
	"github.com/playnet-ml/playnet/internal/trainer"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("playnet %s\n", version)
		return
	}
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("playnet", flag.ExitOnError)
	var (
		datasetName = fs.String("dataset", "circle", "dataset: circle, xor, gauss, spiral, plane, reg-gauss")
		shapeSpec   = fs.String("shape", "4,2", "hidden layer sizes, comma separated")
		featureSpec = fs.String("features", "x,y", "input features: x, y, x^2, y^2, xy, sin(x), sin(y)")
		activation  = fs.String("activation", "tanh", "hidden activation: tanh, relu, sigmoid, linear")
		outputAct   = fs.String("output-activation", "tanh", "output activation")
		optimizer   = fs.String("optimizer", "sgd", "optimizer: sgd, adam")
		lr          = fs.Float64("lr", 0.03, "learning rate")
		reg         = fs.String("regularization", "none", "regularization: none, l1, l2")
		regRate     = fs.Float64("reg-rate", 0, "regularization rate")
		norm        = fs.String("normalization", "none", "normalization: none, batch, layer")
		batchSize   = fs.Int("batch-size", 10, "mini-batch size (1 = per-example updates)")
		epochs      = fs.Int("epochs", 200, "training epochs")
		samples     = fs.Int("samples", 500, "number of generated examples")
		noise       = fs.Float64("noise", 0, "dataset noise (0 to 0.5)")
		trainRatio  = fs.Float64("train-ratio", 0.5, "fraction of examples used for training")
		seed        = fs.Uint64("seed", 1, "random seed")
		reportEvery = fs.Int("report-every", 10, "epochs between loss reports")
		checkpoint  = fs.String("checkpoint", "", "write the trained network to this file as JSON")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	generate, ok := dataset.ByName(*datasetName)
	if !ok {
		return fmt.Errorf("unknown dataset %q", *datasetName)
	}
	hiddenAct, err := nn.ParseActivation(*activation)
	if err != nil {
		return err
	}
	outAct, err := nn.ParseActivation(*outputAct)
	if err != nil {
		return err
	}
	regularization, err := nn.ParseRegularization(*reg)
	if err != nil {
		return err
	}
	normalization, err := nn.ParseNormalization(*norm)
	if err != nil {
		return err
	}
	features, err := trainer.SelectFeatures(strings.Split(*featureSpec, ","))
	if err != nil {
		return err
	}
	hidden, err := parseShape(*shapeSpec)
	if err != nil {
		return err
	}

	src := rand.NewSource(*seed)
	examples := generate(*samples, *noise, src)
	dataset.Shuffle(examples, src)
	train, test := dataset.Split(examples, *trainRatio)

	shape := append([]int{len(features)}, hidden...)
	shape = append(shape, 1)
	net, err := nn.NewNetwork(nn.Config{
		Shape:            shape,
		HiddenActivation: hiddenAct,
		OutputActivation: outAct,
		Regularization:   regularization,
		Normalization:    normalization,
		InputIDs:         trainer.FeatureNames(features),
	})
	if err != nil {
		return err
	}

	var opt optim.Optimizer
	switch *optimizer {
	case "sgd":
		opt = optim.NewSGD(optim.SGDConfig{LR: *lr, RegLambda: *regRate})
	case "adam":
		opt = optim.NewAdam(optim.AdamConfig{LR: *lr, RegLambda: *regRate})
	default:
		return fmt.Errorf("unknown optimizer %q", *optimizer)
	}

	tr := trainer.New(net, opt, trainer.Config{
		BatchSize: *batchSize,
		Loss:      nn.LossSquare,
		Features:  features,
	})

	log.Printf("training %s on %q: shape %v, %d train / %d test examples",
		*optimizer, *datasetName, shape, len(train), len(test))
	for epoch := 1; epoch <= *epochs; epoch++ {
		if err := tr.OneStep(train); err != nil {
			return err
		}
		if epoch%*reportEvery == 0 || epoch == *epochs {
			trainLoss, err := tr.Loss(train)
			if err != nil {
				return err
			}
			testLoss, err := tr.Loss(test)
			if err != nil {
				return err
			}
			log.Printf("epoch %4d  train loss %.5f  test loss %.5f", epoch, trainLoss, testLoss)
		}
	}

	dead := 0
	for i := range net.Links {
		if net.Links[i].IsDead {
			dead++
		}
	}
	if dead > 0 {
		log.Printf("pruned %d of %d links", dead, len(net.Links))
	}
	if *checkpoint != "" {
		if err := net.SaveCheckpoint(*checkpoint); err != nil {
			return err
		}
		log.Printf("checkpoint written to %s", *checkpoint)
	}
	return nil
}

// parseShape parses "4,2" into []int{4, 2}. An empty spec means no hidden
// layers.
func parseShape(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || size < 1 {
			return nil, fmt.Errorf("invalid layer size %q", p)
		}
		shape = append(shape, size)
	}
	return shape, nil
}
