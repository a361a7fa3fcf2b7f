package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/shape-d/shaped"
)

type foldInfo struct {
	Training []string `json:"training"`
	Testing  []string `json:"testing"`
}

func main() {
	var numFolds int
	var seed int64
	var leaveOneOut bool
	flag.IntVar(&numFolds, "folds", 5, "number of cross-validation folds")
	flag.Int64Var(&seed, "seed", 0, "seed for the fold shuffle")
	flag.BoolVar(&leaveOneOut, "leave-one-out", false, "create one fold per sample")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: make_folds [flags] <reference.vtk> <mesh-dir> <output.json>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	referencePath, meshDir, outputPath := args[0], args[1], args[2]

	reference, err := shaped.ReadMesh(referencePath)
	essentials.Must(err)
	dc, errs := shaped.FromMeshDirectory(reference, meshDir)
	for _, err := range errs {
		log.Printf("dataset error: %v", err)
	}
	if dc == nil {
		log.Fatal("no usable meshes in directory")
	}

	rng := rand.New(rand.NewSource(seed))
	var folds []shaped.Fold
	if leaveOneOut {
		folds, err = dc.CreateLeaveOneOutFolds(rng)
	} else {
		folds, err = dc.CreateFolds(rng, numFolds)
	}
	essentials.Must(err)

	infos := make([]foldInfo, len(folds))
	for i, fold := range folds {
		for _, item := range fold.Training.Items() {
			infos[i].Training = append(infos[i].Training, item.Info)
		}
		for _, item := range fold.Testing.Items() {
			infos[i].Testing = append(infos[i].Testing, item.Info)
		}
	}

	f, err := os.Create(outputPath)
	essentials.Must(err)
	defer f.Close()
	essentials.Must(json.NewEncoder(f).Encode(infos))
}
