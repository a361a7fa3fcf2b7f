package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/shape-d/shaped"
)

func main() {
	var iters int
	var haltDistance float64
	var concurrency int
	var verbose bool
	flag.IntVar(&iters, "iters", shaped.DefaultGPAMaxIterations, "maximum GPA iterations")
	flag.Float64Var(&haltDistance, "halt-distance", shaped.DefaultGPAHaltDistance,
		"Procrustes distance below which GPA stops")
	flag.IntVar(&concurrency, "concurrency", 0, "number of Goroutines for per-sample work")
	flag.BoolVar(&verbose, "verbose", false, "print per-iteration distances")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: gpa_align [flags] <reference.vtk> <mesh-dir> <output-mean.vtk>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	referencePath, meshDir, outputPath := args[0], args[1], args[2]

	log.Println("Reading dataset...")
	reference, err := shaped.ReadMesh(referencePath)
	essentials.Must(err)
	dc, errs := shaped.FromMeshDirectory(reference, meshDir)
	for _, err := range errs {
		log.Printf("dataset error: %v", err)
	}
	if dc == nil {
		log.Fatal("no usable meshes in directory")
	}
	log.Printf("Loaded %d samples.", dc.Size())

	log.Println("Running Procrustes analysis...")
	gpa := shaped.NewGPA()
	gpa.MaxIterations = iters
	gpa.HaltDistance = haltDistance
	gpa.Concurrency = concurrency
	gpa.Verbose = verbose
	res, err := gpa.Run(dc)
	essentials.Must(err)

	log.Println("Writing mean mesh...")
	essentials.Must(shaped.WriteMesh(outputPath, res.Reference()))
}
