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
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: dataset_info <reference.vtk> <mesh-dir>")
		os.Exit(1)
	}
	referencePath, meshDir := args[0], args[1]

	reference, err := shaped.ReadMesh(referencePath)
	essentials.Must(err)
	dc, errs := shaped.FromMeshDirectory(reference, meshDir)
	for _, err := range errs {
		log.Printf("dataset error: %v", err)
	}
	if dc == nil {
		log.Fatal("no usable meshes in directory")
	}

	fmt.Printf("reference: %d points, %d triangles\n",
		reference.NumPoints(), len(reference.Triangles))
	fmt.Printf("bounds: %v - %v\n", reference.Min(), reference.Max())
	fmt.Printf("samples: %d\n", dc.Size())
	for i := 0; i < dc.Size(); i++ {
		fmt.Printf("  %s\n", dc.Item(i).Info)
	}
}
