package shaped

import (
	"log"
	"runtime"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

const (
	DefaultGPAMaxIterations = 3
	DefaultGPAHaltDistance  = 1.0
)

// GPA estimates a population mean shape and per-sample rigid
// alignments from a registered dataset (Generalized Procrustes
// Analysis).
type GPA struct {
	// MaxIterations bounds the number of mean/realignment passes.
	// With zero iterations, Run returns its input unchanged.
	MaxIterations int

	// HaltDistance stops the iteration once the Procrustes distance
	// between the candidate mean and the current reference falls below
	// it, in the units of the mesh coordinates.
	HaltDistance float64

	// RotationCenter is the fixed center used for all rigid fits.
	RotationCenter model3d.Coord3D

	// Concurrency is the maximum number of Goroutines used for the
	// per-sample work. If 0, GOMAXPROCS is used.
	Concurrency int

	// Verbose, if true, enables printing per-iteration distances.
	Verbose bool
}

// NewGPA creates a GPA with the default iteration bound and halting
// distance, rotating about the origin.
func NewGPA() *GPA {
	return &GPA{
		MaxIterations: DefaultGPAMaxIterations,
		HaltDistance:  DefaultGPAHaltDistance,
	}
}

// Run produces a new collection whose reference is the estimated mean
// shape and whose items map that mean into each sample's space. The
// input collection is not modified.
//
// The returned reference is either one whose successor mean improved
// on it by less than HaltDistance, or the last mean produced before
// the iteration bound ran out. A failed rigid fit for any sample
// aborts the whole run.
func (g *GPA) Run(dc *DataCollection) (*DataCollection, error) {
	concurrency := g.Concurrency
	if concurrency == 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	if dc.Size() == 0 {
		return dc, nil
	}

	for iter := 0; iter < g.MaxIterations; iter++ {
		shapes := materializeShapes(dc, concurrency)
		mean := dc.Reference().WithPoints(pointwiseMean(shapes, concurrency))

		dist, err := ProcrustesDistance(mean, dc.Reference())
		if err != nil {
			return nil, errors.Wrap(err, "gpa")
		}
		if g.Verbose {
			log.Printf("gpa iteration %d: distance=%f", iter, dist)
		}
		if dist < g.HaltDistance {
			// The previous reference was already good enough; keep it
			// rather than committing to a negligible improvement.
			return dc, nil
		}

		items, err := g.realign(dc, mean, shapes, concurrency)
		if err != nil {
			return nil, errors.Wrap(err, "gpa")
		}
		dc = NewDataCollection(mean, items)
	}
	return dc, nil
}

// materializeShapes applies every item's transformation to the
// reference points, producing one point set per sample in item order.
func materializeShapes(dc *DataCollection, concurrency int) [][]model3d.Coord3D {
	reference := dc.Reference()
	shapes := make([][]model3d.Coord3D, dc.Size())
	essentials.ConcurrentMap(concurrency, dc.Size(), func(i int) {
		transform := dc.Item(i).Transform
		points := make([]model3d.Coord3D, reference.NumPoints())
		for j, p := range reference.Points {
			points[j] = transform.Apply(p)
		}
		shapes[i] = points
	})
	return shapes
}

// pointwiseMean averages the samples at each point index. The samples
// must all have the same cardinality and indexing.
func pointwiseMean(shapes [][]model3d.Coord3D, concurrency int) []model3d.Coord3D {
	scale := 1 / float64(len(shapes))
	mean := make([]model3d.Coord3D, len(shapes[0]))
	essentials.ConcurrentMap(concurrency, len(mean), func(j int) {
		var sum model3d.Coord3D
		for _, shape := range shapes {
			sum = sum.Add(shape[j])
		}
		mean[j] = sum.Scale(scale)
	})
	return mean
}

// realign fits a rigid transform from the candidate mean onto each
// sample and rebuilds the items as discrete maps from the mean's
// points to the rigidly aligned points, tagging provenance.
func (g *GPA) realign(dc *DataCollection, mean *Mesh, shapes [][]model3d.Coord3D,
	concurrency int) ([]DataItem, error) {
	min, max := mean.Min(), mean.Max()
	items := make([]DataItem, dc.Size())
	errs := make([]error, dc.Size())
	essentials.ConcurrentMap(concurrency, dc.Size(), func(i int) {
		transform, err := RigidAlign(mean.Points, shapes[i], g.RotationCenter)
		if err != nil {
			errs[i] = errors.Wrapf(err, "align %q", dc.Item(i).Info)
			return
		}
		aligned := make([]model3d.Coord3D, len(mean.Points))
		for j, p := range mean.Points {
			aligned[j] = transform.Apply(p)
		}
		items[i] = DataItem{
			Info:      "gpa -> " + dc.Item(i).Info,
			Transform: NewDiscreteTransform(mean.Points, aligned, min, max),
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}
