package shaped

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestGPAZeroIterations(t *testing.T) {
	mesh := tetrahedron()
	dc, errs := FromMeshSequence(mesh, []*Mesh{
		translated(mesh, model3d.X(1)),
		translated(mesh, model3d.Y(1)),
	})
	if len(errs) > 0 {
		t.Fatal(errs)
	}

	gpa := &GPA{MaxIterations: 0, HaltDistance: 0}
	res, err := gpa.Run(dc)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reference() != dc.Reference() {
		t.Fatal("reference should be unchanged")
	}
	for i := 0; i < dc.Size(); i++ {
		if res.Item(i) != dc.Item(i) {
			t.Fatalf("item %d should be unchanged", i)
		}
	}
}

func TestGPATranslatedTetrahedra(t *testing.T) {
	mesh := tetrahedron()
	offsets := []model3d.Coord3D{
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(0, 2, 0),
		model3d.XYZ(-1, -1, 3),
	}
	meshes := make([]*Mesh, len(offsets))
	for i, offset := range offsets {
		meshes[i] = translated(mesh, offset)
	}
	dc, errs := FromMeshSequence(mesh, meshes)
	if len(errs) > 0 {
		t.Fatal(errs)
	}

	gpa := &GPA{MaxIterations: 1, HaltDistance: 0}
	res, err := gpa.Run(dc)
	if err != nil {
		t.Fatal(err)
	}

	// The new reference is the pointwise mean of the translated copies.
	meanOffset := model3d.Origin
	for _, offset := range offsets {
		meanOffset = meanOffset.Add(offset)
	}
	meanOffset = meanOffset.Scale(1.0 / float64(len(offsets)))
	mustPointsClose(t, res.Reference().Points, translated(mesh, meanOffset).Points, 1e-8)

	// Each new item maps the mean back onto its original sample.
	for i := 0; i < res.Size(); i++ {
		item := res.Item(i)
		if !strings.HasPrefix(item.Info, "gpa -> ") {
			t.Fatalf("item %d should carry an audit marker: %q", i, item.Info)
		}
		moved := res.Reference().Transform(item.Transform)
		mustPointsClose(t, moved.Points, meshes[i].Points, 1e-8)
	}
}

func TestGPAHaltKeepsOldReference(t *testing.T) {
	mesh := tetrahedron()
	dc, errs := FromMeshSequence(mesh, []*Mesh{
		translated(mesh, model3d.X(1)),
		translated(mesh, model3d.X(-1)),
	})
	if len(errs) > 0 {
		t.Fatal(errs)
	}

	// Translated copies are rigidly equivalent to the reference, so
	// the very first halting test fires and the input comes back with
	// its original reference, not the candidate mean.
	gpa := &GPA{MaxIterations: 3, HaltDistance: 1e-8}
	res, err := gpa.Run(dc)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reference() != dc.Reference() {
		t.Fatal("reference should be unchanged")
	}
}

func TestGPAConvergence(t *testing.T) {
	mesh := tetrahedron()
	rng := rand.New(rand.NewSource(7))
	perturb := func(scale float64) func(model3d.Coord3D) model3d.Coord3D {
		return func(c model3d.Coord3D) model3d.Coord3D {
			return c.Add(model3d.XYZ(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Scale(scale))
		}
	}

	var meshes []*Mesh
	for i := 0; i < 5; i++ {
		meshes = append(meshes, translated(mesh, model3d.X(float64(i))).MapCoords(perturb(0.01)))
	}
	dc, errs := FromMeshSequence(mesh, meshes)
	if len(errs) > 0 {
		t.Fatal(errs)
	}

	// Track the candidate-mean distance across single-step runs: it
	// must never increase, and must drop below the halting distance
	// within the default iteration budget.
	var distances []float64
	cur := dc
	for i := 0; i < DefaultGPAMaxIterations; i++ {
		shapes := materializeShapes(cur, 1)
		mean := cur.Reference().WithPoints(pointwiseMean(shapes, 1))
		dist, err := ProcrustesDistance(mean, cur.Reference())
		if err != nil {
			t.Fatal(err)
		}
		distances = append(distances, dist)

		step := &GPA{MaxIterations: 1, HaltDistance: 0}
		next, err := step.Run(cur)
		if err != nil {
			t.Fatal(err)
		}
		cur = next
	}
	for i := 1; i < len(distances); i++ {
		if distances[i] > distances[i-1]+1e-9 {
			t.Fatalf("distance increased from %f to %f", distances[i-1], distances[i])
		}
	}
	if last := distances[len(distances)-1]; last >= 0.1 {
		t.Fatalf("expected convergence below 0.1 but got %f", last)
	}
}
