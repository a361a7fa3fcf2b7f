package shaped

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestDiscreteTransform(t *testing.T) {
	source := []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(0, 1, 0),
	}
	target := []model3d.Coord3D{
		model3d.XYZ(0, 0, 1),
		model3d.XYZ(1, 0, 2),
		model3d.XYZ(0, 1, 3),
	}
	transform := NewDiscreteTransform(source, target, model3d.Origin, model3d.XYZ(1, 1, 0))

	for i, s := range source {
		mustCoordsClose(t, transform.Apply(s), target[i], 0)
		if !transform.DefinedAt(s) {
			t.Fatalf("point %d should be defined", i)
		}
	}

	// Points off the source locations snap to the nearest one.
	near := model3d.XYZ(0.9, 0.05, 0)
	if transform.DefinedAt(near) {
		t.Fatal("point should not be defined")
	}
	mustCoordsClose(t, transform.Apply(near), target[1], 0)

	min, max := transform.Bounds()
	mustCoordsClose(t, min, model3d.Origin, 0)
	mustCoordsClose(t, max, model3d.XYZ(1, 1, 0), 0)
}

func TestJoinTransform(t *testing.T) {
	mesh := tetrahedron()
	first, err := MeshToTransform(mesh, translated(mesh, model3d.X(1)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := MeshToTransform(translated(mesh, model3d.X(1)), translated(mesh, model3d.XYZ(1, 2, 0)))
	if err != nil {
		t.Fatal(err)
	}
	joined := JoinTransform{first, second}
	for _, p := range mesh.Points {
		mustCoordsClose(t, joined.Apply(p), p.Add(model3d.XYZ(1, 2, 0)), 1e-8)
	}
	min, _ := joined.Bounds()
	mustCoordsClose(t, min, mesh.Min(), 0)
}
