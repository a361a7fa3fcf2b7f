package shaped

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

// tetrahedron creates a small mesh with a stable point order.
func tetrahedron() *Mesh {
	return &Mesh{
		Points: []model3d.Coord3D{
			model3d.XYZ(0, 0, 0),
			model3d.XYZ(1, 0, 0),
			model3d.XYZ(0, 1, 0),
			model3d.XYZ(0, 0, 1),
		},
		Triangles: [][3]int{
			{0, 1, 2},
			{0, 1, 3},
			{0, 2, 3},
			{1, 2, 3},
		},
	}
}

func translated(m *Mesh, offset model3d.Coord3D) *Mesh {
	return m.MapCoords(offset.Add)
}

func mustCoordsClose(t *testing.T, actual, expected model3d.Coord3D, tol float64) {
	t.Helper()
	if actual.Dist(expected) > tol {
		t.Fatalf("expected %v but got %v", expected, actual)
	}
}

func mustPointsClose(t *testing.T, actual, expected []model3d.Coord3D, tol float64) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("expected %d points but got %d", len(expected), len(actual))
	}
	for i, p := range actual {
		if p.Dist(expected[i]) > tol {
			t.Fatalf("point %d: expected %v but got %v", i, expected[i], p)
		}
	}
}

func mustClose(t *testing.T, actual, expected float64) {
	t.Helper()
	if math.Abs(actual-expected) > 1e-8 {
		t.Fatalf("expected %f but got %f", expected, actual)
	}
}
