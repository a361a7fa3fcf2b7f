package shaped

import (
	"github.com/unixpickle/model3d/model3d"
)

// A Mesh is a triangle mesh with an explicit, stable point ordering.
//
// Unlike model3d.Mesh, which is an unordered set of triangles, the
// point order here is significant: meshes in a dataset correspond
// point-by-point with a reference mesh, and all of the statistics in
// this package are computed per point index.
type Mesh struct {
	Points    []model3d.Coord3D
	Triangles [][3]int
}

// NewMeshTriangles indexes the vertices of a triangle list, welding
// coordinates that are exactly equal. The point order is the order of
// first appearance in the list.
//
// Note that a model3d.Mesh iterates triangles in arbitrary order, so
// meshes that must stay in point correspondence should be built from
// the ordered triangles of a file rather than converted through one.
func NewMeshTriangles(tris []*model3d.Triangle) *Mesh {
	res := &Mesh{}
	indices := map[model3d.Coord3D]int{}
	for _, t := range tris {
		var tri [3]int
		for i, c := range t {
			idx, ok := indices[c]
			if !ok {
				idx = len(res.Points)
				indices[c] = idx
				res.Points = append(res.Points, c)
			}
			tri[i] = idx
		}
		res.Triangles = append(res.Triangles, tri)
	}
	return res
}

// TriangleSlice creates the mesh's triangles in order.
func (m *Mesh) TriangleSlice() []*model3d.Triangle {
	tris := make([]*model3d.Triangle, len(m.Triangles))
	for i, tri := range m.Triangles {
		tris[i] = &model3d.Triangle{
			m.Points[tri[0]],
			m.Points[tri[1]],
			m.Points[tri[2]],
		}
	}
	return tris
}

// Model3D converts the mesh into a model3d triangle mesh.
func (m *Mesh) Model3D() *model3d.Mesh {
	return model3d.NewMeshTriangles(m.TriangleSlice())
}

// NumPoints returns the number of points in the mesh.
func (m *Mesh) NumPoints() int {
	return len(m.Points)
}

// Min computes the per-axis minimum of all points.
func (m *Mesh) Min() model3d.Coord3D {
	min := m.Points[0]
	for _, p := range m.Points[1:] {
		min = min.Min(p)
	}
	return min
}

// Max computes the per-axis maximum of all points.
func (m *Mesh) Max() model3d.Coord3D {
	max := m.Points[0]
	for _, p := range m.Points[1:] {
		max = max.Max(p)
	}
	return max
}

// WithPoints creates a mesh with new point positions and the same
// connectivity. The triangle slice is shared, not copied, since meshes
// are never mutated in place.
func (m *Mesh) WithPoints(points []model3d.Coord3D) *Mesh {
	if len(points) != len(m.Points) {
		panic("point count must match the original mesh")
	}
	return &Mesh{Points: points, Triangles: m.Triangles}
}

// MapCoords creates a mesh with f applied to every point.
func (m *Mesh) MapCoords(f func(model3d.Coord3D) model3d.Coord3D) *Mesh {
	points := make([]model3d.Coord3D, len(m.Points))
	for i, p := range m.Points {
		points[i] = f(p)
	}
	return m.WithPoints(points)
}

// Transform applies t to every point of the mesh.
func (m *Mesh) Transform(t Transform) *Mesh {
	return m.MapCoords(t.Apply)
}
