package shaped

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// A Transform maps points to points within a bounding region.
//
// Applying a Transform outside its bounds is not checked and may
// produce meaningless results, mirroring how transformations are only
// defined on their domain.
type Transform interface {
	Apply(c model3d.Coord3D) model3d.Coord3D

	// Bounds is the bounding box of the domain of definition.
	Bounds() (min, max model3d.Coord3D)
}

// JoinTransform composes transforms, applying the first transform in
// the slice first. The composed domain is the first transform's.
type JoinTransform []Transform

func (j JoinTransform) Apply(c model3d.Coord3D) model3d.Coord3D {
	for _, t := range j {
		c = t.Apply(c)
	}
	return c
}

func (j JoinTransform) Bounds() (min, max model3d.Coord3D) {
	return j[0].Bounds()
}

// A DiscreteTransform is a point-to-point mapping defined at a finite
// set of source locations, such as the vertices of a mesh.
//
// Queries at exact source coordinates are constant time; other points
// inside the bounds fall back to the nearest source location.
type DiscreteTransform struct {
	source  []model3d.Coord3D
	target  []model3d.Coord3D
	indices map[model3d.Coord3D]int

	min model3d.Coord3D
	max model3d.Coord3D
}

// NewDiscreteTransform creates a transform mapping source[i] to
// target[i], with the given bounding domain.
//
// The two point slices must have equal, non-zero length.
func NewDiscreteTransform(source, target []model3d.Coord3D, min, max model3d.Coord3D) *DiscreteTransform {
	if len(source) != len(target) || len(source) == 0 {
		panic("source and target must be non-empty and of equal length")
	}
	indices := make(map[model3d.Coord3D]int, len(source))
	for i, c := range source {
		indices[c] = i
	}
	return &DiscreteTransform{
		source:  source,
		target:  target,
		indices: indices,
		min:     min,
		max:     max,
	}
}

// DefinedAt reports whether c is exactly one of the source locations.
func (d *DiscreteTransform) DefinedAt(c model3d.Coord3D) bool {
	_, ok := d.indices[c]
	return ok
}

func (d *DiscreteTransform) Apply(c model3d.Coord3D) model3d.Coord3D {
	if idx, ok := d.indices[c]; ok {
		return d.target[idx]
	}
	best := 0
	bestDist := math.Inf(1)
	for i, s := range d.source {
		if dist := s.SquaredDist(c); dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return d.target[best]
}

func (d *DiscreteTransform) Bounds() (min, max model3d.Coord3D) {
	return d.min, d.max
}
