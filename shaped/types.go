package shaped

import (
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// A List is a general array type which can have an arbitrary getter.
// This can be useful for avoiding contiguous slice allocations.
type List[T any] struct {
	Len int
	Get func(int) T
}

func NewListSlice[T any](s []T) List[T] {
	return List[T]{
		Len: len(s),
		Get: func(i int) T {
			return s[i]
		},
	}
}

// At is a bounds-checked Get.
func (l List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.Len {
		var zero T
		return zero, ErrOutOfRange
	}
	return l.Get(i), nil
}

// A Vectorizer flattens values of some geometric type into fixed-size
// numeric component vectors and back. It is passed explicitly to
// constructors that need to build matrices out of geometric values.
type Vectorizer[F constraints.Float, T any] interface {
	NumComponents() int
	ToComponents(T) []F
	FromComponents([]F) T
}

// Coord3DVectorizer is the Vectorizer for 3-D coordinates.
type Coord3DVectorizer struct{}

func (Coord3DVectorizer) NumComponents() int {
	return 3
}

func (Coord3DVectorizer) ToComponents(c model3d.Coord3D) []float64 {
	arr := c.Array()
	return arr[:]
}

func (Coord3DVectorizer) FromComponents(comps []float64) model3d.Coord3D {
	return model3d.XYZ(comps[0], comps[1], comps[2])
}
