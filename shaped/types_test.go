package shaped

import (
	"errors"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestListAt(t *testing.T) {
	list := NewListSlice([]int{3, 1, 4})
	if v, err := list.At(1); err != nil || v != 1 {
		t.Fatalf("unexpected result: %d, %v", v, err)
	}
	for _, i := range []int{-1, 3} {
		if _, err := list.At(i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected out of range error but got %v", err)
		}
	}
}

func TestCoord3DVectorizer(t *testing.T) {
	vec := Coord3DVectorizer{}
	if vec.NumComponents() != 3 {
		t.Fatalf("expected 3 components but got %d", vec.NumComponents())
	}
	c := model3d.XYZ(1, -2, 0.5)
	comps := vec.ToComponents(c)
	if len(comps) != 3 || comps[0] != 1 || comps[1] != -2 || comps[2] != 0.5 {
		t.Fatalf("unexpected components: %v", comps)
	}
	mustCoordsClose(t, vec.FromComponents(comps), c, 0)
}
