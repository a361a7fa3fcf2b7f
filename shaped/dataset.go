package shaped

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// A DataItem pairs a provenance description with the transformation
// taking a collection's reference mesh into the item's own space.
// Items are immutable once created.
type DataItem struct {
	Info      string
	Transform Transform
}

// A DataCollection is an immutable registered dataset: one reference
// mesh plus, for each sample, a transformation from the reference into
// that sample's space.
//
// Every item transformation must be defined on all of the reference's
// points; this is the responsibility of whoever builds the collection
// and is not enforced here.
type DataCollection struct {
	reference *Mesh
	items     []DataItem
}

// NewDataCollection creates a collection. The item slice is copied.
func NewDataCollection(reference *Mesh, items []DataItem) *DataCollection {
	return &DataCollection{
		reference: reference,
		items:     append([]DataItem{}, items...),
	}
}

// Reference returns the collection's reference mesh.
func (d *DataCollection) Reference() *Mesh {
	return d.reference
}

// Size returns the number of items.
func (d *DataCollection) Size() int {
	return len(d.items)
}

// Item returns the i-th item.
func (d *DataCollection) Item(i int) DataItem {
	return d.items[i]
}

// Items returns a copy of the item slice.
func (d *DataCollection) Items() []DataItem {
	return append([]DataItem{}, d.items...)
}

// MapItems creates a collection with the same reference and every item
// replaced by f(item), preserving order.
func (d *DataCollection) MapItems(f func(item DataItem) DataItem) *DataCollection {
	items := make([]DataItem, len(d.items))
	for i, item := range d.items {
		items[i] = f(item)
	}
	return &DataCollection{reference: d.reference, items: items}
}

// MeshToTransform computes the transformation taking a reference mesh
// to a mesh in point correspondence with it.
//
// The mesh must have the same point count and correspondence order as
// the reference; otherwise a correspondence error is returned.
func MeshToTransform(reference, mesh *Mesh) (Transform, error) {
	if mesh.NumPoints() != reference.NumPoints() {
		return nil, errors.Wrapf(ErrCorrespondence, "point count mismatch: %d vs %d",
			mesh.NumPoints(), reference.NumPoints())
	}
	return NewDiscreteTransform(reference.Points, mesh.Points, reference.Min(), reference.Max()), nil
}

// FromMeshSequence builds a collection from meshes in vertex
// correspondence with a reference. Items are labeled by their index in
// the sequence.
//
// Meshes that cannot be put in correspondence are reported in the
// returned error list; the collection contains the rest, preserving
// order. If no mesh succeeds, the collection is nil. Partial failures
// are never silently dropped.
func FromMeshSequence(reference *Mesh, meshes []*Mesh) (*DataCollection, []error) {
	infos := make([]string, len(meshes))
	for i := range infos {
		infos[i] = fmt.Sprintf("mesh %d", i)
	}
	return fromMeshes(reference, infos, meshes)
}

func fromMeshes(reference *Mesh, infos []string, meshes []*Mesh) (*DataCollection, []error) {
	var items []DataItem
	var errs []error
	for i, mesh := range meshes {
		transform, err := MeshToTransform(reference, mesh)
		if err != nil {
			errs = append(errs, errors.Wrap(err, infos[i]))
			continue
		}
		items = append(items, DataItem{Info: infos[i], Transform: transform})
	}
	if len(items) == 0 {
		return nil, errs
	}
	return NewDataCollection(reference, items), errs
}

// FromMeshDirectory builds a collection from every supported mesh file
// in a directory. Files that fail to read and meshes that fail to
// correspond are both reported in the error list.
func FromMeshDirectory(reference *Mesh, dir string) (*DataCollection, []error) {
	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{errors.Wrap(err, "read mesh directory")}
	}

	var infos []string
	var meshes []*Mesh
	var errs []error
	for _, entry := range listing {
		if entry.IsDir() || !IsMeshFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		mesh, err := ReadMesh(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		infos = append(infos, path)
		meshes = append(meshes, mesh)
	}

	collection, seqErrs := fromMeshes(reference, infos, meshes)
	return collection, append(errs, seqErrs...)
}
