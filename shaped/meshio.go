package shaped

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// IsMeshFile reports whether a path has a supported mesh extension.
// The suffix match is case-sensitive.
func IsMeshFile(path string) bool {
	return strings.HasSuffix(path, ".stl") || strings.HasSuffix(path, ".vtk")
}

// ReadMesh reads a mesh from a .stl or .vtk file.
func ReadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	defer f.Close()
	if strings.HasSuffix(path, ".stl") {
		tris, err := model3d.ReadSTL(f)
		if err != nil {
			return nil, errors.Wrapf(err, "read mesh %s", path)
		}
		return NewMeshTriangles(tris), nil
	} else if strings.HasSuffix(path, ".vtk") {
		mesh, err := ReadVTK(f)
		if err != nil {
			return nil, errors.Wrapf(err, "read mesh %s", path)
		}
		return mesh, nil
	}
	return nil, errors.Errorf("read mesh %s: unsupported extension", path)
}

// WriteMesh writes a mesh to a .stl or .vtk file.
func WriteMesh(path string, mesh *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "write mesh")
	}
	defer f.Close()
	if strings.HasSuffix(path, ".stl") {
		if err := model3d.WriteSTL(f, mesh.TriangleSlice()); err != nil {
			return errors.Wrapf(err, "write mesh %s", path)
		}
		return nil
	} else if strings.HasSuffix(path, ".vtk") {
		if err := WriteVTK(f, mesh); err != nil {
			return errors.Wrapf(err, "write mesh %s", path)
		}
		return nil
	}
	return errors.Errorf("write mesh %s: unsupported extension", path)
}

// ReadVTK reads a legacy ASCII VTK POLYDATA mesh with POINTS and
// POLYGONS sections. Polygons must be triangles.
//
// Unlike STL, the VTK format preserves the point order, which carries
// the vertex correspondence between dataset meshes.
func ReadVTK(r io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	next := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(tok)
	}
	nextFloat := func() (float64, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(tok, 64)
	}

	res := &Mesh{}
	for {
		tok, err := next()
		if err == io.ErrUnexpectedEOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "read vtk")
		}
		switch tok {
		case "POINTS":
			count, err := nextInt()
			if err != nil {
				return nil, errors.Wrap(err, "read vtk: point count")
			}
			if _, err := next(); err != nil {
				return nil, errors.Wrap(err, "read vtk: point type")
			}
			res.Points = make([]model3d.Coord3D, count)
			for i := range res.Points {
				var arr [3]float64
				for j := range arr {
					if arr[j], err = nextFloat(); err != nil {
						return nil, errors.Wrapf(err, "read vtk: point %d", i)
					}
				}
				res.Points[i] = model3d.NewCoord3DArray(arr)
			}
		case "POLYGONS":
			count, err := nextInt()
			if err != nil {
				return nil, errors.Wrap(err, "read vtk: polygon count")
			}
			if _, err := nextInt(); err != nil {
				return nil, errors.Wrap(err, "read vtk: polygon size")
			}
			res.Triangles = make([][3]int, count)
			for i := range res.Triangles {
				sides, err := nextInt()
				if err != nil {
					return nil, errors.Wrapf(err, "read vtk: polygon %d", i)
				}
				if sides != 3 {
					return nil, errors.Errorf("read vtk: polygon %d has %d sides", i, sides)
				}
				for j := 0; j < 3; j++ {
					idx, err := nextInt()
					if err != nil {
						return nil, errors.Wrapf(err, "read vtk: polygon %d", i)
					}
					if idx < 0 || idx >= len(res.Points) {
						return nil, errors.Errorf("read vtk: polygon %d: index %d out of range", i, idx)
					}
					res.Triangles[i][j] = idx
				}
			}
		}
	}
	if len(res.Points) == 0 {
		return nil, errors.New("read vtk: no POINTS section")
	}
	return res, nil
}

// WriteVTK writes a mesh as legacy ASCII VTK POLYDATA.
func WriteVTK(w io.Writer, mesh *Mesh) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "# vtk DataFile Version 3.0\nmesh\nASCII\nDATASET POLYDATA\n")
	fmt.Fprintf(buf, "POINTS %d double\n", len(mesh.Points))
	for _, p := range mesh.Points {
		// Full precision, so round trips preserve exact correspondence.
		fmt.Fprintf(buf, "%.17g %.17g %.17g\n", p.X, p.Y, p.Z)
	}
	fmt.Fprintf(buf, "POLYGONS %d %d\n", len(mesh.Triangles), len(mesh.Triangles)*4)
	for _, tri := range mesh.Triangles {
		fmt.Fprintf(buf, "3 %d %d %d\n", tri[0], tri[1], tri[2])
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrap(err, "write vtk")
	}
	return nil
}
