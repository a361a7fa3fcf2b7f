package shaped

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/mat"
)

// A RigidTransform is a rotation about a center point followed by a
// translation. It maps x to R*(x-Center) + Center + Translation.
type RigidTransform struct {
	Rotation    *mat.Dense
	Center      model3d.Coord3D
	Translation model3d.Coord3D
}

func (r *RigidTransform) Apply(c model3d.Coord3D) model3d.Coord3D {
	v := c.Sub(r.Center)
	rot := model3d.XYZ(
		r.Rotation.At(0, 0)*v.X+r.Rotation.At(0, 1)*v.Y+r.Rotation.At(0, 2)*v.Z,
		r.Rotation.At(1, 0)*v.X+r.Rotation.At(1, 1)*v.Y+r.Rotation.At(1, 2)*v.Z,
		r.Rotation.At(2, 0)*v.X+r.Rotation.At(2, 1)*v.Y+r.Rotation.At(2, 2)*v.Z,
	)
	return rot.Add(r.Center).Add(r.Translation)
}

// RigidAlign computes the least-squares rigid transform mapping the
// source points onto the target points, with the rotation expressed
// about the given center.
//
// The fit is the standard SVD (Kabsch) solution and is deterministic
// for identical inputs. An error is returned for empty or mismatched
// point sets, or if the SVD fails to converge.
func RigidAlign(source, target []model3d.Coord3D, center model3d.Coord3D) (*RigidTransform, error) {
	if len(source) != len(target) {
		return nil, errors.Wrapf(ErrAlignmentFailed, "point count mismatch: %d vs %d",
			len(source), len(target))
	}
	if len(source) == 0 {
		return nil, errors.Wrap(ErrAlignmentFailed, "empty point sets")
	}

	var sourceMean, targetMean model3d.Coord3D
	for i, s := range source {
		sourceMean = sourceMean.Add(s)
		targetMean = targetMean.Add(target[i])
	}
	scale := 1 / float64(len(source))
	sourceMean = sourceMean.Scale(scale)
	targetMean = targetMean.Scale(scale)

	// Cross-covariance of the centered point sets.
	cov := mat.NewDense(3, 3, nil)
	for i, s := range source {
		q := s.Sub(sourceMean).Array()
		p := target[i].Sub(targetMean).Array()
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				cov.Set(row, col, cov.At(row, col)+p[row]*q[col])
			}
		}
	}

	var svd mat.SVD
	if !svd.Factorize(cov, mat.SVDFull) {
		return nil, errors.Wrap(ErrAlignmentFailed, "SVD did not converge")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	rotation := mat.NewDense(3, 3, nil)
	rotation.Mul(&u, v.T())
	if mat.Det(rotation) < 0 {
		// Flip the axis of least variance to keep a proper rotation
		// rather than a reflection.
		flip := mat.NewDiagDense(3, []float64{1, 1, -1})
		var uFlipped mat.Dense
		uFlipped.Mul(&u, flip)
		rotation.Mul(&uFlipped, v.T())
	}

	res := &RigidTransform{
		Rotation: rotation,
		Center:   center,
	}
	// Solve for the translation that maps the source centroid onto the
	// target centroid under the rotation about center.
	res.Translation = targetMean.Sub(res.Apply(sourceMean))
	return res, nil
}

// ProcrustesDistance measures how far apart two corresponding meshes
// are after the best rigid alignment of the first onto the second,
// as the root mean squared point distance.
func ProcrustesDistance(m1, m2 *Mesh) (float64, error) {
	transform, err := RigidAlign(m1.Points, m2.Points, model3d.Origin)
	if err != nil {
		return 0, errors.Wrap(err, "procrustes distance")
	}
	var total float64
	for i, p := range m1.Points {
		total += transform.Apply(p).SquaredDist(m2.Points[i])
	}
	return math.Sqrt(total / float64(len(m1.Points))), nil
}
