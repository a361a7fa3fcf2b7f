package shaped

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A DeformationField assigns a displacement vector to every point of
// some domain.
type DeformationField func(c model3d.Coord3D) model3d.Coord3D

// An Eigenpair is one component of a truncated Karhunen-Loeve
// expansion: a non-negative eigenvalue paired with a vector-valued
// basis function.
type Eigenpair struct {
	Eigenvalue float64
	Function   DeformationField
}

// A LowRankModel is a low-rank Gaussian process deformation model: a
// mean deformation field plus a finite, ordered sequence of eigenpairs
// over a box-shaped domain.
//
// The basis order is significant and must follow the descending
// eigenvalue convention of whatever produced the expansion; the model
// does not re-sort. Evaluating the model outside [Min, Max] is
// undefined.
type LowRankModel struct {
	Min  model3d.Coord3D
	Max  model3d.Coord3D
	Mean DeformationField

	Basis []Eigenpair
}

// Rank returns the number of basis functions, which is also the length
// of every coefficient vector the model accepts.
func (l *LowRankModel) Rank() int {
	return len(l.Basis)
}

func (l *LowRankModel) checkCoeffs(coeffs []float64) error {
	if len(coeffs) != l.Rank() {
		return errors.Wrapf(ErrDimensionMismatch, "got %d coefficients for rank %d",
			len(coeffs), l.Rank())
	}
	return nil
}

// Instance evaluates the deformation field selected by a coefficient
// vector: mean(x) + sum_i coeffs[i] * sqrt(eigenvalue_i) * basis_i(x).
func (l *LowRankModel) Instance(coeffs []float64) (DeformationField, error) {
	if err := l.checkCoeffs(coeffs); err != nil {
		return nil, err
	}
	coeffs = append([]float64{}, coeffs...)
	return func(c model3d.Coord3D) model3d.Coord3D {
		res := l.Mean(c)
		for i, pair := range l.Basis {
			weight := coeffs[i] * math.Sqrt(pair.Eigenvalue)
			res = res.Add(pair.Function(c).Scale(weight))
		}
		return res
	}, nil
}
