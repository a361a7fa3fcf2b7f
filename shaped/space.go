package shaped

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/mat"
)

// A KLSpace exposes a low-rank deformation model as a parametric
// transformation space: every coefficient vector selects one
// point-to-point transformation, and the mapping from coefficients to
// displacements is affine.
type KLSpace struct {
	Model      *LowRankModel
	Vectorizer Vectorizer[float64, model3d.Coord3D]
}

// NewKLSpace creates a KLSpace over a model using the standard 3-D
// coordinate vectorizer.
func NewKLSpace(model *LowRankModel) *KLSpace {
	return &KLSpace{Model: model, Vectorizer: Coord3DVectorizer{}}
}

// ParametersDimensionality returns the length of accepted coefficient
// vectors, i.e. the model rank.
func (k *KLSpace) ParametersDimensionality() int {
	return k.Model.Rank()
}

// IdentityParameters returns the coefficient vector selecting the mean
// deformation, the zero vector.
func (k *KLSpace) IdentityParameters() []float64 {
	return make([]float64, k.Model.Rank())
}

// TransformForParameters returns the transformation
// x -> x + instance(coeffs)(x) over the model's domain.
func (k *KLSpace) TransformForParameters(coeffs []float64) (*KLTransform, error) {
	field, err := k.Model.Instance(coeffs)
	if err != nil {
		return nil, err
	}
	return &KLTransform{space: k, field: field}, nil
}

// Jacobian returns the derivative of the transformation with respect
// to the coefficients, as a function of position. Column i of the
// resulting matrix is sqrt(eigenvalue_i) * basis_i(x).
//
// Since the transformation is affine in the coefficients, the Jacobian
// does not depend on the coefficient values; the argument is only
// checked for dimensionality.
func (k *KLSpace) Jacobian(coeffs []float64) (func(c model3d.Coord3D) *mat.Dense, error) {
	if err := k.Model.checkCoeffs(coeffs); err != nil {
		return nil, err
	}
	dim := k.Vectorizer.NumComponents()
	rank := k.Model.Rank()
	return func(c model3d.Coord3D) *mat.Dense {
		res := mat.NewDense(dim, rank, nil)
		for i, pair := range k.Model.Basis {
			col := k.Vectorizer.ToComponents(pair.Function(c).Scale(math.Sqrt(pair.Eigenvalue)))
			res.SetCol(i, col)
		}
		return res
	}, nil
}

// A KLTransform is the transformation selected by one coefficient
// vector of a KLSpace.
type KLTransform struct {
	space *KLSpace
	field DeformationField
}

func (k *KLTransform) Apply(c model3d.Coord3D) model3d.Coord3D {
	return c.Add(k.field(c))
}

func (k *KLTransform) Bounds() (min, max model3d.Coord3D) {
	return k.space.Model.Min, k.space.Model.Max
}

// SpatialDerivative would differentiate the transformation with
// respect to position. The basis functions have no closed-form spatial
// gradient, so this always fails with ErrDerivativeUnsupported.
func (k *KLTransform) SpatialDerivative(c model3d.Coord3D) (*mat.Dense, error) {
	return nil, ErrDerivativeUnsupported
}
