package shaped

import "errors"

// ErrDimensionMismatch is returned when a coefficient vector's length
// does not match a model's rank.
var ErrDimensionMismatch = errors.New("coefficient vector length does not match model rank")

// ErrDerivativeUnsupported is returned when the spatial derivative of a
// Karhunen-Loeve transformation is requested. The basis functions are
// general kernel-derived fields with no closed-form spatial gradient;
// callers that need one must use finite differences.
var ErrDerivativeUnsupported = errors.New("spatial derivative of KL transformation is not implemented")

// ErrAlignmentFailed is returned when a least-squares rigid fit cannot
// be computed for a point configuration.
var ErrAlignmentFailed = errors.New("rigid alignment failed")

// ErrCorrespondence is returned when a mesh cannot be put in point
// correspondence with a reference mesh.
var ErrCorrespondence = errors.New("meshes are not in correspondence")

// ErrOutOfRange is returned by checked indexed accesses.
var ErrOutOfRange = errors.New("index out of range")
