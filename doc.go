// Package symgeo is the runtime side of a symbolic-geometry toolchain:
// small, immutable geometric values that an optimizer can flatten into
// plain numeric vectors and rebuild from them.
//
// 🚀 What is in the box?
//
//	• Storage contract: every value exports a fixed-length vector and is
//	  rebuilt from one, with length checked and nothing else altered
//	• Rot2: the planar rotation group, its matrix form, tangent-space
//	  retraction and closed-form jacobians
//	• Camera calibrations: equidistant-epipolar, linear and ATAN parameter sets
//	• Values: a keyed container that concatenates many storage vectors
//	• Log level configuration from SYMGEO_LOGLEVEL
//
// ✨ Every geometric type comes in two precisions, aliased with a d (float64)
// or f (float32) suffix, and the two never mix in one operation.
//
// Packages:
//
//	scalar/    Float constraint, trig helpers, precision tags
//	storage/   Storable, Export, Import and the InvalidArgument error
//	geo/       Rot2, Vector2, Matrix2
//	cam/       calibration parameter sets
//	values/    keyed flattening of optimization variables
//	matrix/    row-major Dense with gonum interop
//	logconfig/ process-wide slog level from the environment
//	cmd/symgeo command-line inspector
//
// Quick example:
//
//	r := geo.Rot2FromAngle(math.Pi / 2)   // <Rot2d [6.123233995736766e-17, 1]>
//	vec := storage.Export[float64](r)     // [c, s]
//	back, err := geo.Rot2FromStorage(vec) // back == r
package symgeo
