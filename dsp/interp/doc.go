// Package interp provides the interpolation primitives used to repair
// masked sample runs.
//
//   - [Linear2]:    2-point linear interpolation
//   - [FillLinear]: bridge a gap between the samples on either side of it
//   - [FillFlat]:   hold a single neighbouring value across a gap
package interp
