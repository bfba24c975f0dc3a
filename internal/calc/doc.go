// Package calc derives sampling-plan constraints from a measured stack
// cross-section.
//
// Contents
//
//   - Circular ducts: Circular maps a pipe diameter to the minimum number of
//     traverse points.
//   - Rectangular ducts: Rectangular maps width and height to the number of
//     sections along each side and the minimum number of points.
//   - ForSite picks the engine from a stored site record.
//
// # Notes
//
// The engines are pure functions. Dimensions are in metres and must be
// positive; passing anything else is a programming error and the result is
// unspecified. ForSite is the checked entry point for user-supplied values.
package calc
