// Package quantity provides scalar and array values tagged with a time-based
// physical unit.
//
// Only the time dimension is modelled: a [Unit] carries the exponent of
// seconds (1 for s, -1 for Hz, 0 for dimensionless) and a scale to SI. Units
// of equal dimension are compatible and can be rescaled into each other.
// Arithmetic on units produces derived units which take the name of a
// predefined unit when one matches:
//
//	rate := quantity.New(1, quantity.Kilohertz)
//	step := rate.Inverse() // 1 ms
//
// [Array] is the unit-tagged slice type used for spike times, kernel
// evaluation points and kernel weights. Array methods never modify the
// receiver's backing slice; they return fresh slices.
package quantity
