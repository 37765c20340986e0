// Package antenna defines the antenna configurations the pattern engine
// understands.
//
// A configuration is an immutable value of one of four variants:
//
//   - [Dipole]: centre-fed wire dipole, length in wavelengths
//   - [Monopole]: vertical monopole over a ground plane, length in wavelengths
//   - [Array]: two-element array, spacing in wavelengths and phase in radians
//   - [Yagi]: Yagi-Uda with a number of director elements
//
// Every change to the antenna produces a new value; the core never mutates
// a configuration in place.
//
// # Validation
//
// Values are checked at the configuration boundary with [Validate]. Violations
// are reported as [*ConfigError], which unwraps to [ErrInvalidConfiguration].
package antenna
