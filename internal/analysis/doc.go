// Package analysis measures computed pattern cuts.
//
// [Measure] reads the figures a bench engineer would take off a polar plot:
//
//   - peak direction
//   - half-power (-3 dB) beamwidth
//   - front-to-back ratio
//   - number of lobes
//
// [Spectrum] decomposes a cut into its angular harmonics, which is a quick
// way to tell an omnidirectional cut (all energy in bin 0) from a directive
// one.
//
// Both work on the sampled cut and are independent of the closed-form
// estimates in package params.
package analysis
