// Package analysis provides orbit analysis tools over recorded tracks.
//
//   - [EstimatePeriod]: dominant period of a sampled coordinate via FFT
//   - [PowerSpectrum]: one-sided magnitude spectrum of a series
//   - [RadialPortrait]: (r, dr/dt) phase space trajectory of a body
//   - [Crossings]: ticks at which a body passes its reference line
//
// # Period Estimation
//
// Two independent estimates should agree for a bound orbit:
//
//	xs := rec.Xs("Earth")
//	spectral, _ := analysis.EstimatePeriod(xs)
//	geometric, _ := analysis.CrossingPeriod(analysis.Crossings(rec.Track("Earth"), sun))
package analysis
