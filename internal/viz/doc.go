// Package viz renders spectra in the terminal: asciigraph line plots,
// lipgloss-styled panels and sparklines. Presentation only; it consumes
// [physics.OpticalResult] values unchanged.
package viz
