// Package mgplot renders multigrid diagnostics with gonum/plot:
// the convergence history on a log scale and 1-D field profiles.
//
// The output format follows the file extension accepted by plot.Save
// (.png, .svg, .pdf, .eps, .jpg, .tif).
package mgplot
