// Package oned implements the linear symbologies: the UPC/EAN family,
// Code128 and Interleaved 2-of-5 including ITF-14.
package oned

import "github.com/ericlevine/barcodegen"

// emitPattern sends pattern to h as alternating bars and spaces. If
// startColor is true the first element is a bar.
func emitPattern(h barcodegen.ClassicHandler, pattern []int, startColor bool) {
	color := startColor
	for _, w := range pattern {
		h.AddBar(color, w)
		color = !color
	}
}

// patternWidth returns the total number of modules in pattern.
func patternWidth(pattern []int) int {
	n := 0
	for _, w := range pattern {
		n += w
	}
	return n
}
