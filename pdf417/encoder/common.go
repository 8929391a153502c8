// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
)

const (
	NumberOfCodewords     = 929
	MaxCodewordsInBarcode = 928
	MinRowsInBarcode      = 3
	MaxRowsInBarcode      = 90
	MinColsInBarcode      = 1
	MaxColsInBarcode      = 30
	ModulesInCodeword     = 17
	ModulesInStopPattern  = 18
	BarsInModule          = 8
	MaxErrorCorrection    = 8
)

// StartPattern and StopPattern are drawn at the ends of every row, most
// significant bit first.
const (
	StartPattern uint32 = 0x1fea8
	StopPattern  uint32 = 0x3fa29
)

// PatternWidths splits a pattern of the given number of modules into its
// alternating bar and space widths, starting with a bar.
func PatternWidths(pattern uint32, modules int) []int {
	var widths []int
	last := true
	run := 0
	for i := modules - 1; i >= 0; i-- {
		dark := pattern&(1<<uint(i)) != 0
		if dark == last {
			run++
			continue
		}
		widths = append(widths, run)
		last, run = dark, 1
	}
	return append(widths, run)
}

// CodewordWidths validates a codeword pattern of the given cluster and
// returns its eight element widths. A valid pattern spans 17 modules in
// four bars and four spaces of at most six modules each, and its bar
// widths select the cluster: (b1 - b2 + b3 - b4 + 9) mod 9.
func CodewordWidths(pattern uint32, cluster int) ([]int, error) {
	if pattern>>ModulesInCodeword != 0 || pattern&(1<<(ModulesInCodeword-1)) == 0 || pattern&1 != 0 {
		return nil, fmt.Errorf("pattern %#x does not span %d modules from bar to space: %w",
			pattern, ModulesInCodeword, barcodegen.ErrConfiguration)
	}
	widths := PatternWidths(pattern, ModulesInCodeword)
	if len(widths) != BarsInModule {
		return nil, fmt.Errorf("pattern %#x has %d elements, want %d: %w",
			pattern, len(widths), BarsInModule, barcodegen.ErrConfiguration)
	}
	for _, w := range widths {
		if w > 6 {
			return nil, fmt.Errorf("pattern %#x has an element %d modules wide: %w", pattern, w, barcodegen.ErrConfiguration)
		}
	}
	if got := (widths[0] - widths[2] + widths[4] - widths[6] + 9) % 9; got != cluster {
		return nil, fmt.Errorf("pattern %#x belongs to cluster %d, not %d: %w", pattern, got, cluster, barcodegen.ErrConfiguration)
	}
	return widths, nil
}
