// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/reedsolomon"
)

// ecc929 caches generator polynomials across symbols; it is safe for
// concurrent use.
var ecc929 = reedsolomon.NewEncoder(reedsolomon.PDF417Field929)

// ErrorCorrectionCodewordCount returns the number of error correction
// codewords of a level: 2^(level+1).
func ErrorCorrectionCodewordCount(level int) (int, error) {
	if level < 0 || level > MaxErrorCorrection {
		return 0, fmt.Errorf("error correction level must be between 0 and %d, got %d: %w",
			MaxErrorCorrection, level, barcodegen.ErrConfiguration)
	}
	return 1 << (level + 1), nil
}

// GenerateErrorCorrection returns the error correction codewords of the
// data codewords, length descriptor included.
func GenerateErrorCorrection(data []int, level int) ([]int, error) {
	k, err := ErrorCorrectionCodewordCount(level)
	if err != nil {
		return nil, err
	}
	toEncode := make([]int, len(data)+k)
	copy(toEncode, data)
	ecc929.Encode(toEncode, k)
	return toEncode[len(data):], nil
}
