// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen/reedsolomon"
)

// ecc200 caches generator polynomials across symbols; it is safe for
// concurrent use.
var ecc200 = reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)

// EncodeECC200 appends the Reed-Solomon error correction codewords for
// symbolInfo to the data codewords. Symbols with several blocks take every
// n-th data codeword into block i and interleave the EC codewords the same
// way.
func EncodeECC200(codewords []byte, symbolInfo *SymbolInfo) ([]byte, error) {
	if len(codewords) != symbolInfo.DataCapacity {
		return nil, fmt.Errorf("datamatrix/encoder: expected %d data codewords, got %d",
			symbolInfo.DataCapacity, len(codewords))
	}
	result := make([]byte, symbolInfo.TotalCodewords())
	copy(result, codewords)

	blockCount := symbolInfo.InterleavedBlockCount()
	ecPerBlock := symbolInfo.RSBlockError
	for block := 0; block < blockCount; block++ {
		toEncode := make([]int, 0, symbolInfo.BlockDataLength(block)+ecPerBlock)
		for d := block; d < symbolInfo.DataCapacity; d += blockCount {
			toEncode = append(toEncode, int(codewords[d]))
		}
		dataLen := len(toEncode)
		toEncode = toEncode[:dataLen+ecPerBlock]
		ecc200.Encode(toEncode, ecPerBlock)
		for i, e := 0, block; i < ecPerBlock; i, e = i+1, e+blockCount {
			result[symbolInfo.DataCapacity+e] = byte(toEncode[dataLen+i])
		}
	}
	return result, nil
}
