// Package barcodegen generates the geometric symbol pattern of printable
// barcodes independently of how that pattern is rendered.
//
// Each symbology package registers a Generator factory for its Symbology.
// A Generator validates a message completely before it emits a single event
// to a logic handler or draws a single rectangle on a canvas.
package barcodegen

import (
	"fmt"
	"strings"
)

// Symbology identifies a barcode standard.
type Symbology int

const (
	SymbologyUPCA Symbology = iota
	SymbologyEAN13
	SymbologyEAN8
	SymbologyCode128
	SymbologyInterleaved2Of5
	SymbologyITF14
	SymbologyPDF417
	SymbologyDataMatrix
)

var symbologyNames = map[Symbology]string{
	SymbologyUPCA:            "upc-a",
	SymbologyEAN13:           "ean-13",
	SymbologyEAN8:            "ean-8",
	SymbologyCode128:         "code128",
	SymbologyInterleaved2Of5: "intl2of5",
	SymbologyITF14:           "itf-14",
	SymbologyPDF417:          "pdf417",
	SymbologyDataMatrix:      "datamatrix",
}

// String returns the name of the symbology.
func (s Symbology) String() string {
	if name, ok := symbologyNames[s]; ok {
		return name
	}
	return "unknown"
}

// Is2D reports whether the symbology is stacked or matrix rather than linear.
func (s Symbology) Is2D() bool {
	return s == SymbologyPDF417 || s == SymbologyDataMatrix
}

// ParseSymbology resolves a symbology name. Aliases used by barcode
// servlets ("upca", "ean13", "ean8", "2of5", "itf14") are accepted too.
func ParseSymbology(name string) (Symbology, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, canonical := range symbologyNames {
		if n == canonical {
			return s, nil
		}
	}
	switch n {
	case "upca", "upc":
		return SymbologyUPCA, nil
	case "ean13", "ean":
		return SymbologyEAN13, nil
	case "ean8":
		return SymbologyEAN8, nil
	case "code-128", "code_128":
		return SymbologyCode128, nil
	case "2of5", "interleaved-2-of-5", "itf":
		return SymbologyInterleaved2Of5, nil
	case "itf14":
		return SymbologyITF14, nil
	case "pdf-417", "pdf_417":
		return SymbologyPDF417, nil
	case "data-matrix", "datamatrix-ecc200":
		return SymbologyDataMatrix, nil
	}
	return 0, fmt.Errorf("unknown symbology %q: %w", name, ErrConfiguration)
}
