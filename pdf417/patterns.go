package pdf417

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/pdf417/encoder"
)

// PatternTable maps a codeword of cluster 0, 3 or 6 to its 17-module
// bar/space pattern, most significant bit first.
type PatternTable interface {
	Pattern(cluster, codeword int) (uint32, bool)
}

// Patterns is a PatternTable with all three clusters held in memory.
type Patterns struct {
	clusters [3][]uint32
}

var _ PatternTable = (*Patterns)(nil)

// NewPatterns validates three clusters of 929 patterns each.
func NewPatterns(cluster0, cluster3, cluster6 []uint32) (*Patterns, error) {
	p := &Patterns{clusters: [3][]uint32{cluster0, cluster3, cluster6}}
	for i, patterns := range p.clusters {
		cluster := i * 3
		if len(patterns) != encoder.NumberOfCodewords {
			return nil, fmt.Errorf("cluster %d has %d patterns, want %d: %w",
				cluster, len(patterns), encoder.NumberOfCodewords, barcodegen.ErrConfiguration)
		}
		for cw, pattern := range patterns {
			if _, err := encoder.CodewordWidths(pattern, cluster); err != nil {
				return nil, fmt.Errorf("codeword %d: %w", cw, err)
			}
		}
	}
	return p, nil
}

func (p *Patterns) Pattern(cluster, codeword int) (uint32, bool) {
	if cluster%3 != 0 || cluster < 0 || cluster > 6 || codeword < 0 || codeword >= encoder.NumberOfCodewords {
		return 0, false
	}
	return p.clusters[cluster/3][codeword], true
}

// patternFile is the YAML layout of a pattern table:
//
//	clusters:
//	  0: [0x1d5c0, ...]
//	  3: [0x1f560, ...]
//	  6: [0x1abe0, ...]
type patternFile struct {
	Clusters map[int][]uint32 `yaml:"clusters"`
}

// LoadPatterns reads a YAML pattern table.
func LoadPatterns(r io.Reader) (*Patterns, error) {
	var f patternFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding pattern table: %v: %w", err, barcodegen.ErrConfiguration)
	}
	return NewPatterns(f.Clusters[0], f.Clusters[3], f.Clusters[6])
}

// LoadPatternsFile reads a YAML pattern table from path.
func LoadPatternsFile(path string) (*Patterns, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pattern table: %v: %w", err, barcodegen.ErrConfiguration)
	}
	defer f.Close()
	return LoadPatterns(f)
}

// renderer resolves the widths of every codeword of a symbol up front so
// that a missing or malformed pattern fails before anything is drawn.
type renderer map[barcodegen.Codeword][]int

func newRenderer(table PatternTable, sym *encoder.Symbol) (renderer, error) {
	if table == nil {
		return nil, fmt.Errorf("drawing PDF417 codewords needs a pattern table (set pdf417.patterns): %w", barcodegen.ErrConfiguration)
	}
	r := make(renderer)
	add := func(cw barcodegen.Codeword) error {
		if _, ok := r[cw]; ok {
			return nil
		}
		pattern, ok := table.Pattern(cw.Cluster, cw.Value)
		if !ok {
			return fmt.Errorf("no pattern for codeword %d in cluster %d: %w", cw.Value, cw.Cluster, barcodegen.ErrConfiguration)
		}
		widths, err := encoder.CodewordWidths(pattern, cw.Cluster)
		if err != nil {
			return fmt.Errorf("codeword %d: %w", cw.Value, err)
		}
		r[cw] = widths
		return nil
	}
	for y := 0; y < sym.Rows; y++ {
		row := sym.Row(y)
		for _, v := range append([]int{row.Left, row.Right}, row.Data...) {
			if err := add(barcodegen.Codeword{Value: v, Cluster: row.Cluster}); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r renderer) Widths(cw barcodegen.Codeword) []int { return r[cw] }
