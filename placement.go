package barcodegen

import (
	"fmt"
	"strings"
)

// HumanReadablePlacement positions the caption relative to the bars.
type HumanReadablePlacement int

const (
	PlacementBottom HumanReadablePlacement = iota
	PlacementTop
	PlacementNone
)

func (p HumanReadablePlacement) String() string {
	switch p {
	case PlacementBottom:
		return "bottom"
	case PlacementTop:
		return "top"
	case PlacementNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParsePlacement parses "bottom", "top" or "none".
func ParsePlacement(name string) (HumanReadablePlacement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bottom":
		return PlacementBottom, nil
	case "top":
		return PlacementTop, nil
	case "none":
		return PlacementNone, nil
	}
	return PlacementBottom, fmt.Errorf("unknown human-readable placement %q: %w", name, ErrConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (p HumanReadablePlacement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *HumanReadablePlacement) UnmarshalText(text []byte) error {
	parsed, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
