package barcodegen

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit of a Length.
type Unit string

const (
	UnitMM          Unit = "mm"
	UnitCM          Unit = "cm"
	UnitInch        Unit = "in"
	UnitPoint       Unit = "pt"
	UnitModuleWidth Unit = "mw"
)

const mmPerInch = 25.4

// Length is a value with a unit. Module-width lengths are resolved against a
// module width when converted to millimetres.
type Length struct {
	Value float64
	Unit  Unit
}

// MM returns a Length in millimetres.
func MM(v float64) Length { return Length{Value: v, Unit: UnitMM} }

// ModuleWidths returns a Length expressed in module widths.
func ModuleWidths(n float64) Length { return Length{Value: n, Unit: UnitModuleWidth} }

// PointsToMM converts typographic points to millimetres.
func PointsToMM(pt float64) float64 { return pt * mmPerInch / 72 }

// InchesToMM converts inches to millimetres.
func InchesToMM(in float64) float64 { return in * mmPerInch }

// ToMM converts the length to millimetres using moduleWidth for the "mw" unit.
func (l Length) ToMM(moduleWidth float64) float64 {
	switch l.Unit {
	case UnitCM:
		return l.Value * 10
	case UnitInch:
		return InchesToMM(l.Value)
	case UnitPoint:
		return PointsToMM(l.Value)
	case UnitModuleWidth:
		return l.Value * moduleWidth
	default:
		return l.Value
	}
}

func (l Length) String() string {
	unit := l.Unit
	if unit == "" {
		unit = UnitMM
	}
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + string(unit)
}

// ParseLength parses values such as "0.21mm", "10mw", "1in", "8pt" or "3".
// A bare number is taken as millimetres.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := UnitMM
	for _, u := range []Unit{UnitMM, UnitCM, UnitInch, UnitPoint, UnitModuleWidth} {
		if strings.HasSuffix(s, string(u)) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, string(u)))
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", s, ErrConfiguration)
	}
	if v < 0 {
		return Length{}, fmt.Errorf("negative length %q: %w", s, ErrConfiguration)
	}
	return Length{Value: v, Unit: unit}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Length) UnmarshalText(text []byte) error {
	parsed, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
