package barcodegen

import (
	"fmt"
	"strings"
)

// ChecksumMode controls how a symbology treats its check character.
type ChecksumMode int

const (
	// ChecksumAuto resolves to ChecksumAdd or ChecksumCheck from the
	// message length.
	ChecksumAuto ChecksumMode = iota
	// ChecksumAdd computes the check character and appends it.
	ChecksumAdd
	// ChecksumCheck verifies the check character already in the message.
	ChecksumCheck
	// ChecksumIgnore encodes the message as given.
	ChecksumIgnore
)

func (m ChecksumMode) String() string {
	switch m {
	case ChecksumAuto:
		return "auto"
	case ChecksumAdd:
		return "add"
	case ChecksumCheck:
		return "check"
	case ChecksumIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// ParseChecksumMode parses "auto", "add", "check" or "ignore".
func ParseChecksumMode(name string) (ChecksumMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ChecksumAuto, nil
	case "add":
		return ChecksumAdd, nil
	case "check":
		return ChecksumCheck, nil
	case "ignore":
		return ChecksumIgnore, nil
	}
	return ChecksumAuto, fmt.Errorf("unknown checksum mode %q: %w", name, ErrConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (m ChecksumMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ChecksumMode) UnmarshalText(text []byte) error {
	parsed, err := ParseChecksumMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
