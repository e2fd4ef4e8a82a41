package models

import (
	"fmt"
	"strings"
)

// BorderStyle is a border line style. The numbering follows the
// SpreadsheetML border style index used by excelize.
type BorderStyle int

const (
	StyleNone BorderStyle = iota
	StyleThin
	StyleMedium
	StyleDashed
	StyleDotted
	StyleThick
	StyleDouble
	StyleHair
	StyleMediumDashed
	StyleDashDot
	StyleMediumDashDot
	StyleDashDotDot
	StyleMediumDashDotDot
	StyleSlantDashDot
)

var styleNames = [...]string{
	StyleNone:             "none",
	StyleThin:             "thin",
	StyleMedium:           "medium",
	StyleDashed:           "dashed",
	StyleDotted:           "dotted",
	StyleThick:            "thick",
	StyleDouble:           "double",
	StyleHair:             "hair",
	StyleMediumDashed:     "mediumDashed",
	StyleDashDot:          "dashDot",
	StyleMediumDashDot:    "mediumDashDot",
	StyleDashDotDot:       "dashDotDot",
	StyleMediumDashDotDot: "mediumDashDotDot",
	StyleSlantDashDot:     "slantDashDot",
}

// StyleNames returns the recognized style names in index order.
func StyleNames() []string {
	names := make([]string, len(styleNames))
	copy(names, styleNames[:])
	return names
}

// ParseBorderStyle looks up a style name. Matching ignores case and
// surrounding whitespace.
func ParseBorderStyle(name string) (BorderStyle, error) {
	trimmed := strings.TrimSpace(name)
	for i, n := range styleNames {
		if strings.EqualFold(n, trimmed) {
			return BorderStyle(i), nil
		}
	}
	return StyleNone, fmt.Errorf("%w: %q", ErrInvalidStyleName, name)
}

// Valid reports whether s is a known style index.
func (s BorderStyle) Valid() bool {
	return s >= StyleNone && int(s) < len(styleNames)
}

func (s BorderStyle) String() string {
	if !s.Valid() {
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
	return styleNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s BorderStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidStyleName, int(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BorderStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseBorderStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
