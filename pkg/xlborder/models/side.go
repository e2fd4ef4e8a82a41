package models

import (
	"fmt"
	"strings"
)

// Side is a single border edge: a line style and an optional color.
// A Side with StyleNone draws nothing.
type Side struct {
	// Style is the line style.
	Style BorderStyle `json:"style"`
	// Color is an uppercase RRGGBB hex value, empty when unset.
	Color string `json:"color,omitempty"`
}

// NewSide builds a Side from a style name and a color, validating both.
// An empty color leaves the side uncolored.
func NewSide(style, color string) (Side, error) {
	s, err := ParseBorderStyle(style)
	if err != nil {
		return Side{}, err
	}
	c, err := NormalizeColor(color)
	if err != nil {
		return Side{}, err
	}
	return Side{Style: s, Color: c}, nil
}

// Visible reports whether the side draws a line.
func (s Side) Visible() bool {
	return s.Style != StyleNone
}

func (s Side) String() string {
	if s.Color == "" {
		return s.Style.String()
	}
	return s.Style.String() + ":" + s.Color
}

// NormalizeColor accepts RRGGBB or AARRGGBB hex with an optional leading '#'
// and returns the uppercase RRGGBB part. The alpha channel is dropped.
func NormalizeColor(color string) (string, error) {
	c := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if c == "" {
		return "", nil
	}
	if len(c) != 6 && len(c) != 8 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	for _, r := range c {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
	}
	c = strings.ToUpper(c)
	if len(c) == 8 {
		c = c[2:]
	}
	return c, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
