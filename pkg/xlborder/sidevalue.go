package xlborder

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

type sideKind uint8

const (
	sideStyle sideKind = iota + 1
	sidePair
	sideRaw
)

// SideValue is an explicit override for one logical position. It takes one
// of three forms: a style name that inherits the base color, a style and
// color pair, or a ready-made side used verbatim.
type SideValue struct {
	kind  sideKind
	style string
	color string
	side  models.Side
}

// StyleSide returns an override that draws style in the base color.
func StyleSide(style string) *SideValue {
	return &SideValue{kind: sideStyle, style: style}
}

// PairSide returns an override with its own color.
func PairSide(style, color string) *SideValue {
	return &SideValue{kind: sidePair, style: style, color: color}
}

// RawSide returns an override with a ready-made side. Its style and color
// are still validated when options are resolved.
func RawSide(side models.Side) *SideValue {
	return &SideValue{kind: sideRaw, side: side}
}

// ParseSideValue parses "style" or "style:color".
func ParseSideValue(s string) (*SideValue, error) {
	style, color, found := strings.Cut(s, ":")
	if strings.TrimSpace(style) == "" {
		return nil, fmt.Errorf("%w: side %q", ErrInvalidOptionValue, s)
	}
	if !found {
		return StyleSide(style), nil
	}
	return PairSide(style, color), nil
}

// resolve normalizes the value to a Side. baseColor must already be normalized.
func (v *SideValue) resolve(baseColor string) (models.Side, error) {
	switch v.kind {
	case sideStyle:
		s, err := models.ParseBorderStyle(v.style)
		if err != nil {
			return models.Side{}, err
		}
		return models.Side{Style: s, Color: baseColor}, nil
	case sidePair:
		return models.NewSide(v.style, v.color)
	case sideRaw:
		if !v.side.Style.Valid() {
			return models.Side{}, fmt.Errorf("%w: %s", ErrInvalidStyleName, v.side.Style)
		}
		color, err := models.NormalizeColor(v.side.Color)
		if err != nil {
			return models.Side{}, err
		}
		return models.Side{Style: v.side.Style, Color: color}, nil
	default:
		return models.Side{}, fmt.Errorf("%w: empty side value", ErrInvalidOptionValue)
	}
}

func (v *SideValue) String() string {
	switch v.kind {
	case sideStyle:
		return v.style
	case sidePair:
		return v.style + ":" + v.color
	case sideRaw:
		return v.side.String()
	default:
		return ""
	}
}
