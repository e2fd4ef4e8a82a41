// Package xlborder resolves layered border options into per-cell edges and
// writes them into a worksheet.
package xlborder

import "github.com/ukaji3/xlborder-go/pkg/xlborder/models"

// DefaultStyle is the base style used when Options.Style is empty.
const DefaultStyle = "thin"

// Options configures a border. Fields resolve in layers, lowest to highest
// priority:
//
//  1. Style and Color: base for all six positions.
//  2. Custom: weight tuple (top, right, bottom, left[, inner horizontal, inner vertical]).
//  3. Outline and Inside: outer and inner groups.
//  4. Horizontal and Vertical: groups by orientation.
//  5. Top, Right, Bottom, Left, InnerHorizontal, InnerVertical: single positions.
//
// Empty strings and nil values are absent and leave lower layers in place.
type Options struct {
	// Style is the base style name. Defaults to "thin".
	Style string
	// Color is the base color (RRGGBB), inherited by every layer without its own.
	Color string
	// Custom holds 4 or 6 weights, each 0 (none), 1 (thin), 2 (medium) or 3 (thick).
	// A 4-element tuple sets both inner positions to none.
	Custom []int

	// Outline styles the four outer edges.
	Outline string
	// Inside styles both inner grid directions.
	Inside string
	// Horizontal styles top, bottom and inner horizontal.
	Horizontal string
	// Vertical styles left, right and inner vertical.
	Vertical string

	Top             *SideValue
	Right           *SideValue
	Bottom          *SideValue
	Left            *SideValue
	InnerHorizontal *SideValue
	InnerVertical   *SideValue
}

// DefaultOptions returns options drawing a thin line on every position.
func DefaultOptions() Options {
	return Options{
		Style: DefaultStyle,
	}
}

// BaseStyle returns the base style name, applying the default.
func (o Options) BaseStyle() string {
	if o.Style == "" {
		return DefaultStyle
	}
	return o.Style
}

// Side returns the explicit override for a position, or nil.
func (o Options) Side(p models.Position) *SideValue {
	if ptr := o.sideRef(p); ptr != nil {
		return *ptr
	}
	return nil
}

// SetSide sets the explicit override for a position.
func (o *Options) SetSide(p models.Position, v *SideValue) {
	if ptr := o.sideRef(p); ptr != nil {
		*ptr = v
	}
}

func (o *Options) sideRef(p models.Position) **SideValue {
	switch p {
	case models.PositionTop:
		return &o.Top
	case models.PositionRight:
		return &o.Right
	case models.PositionBottom:
		return &o.Bottom
	case models.PositionLeft:
		return &o.Left
	case models.PositionInnerHorizontal:
		return &o.InnerHorizontal
	case models.PositionInnerVertical:
		return &o.InnerVertical
	default:
		return nil
	}
}
