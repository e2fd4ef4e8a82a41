// Package models defines data structures for border resolution.
package models

import "fmt"

// Position is one of the six logical border slots of a cell range.
type Position int

const (
	// PositionTop is the outer top edge of the range.
	PositionTop Position = iota
	// PositionRight is the outer right edge of the range.
	PositionRight
	// PositionBottom is the outer bottom edge of the range.
	PositionBottom
	// PositionLeft is the outer left edge of the range.
	PositionLeft
	// PositionInnerHorizontal covers every horizontal grid line inside the range.
	PositionInnerHorizontal
	// PositionInnerVertical covers every vertical grid line inside the range.
	PositionInnerVertical
)

// NumPositions is the number of logical positions.
const NumPositions = 6

// Positions lists every logical position in weight tuple order:
// top, right, bottom, left, inner horizontal, inner vertical.
var Positions = [NumPositions]Position{
	PositionTop,
	PositionRight,
	PositionBottom,
	PositionLeft,
	PositionInnerHorizontal,
	PositionInnerVertical,
}

func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionRight:
		return "right"
	case PositionBottom:
		return "bottom"
	case PositionLeft:
		return "left"
	case PositionInnerHorizontal:
		return "inner_horizontal"
	case PositionInnerVertical:
		return "inner_vertical"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// SideSet holds exactly one resolved Side per logical position.
type SideSet [NumPositions]Side
