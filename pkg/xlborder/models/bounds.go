package models

import "fmt"

// Bounds represents the cell coordinate bounds of a rectangular range.
type Bounds struct {
	// FirstRow is the start row (1-based).
	FirstRow int `json:"r1"`
	// FirstCol is the start column (1-based).
	FirstCol int `json:"c1"`
	// LastRow is the end row (1-based, inclusive).
	LastRow int `json:"r2"`
	// LastCol is the end column (1-based, inclusive).
	LastCol int `json:"c2"`
}

// NewBounds returns the rectangle spanned by two corners given in any order.
func NewBounds(firstRow, lastRow, firstCol, lastCol int) Bounds {
	if firstRow > lastRow {
		firstRow, lastRow = lastRow, firstRow
	}
	if firstCol > lastCol {
		firstCol, lastCol = lastCol, firstCol
	}
	return Bounds{FirstRow: firstRow, FirstCol: firstCol, LastRow: lastRow, LastCol: lastCol}
}

// Valid reports whether the bounds describe at least one cell with
// 1-based coordinates.
func (b Bounds) Valid() bool {
	return b.FirstRow >= 1 && b.FirstCol >= 1 && b.FirstRow <= b.LastRow && b.FirstCol <= b.LastCol
}

// Contains reports whether the cell at (row, col) lies inside the bounds.
func (b Bounds) Contains(row, col int) bool {
	return row >= b.FirstRow && row <= b.LastRow && col >= b.FirstCol && col <= b.LastCol
}

// Rows returns the number of rows covered.
func (b Bounds) Rows() int { return b.LastRow - b.FirstRow + 1 }

// Cols returns the number of columns covered.
func (b Bounds) Cols() int { return b.LastCol - b.FirstCol + 1 }

// Cells returns the number of cells covered.
func (b Bounds) Cells() int { return b.Rows() * b.Cols() }

// Single reports whether the bounds cover exactly one cell.
func (b Bounds) Single() bool {
	return b.FirstRow == b.LastRow && b.FirstCol == b.LastCol
}

func (b Bounds) String() string {
	return fmt.Sprintf("R%dC%d:R%dC%d", b.FirstRow, b.FirstCol, b.LastRow, b.LastCol)
}
