package xlborder

import (
	"fmt"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

// Grid is the worksheet a border is written into.
type Grid interface {
	// Extent returns the largest addressable row and column (1-based).
	Extent() (rows, cols int)
	// CellBorder returns the four edges currently drawn on a cell.
	CellBorder(row, col int) (models.CellBorder, error)
	// SetCellBorder replaces the four edges of a cell and leaves the rest
	// of its formatting alone.
	SetCellBorder(row, col int, border models.CellBorder) error
}

// CellEdges returns the physical edges of the cell at (row, col) within b.
// Edges on the rim of b take the outer positions; shared interior lines take
// the inner positions, so both neighbours of a line receive the same side.
func CellEdges(sides models.SideSet, b models.Bounds, row, col int) models.CellBorder {
	var edges models.CellBorder

	if row == b.FirstRow {
		edges.Top = sides[models.PositionTop]
	} else {
		edges.Top = sides[models.PositionInnerHorizontal]
	}
	if row == b.LastRow {
		edges.Bottom = sides[models.PositionBottom]
	} else {
		edges.Bottom = sides[models.PositionInnerHorizontal]
	}
	if col == b.FirstCol {
		edges.Left = sides[models.PositionLeft]
	} else {
		edges.Left = sides[models.PositionInnerVertical]
	}
	if col == b.LastCol {
		edges.Right = sides[models.PositionRight]
	} else {
		edges.Right = sides[models.PositionInnerVertical]
	}

	return edges
}

// Assign writes the resolved sides into every cell of b, row by row.
func Assign(g Grid, sides models.SideSet, b models.Bounds) error {
	if err := checkBounds(g, b); err != nil {
		return err
	}
	return assign(g, sides, b, false)
}

func assign(g Grid, sides models.SideSet, b models.Bounds, preserveColor bool) error {
	for row := b.FirstRow; row <= b.LastRow; row++ {
		for col := b.FirstCol; col <= b.LastCol; col++ {
			edges := CellEdges(sides, b, row, col)
			if preserveColor {
				existing, err := g.CellBorder(row, col)
				if err != nil {
					return err
				}
				edges = keepColors(edges, existing)
			}
			if err := g.SetCellBorder(row, col, edges); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkBounds verifies b is a non-empty rectangle inside the grid.
func checkBounds(g Grid, b models.Bounds) error {
	if !b.Valid() {
		return fmt.Errorf("%w: %s is empty", ErrOutOfBounds, b)
	}
	rows, cols := g.Extent()
	if b.LastRow > rows || b.LastCol > cols {
		return fmt.Errorf("%w: %s exceeds %d rows x %d columns", ErrOutOfBounds, b, rows, cols)
	}
	return nil
}

// keepColors copies the color of an existing edge onto a visible,
// uncolored edge of the same side.
func keepColors(edges, existing models.CellBorder) models.CellBorder {
	edges.Top = keepColor(edges.Top, existing.Top)
	edges.Right = keepColor(edges.Right, existing.Right)
	edges.Bottom = keepColor(edges.Bottom, existing.Bottom)
	edges.Left = keepColor(edges.Left, existing.Left)
	return edges
}

func keepColor(side, existing models.Side) models.Side {
	if side.Visible() && side.Color == "" && existing.Visible() {
		side.Color = existing.Color
	}
	return side
}
