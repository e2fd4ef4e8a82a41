// Package parser provides Excel range and workbook parsing utilities.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRangeSyntax indicates a malformed A1-style range string.
var ErrInvalidRangeSyntax = errors.New("invalid range syntax")

// ParseRange parses an A1-style range such as "A1:D5", "B2" or "$A$1:$C$3"
// into bounds. Corners may be given in any order.
func ParseRange(ref string) (models.Bounds, error) {
	// Remove $ signs
	s := strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if s == "" {
		return models.Bounds{}, fmt.Errorf("%w: empty range", ErrInvalidRangeSyntax)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return models.Bounds{}, fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, ref)
	}

	firstRow, firstCol, err := parseCell(ref, parts[0])
	if err != nil {
		return models.Bounds{}, err
	}
	lastRow, lastCol := firstRow, firstCol
	if len(parts) == 2 {
		lastRow, lastCol, err = parseCell(ref, parts[1])
		if err != nil {
			return models.Bounds{}, err
		}
	}

	return models.NewBounds(firstRow, lastRow, firstCol, lastCol), nil
}

// parseCell converts one corner of ref to 1-based coordinates.
func parseCell(ref, cell string) (row, col int, err error) {
	colName, row, err := excelize.SplitCellName(cell)
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, ref)
	}
	col, err = excelize.ColumnNameToNumber(colName)
	if err != nil {
		if errors.Is(err, excelize.ErrColumnNumber) {
			return 0, 0, fmt.Errorf("%w: column %s in %q", models.ErrOutOfBounds, colName, ref)
		}
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, ref)
	}
	if row > excelize.TotalRows {
		return 0, 0, fmt.Errorf("%w: row %d in %q", models.ErrOutOfBounds, row, ref)
	}
	return row, col, nil
}

// FormatRange renders bounds in A1 notation. A single cell is rendered
// without a colon.
func FormatRange(b models.Bounds) (string, error) {
	start, err := excelize.CoordinatesToCellName(b.FirstCol, b.FirstRow)
	if err != nil {
		return "", err
	}
	if b.Single() {
		return start, nil
	}
	end, err := excelize.CoordinatesToCellName(b.LastCol, b.LastRow)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}
