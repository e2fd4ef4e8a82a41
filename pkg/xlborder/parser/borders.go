package parser

import (
	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/xuri/excelize/v2"
)

// BorderReader reads the physical edges of a cell.
type BorderReader interface {
	CellBorder(row, col int) (models.CellBorder, error)
}

// ExtractBorders reads the edges of every cell in b.
// It returns a slice of CellBorderRow containing rows with a visible edge.
func ExtractBorders(r BorderReader, b models.Bounds) ([]models.CellBorderRow, error) {
	var result []models.CellBorderRow
	for row := b.FirstRow; row <= b.LastRow; row++ {
		cells := make(map[string]models.CellBorder)
		for col := b.FirstCol; col <= b.LastCol; col++ {
			border, err := r.CellBorder(row, col)
			if err != nil {
				return nil, err
			}
			if border.Empty() {
				continue
			}
			colName, err := excelize.ColumnNumberToName(col)
			if err != nil {
				return nil, err
			}
			cells[colName] = border
		}

		if len(cells) > 0 {
			result = append(result, models.CellBorderRow{R: row, C: cells})
		}
	}

	return result, nil
}
