package parser

import (
	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/xuri/excelize/v2"
)

// RegionParams holds thresholds for data region detection.
type RegionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultRegionParams returns default data region detection parameters.
func DefaultRegionParams() RegionParams {
	return RegionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 1,
	}
}

// DetectDataRegion returns the bounding box of the non-empty cells of a
// sheet. ok is false when the sheet holds fewer than MinNonemptyCells values
// or the box is too sparse to be a data region.
func DetectDataRegion(f *excelize.File, sheetName string, params RegionParams) (b models.Bounds, ok bool, err error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Bounds{}, false, err
	}

	s := scanRows(rows)
	if s.cells == 0 || s.cells < params.MinNonemptyCells {
		return models.Bounds{}, false, nil
	}
	if float64(s.cells)/float64(s.area.Cells()) < params.DensityMin {
		return models.Bounds{}, false, nil
	}
	return s.area, true, nil
}

// rowScan is the result of one pass over a sheet's values.
type rowScan struct {
	area  models.Bounds // 1-based; zero when cells is 0
	cells int
}

// scanRows grows a bounding box around every non-empty value. The box holds
// all of them, so the count doubles as the box's filled-cell count.
func scanRows(rows [][]string) rowScan {
	var s rowScan
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			rowNum, colNum := r+1, c+1
			if s.cells == 0 {
				s.area = models.NewBounds(rowNum, rowNum, colNum, colNum)
			} else {
				s.area.FirstRow = min(s.area.FirstRow, rowNum)
				s.area.LastRow = max(s.area.LastRow, rowNum)
				s.area.FirstCol = min(s.area.FirstCol, colNum)
				s.area.LastCol = max(s.area.LastCol, colNum)
			}
			s.cells++
		}
	}
	return s
}
