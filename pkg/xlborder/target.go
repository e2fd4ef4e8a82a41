package xlborder

import (
	"fmt"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/parser"
	"github.com/xuri/excelize/v2"
)

// Target selects the cells of a workbook a job applies to. Exactly one of
// Range, PrintArea and DataRegion must be set.
type Target struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
	// Range is an A1-style range.
	Range string
	// PrintArea selects the sheet's first print area.
	PrintArea bool
	// DataRegion selects the bounding box of the sheet's non-empty cells.
	DataRegion bool
}

// Bounds resolves the target against sheetName of f.
func (t Target) Bounds(f *excelize.File, sheetName string) (models.Bounds, error) {
	selected := 0
	for _, set := range []bool{t.Range != "", t.PrintArea, t.DataRegion} {
		if set {
			selected++
		}
	}
	if selected != 1 {
		return models.Bounds{}, fmt.Errorf("%w: set exactly one of range, print area or data region", ErrInvalidTarget)
	}

	switch {
	case t.PrintArea:
		b, ok := parser.PrintArea(f, sheetName)
		if !ok {
			return models.Bounds{}, fmt.Errorf("%w: sheet %q has no print area", ErrInvalidTarget, sheetName)
		}
		return b, nil
	case t.DataRegion:
		b, ok, err := parser.DetectDataRegion(f, sheetName, parser.DefaultRegionParams())
		if err != nil {
			return models.Bounds{}, err
		}
		if !ok {
			return models.Bounds{}, fmt.Errorf("%w: sheet %q has no data region", ErrInvalidTarget, sheetName)
		}
		return b, nil
	default:
		return parser.ParseRange(t.Range)
	}
}

func (t Target) String() string {
	switch {
	case t.PrintArea:
		return "print area"
	case t.DataRegion:
		return "data region"
	default:
		return t.Range
	}
}
