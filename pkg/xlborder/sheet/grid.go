// Package sheet adapts an excelize worksheet to the border grid interface.
package sheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// defaultEdgeColor is written for edges without a color, since an empty
// excelize color is saved as an invalid ARGB value. It reads back as no color.
const defaultEdgeColor = "000000"

// styleKey identifies a derived style: the cell's previous style with its
// border replaced.
type styleKey struct {
	base   int
	border models.CellBorder
}

// Grid writes and reads cell borders of one worksheet. Other style
// attributes of a cell (font, fill, alignment, number format) are kept.
// A Grid is not safe for concurrent use.
type Grid struct {
	f      *excelize.File
	name   string
	styles map[styleKey]int
}

// Open returns a Grid for the named sheet. An empty name selects the first
// sheet of the workbook.
func Open(f *excelize.File, name string) (*Grid, error) {
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		name = sheets[0]
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return &Grid{
		f:      f,
		name:   name,
		styles: make(map[styleKey]int),
	}, nil
}

// Name returns the worksheet name.
func (g *Grid) Name() string { return g.name }

// Extent returns the largest addressable row and column of a worksheet.
func (g *Grid) Extent() (rows, cols int) {
	return excelize.TotalRows, excelize.MaxColumns
}

// CellBorder returns the four edges currently drawn on the cell.
func (g *Grid) CellBorder(row, col int) (models.CellBorder, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.CellBorder{}, err
	}
	styleID, err := g.f.GetCellStyle(g.name, cell)
	if err != nil {
		return models.CellBorder{}, err
	}
	style, err := g.f.GetStyle(styleID)
	if err != nil {
		return models.CellBorder{}, err
	}
	return fromExcelize(style.Border), nil
}

// SetCellBorder replaces the four edges of the cell.
func (g *Grid) SetCellBorder(row, col int, border models.CellBorder) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	base, err := g.f.GetCellStyle(g.name, cell)
	if err != nil {
		return err
	}

	key := styleKey{base: base, border: border}
	styleID, ok := g.styles[key]
	if !ok {
		style, err := g.f.GetStyle(base)
		if err != nil {
			return err
		}
		style.Border = toExcelize(border)
		if styleID, err = g.f.NewStyle(style); err != nil {
			return err
		}
		g.styles[key] = styleID
	}

	return g.f.SetCellStyle(g.name, cell, cell, styleID)
}

// toExcelize converts cell edges to excelize borders. Invisible edges are
// omitted so that writing them clears the side.
func toExcelize(border models.CellBorder) []excelize.Border {
	edges := []struct {
		kind string
		side models.Side
	}{
		{"left", border.Left},
		{"right", border.Right},
		{"top", border.Top},
		{"bottom", border.Bottom},
	}

	var result []excelize.Border
	for _, e := range edges {
		if !e.side.Visible() {
			continue
		}
		color := e.side.Color
		if color == "" {
			color = defaultEdgeColor
		}
		result = append(result, excelize.Border{
			Type:  e.kind,
			Color: color,
			Style: int(e.side.Style),
		})
	}
	return result
}

// fromExcelize converts excelize borders to cell edges. Diagonal borders
// are ignored.
func fromExcelize(borders []excelize.Border) models.CellBorder {
	var result models.CellBorder
	for _, b := range borders {
		style := models.BorderStyle(b.Style)
		if !style.Valid() || style == models.StyleNone {
			continue
		}
		color, err := models.NormalizeColor(b.Color)
		if err != nil || color == defaultEdgeColor {
			color = ""
		}
		side := models.Side{Style: style, Color: color}
		switch b.Type {
		case "left":
			result.Left = side
		case "right":
			result.Right = side
		case "top":
			result.Top = side
		case "bottom":
			result.Bottom = side
		}
	}
	return result
}
