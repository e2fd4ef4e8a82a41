package models

// CellBorderRow represents the bordered cells of a single row.
type CellBorderRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column name (e.g. "B") to the cell's edges.
	C map[string]CellBorder `json:"c"`
}

// SheetBorders represents the borders found in a range of one sheet.
type SheetBorders struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the range belongs to.
	SheetName string `json:"sheet_name"`
	// Range is the inspected range in A1 notation.
	Range string `json:"range"`
	// Area is the inspected range bounds.
	Area Bounds `json:"area"`
	// Rows contains rows with at least one visible edge.
	Rows []CellBorderRow `json:"rows,omitempty"`
}
