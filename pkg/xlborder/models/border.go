package models

// CellBorder holds the four physical edges drawn on a single cell.
type CellBorder struct {
	Top    Side `json:"top"`
	Right  Side `json:"right"`
	Bottom Side `json:"bottom"`
	Left   Side `json:"left"`
}

// Empty reports whether no edge of the cell is visible.
func (c CellBorder) Empty() bool {
	return !c.Top.Visible() && !c.Right.Visible() && !c.Bottom.Visible() && !c.Left.Visible()
}
