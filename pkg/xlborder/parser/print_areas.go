package parser

import (
	"strings"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print area bounds.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Bounds {
	result := make(map[string][]models.Bounds)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// PrintArea returns the first print area defined for a sheet.
func PrintArea(f *excelize.File, sheetName string) (models.Bounds, bool) {
	areas := ExtractPrintAreas(f)[sheetName]
	if len(areas) == 0 {
		return models.Bounds{}, false
	}
	return areas[0], true
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated
// when a sheet has several areas.
func parsePrintAreaReference(ref string) (string, []models.Bounds) {
	var areas []models.Bounds
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		rangeStr := part
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.Trim(part[:idx], "'")
			if sheetName == "" {
				sheetName = sheet
			}
			rangeStr = part[idx+1:]
		}

		if b, err := ParseRange(rangeStr); err == nil {
			areas = append(areas, b)
		}
	}

	return sheetName, areas
}
