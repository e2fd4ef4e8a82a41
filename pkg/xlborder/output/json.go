// Package output serializes border reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

// ToJSON serializes a border report to JSON.
func ToJSON(report *models.SheetBorders, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
