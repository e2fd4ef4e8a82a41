package parser

import (
	"testing"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/xuri/excelize/v2"
)

func TestDetectDataRegion(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "Header1")
	f.SetCellValue(sheetName, "C2", "Header2")
	f.SetCellValue(sheetName, "B3", 100)
	f.SetCellValue(sheetName, "D5", 200.5)

	b, ok, err := DetectDataRegion(f, sheetName, DefaultRegionParams())
	if err != nil {
		t.Fatalf("DetectDataRegion failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a data region")
	}
	if expected := models.NewBounds(2, 5, 2, 4); b != expected {
		t.Errorf("region = %v, expected %v", b, expected)
	}

	sparse := RegionParams{DensityMin: 0.5, MinNonemptyCells: 1}
	if _, ok, _ := DetectDataRegion(f, sheetName, sparse); ok {
		t.Error("expected sparse region to be rejected")
	}
}

func TestDetectDataRegionEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, ok, err := DetectDataRegion(f, "Sheet1", DefaultRegionParams())
	if err != nil {
		t.Fatalf("DetectDataRegion failed: %v", err)
	}
	if ok {
		t.Error("expected no region on an empty sheet")
	}
}

func TestScanRows(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]string
		area  models.Bounds
		cells int
	}{
		{"empty", nil, models.Bounds{}, 0},
		{"blank strings only", [][]string{{"", ""}, {""}}, models.Bounds{}, 0},
		{"single value", [][]string{{}, {"", "", "x"}}, models.NewBounds(2, 2, 3, 3), 1},
		{"ragged rows", [][]string{{"", "a"}, {"b"}, {"", "", "", "c"}}, models.NewBounds(1, 3, 1, 4), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scanRows(tt.rows)
			if s.area != tt.area || s.cells != tt.cells {
				t.Errorf("scanRows = %v (%d cells), expected %v (%d cells)", s.area, s.cells, tt.area, tt.cells)
			}
		})
	}
}

func TestDetectDataRegionMinCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "only")

	params := RegionParams{DensityMin: 0, MinNonemptyCells: 2}
	if _, ok, _ := DetectDataRegion(f, "Sheet1", params); ok {
		t.Error("expected a region below MinNonemptyCells to be rejected")
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$B$2:$D$8",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	b, ok := PrintArea(f, "Sheet1")
	if !ok {
		t.Fatal("expected a print area")
	}
	if expected := models.NewBounds(2, 8, 2, 4); b != expected {
		t.Errorf("print area = %v, expected %v", b, expected)
	}
	if _, ok := PrintArea(f, "Other"); ok {
		t.Error("unexpected print area for Other")
	}
}
