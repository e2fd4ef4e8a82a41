package xlborder

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

func TestOptionsFromMap(t *testing.T) {
	opts, err := OptionsFromMap(map[string]any{
		"style":            "medium",
		"color":            "FF0000",
		"custom":           []any{3, 2.0, int64(3), 2},
		"outline":          "thick",
		"inside":           nil,
		"vertical":         "dashed",
		"left":             "double",
		"top":              []any{"thick", "00FF00"},
		"bottom":           [2]string{"hair", "0000FF"},
		"inner_horizontal": models.Side{Style: models.StyleDotted},
		"inner_vertical":   PairSide("thin", "123456"),
	})
	if err != nil {
		t.Fatalf("OptionsFromMap failed: %v", err)
	}

	sides, err := Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	expected := models.SideSet{
		side(models.StyleThick, "00FF00"),
		side(models.StyleDashed, "FF0000"),
		side(models.StyleHair, "0000FF"),
		side(models.StyleDouble, "FF0000"),
		side(models.StyleDotted, ""),
		side(models.StyleThin, "123456"),
	}
	if diff := cmp.Diff(expected, sides); diff != "" {
		t.Errorf("resolved mismatch (-expected +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 3, 2}, opts.Custom); diff != "" {
		t.Errorf("custom mismatch:\n%s", diff)
	}
}

func TestOptionsFromMapDefaults(t *testing.T) {
	opts, err := OptionsFromMap(nil)
	if err != nil {
		t.Fatalf("OptionsFromMap failed: %v", err)
	}
	if opts.BaseStyle() != "thin" || opts.Custom != nil || opts.Left != nil {
		t.Errorf("OptionsFromMap(nil) = %+v", opts)
	}
}

func TestOptionsFromMapErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected error
	}{
		{"unknown key", map[string]any{"diagonal": "thin"}, ErrUnknownOption},
		{"unknown key beside valid ones", map[string]any{"style": "thin", "weight": 2}, ErrUnknownOption},
		{"style not a string", map[string]any{"style": 2}, ErrInvalidOptionValue},
		{"custom not a list", map[string]any{"custom": "3,2,3,2"}, ErrInvalidOptionValue},
		{"custom with fraction", map[string]any{"custom": []any{1, 1.5, 1, 1}}, ErrInvalidOptionValue},
		{"custom with infinity", map[string]any{"custom": []any{1, math.Inf(1), 1, 1}}, ErrInvalidOptionValue},
		{"custom with negative infinity", map[string]any{"custom": []any{1, math.Inf(-1), 1, 1}}, ErrInvalidOptionValue},
		{"custom with NaN", map[string]any{"custom": []any{1, math.NaN(), 1, 1}}, ErrInvalidOptionValue},
		{"custom past int range", map[string]any{"custom": []any{1, 1e300, 1, 1}}, ErrInvalidOptionValue},
		{"side with three elements", map[string]any{"left": []any{"thin", "FF0000", "x"}}, ErrInvalidOptionValue},
		{"side of wrong type", map[string]any{"right": 3}, ErrInvalidOptionValue},
	}

	for _, tt := range tests {
		if _, err := OptionsFromMap(tt.input); !errors.Is(err, tt.expected) {
			t.Errorf("%s: error = %v, expected %v", tt.name, err, tt.expected)
		}
	}
}

func TestParseSideValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Side
	}{
		{"thick", side(models.StyleThick, "ABCDEF")},
		{"double:FF0000", side(models.StyleDouble, "FF0000")},
		{"hair:", side(models.StyleHair, "")},
	}

	for _, tt := range tests {
		v, err := ParseSideValue(tt.input)
		if err != nil {
			t.Errorf("ParseSideValue(%q) failed: %v", tt.input, err)
			continue
		}
		result, err := v.resolve("ABCDEF")
		if err != nil {
			t.Errorf("resolve(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseSideValue(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
		if v.String() != tt.input {
			t.Errorf("String() = %q, expected %q", v.String(), tt.input)
		}
	}

	if _, err := ParseSideValue(":FF0000"); !errors.Is(err, ErrInvalidOptionValue) {
		t.Errorf("ParseSideValue(:FF0000) error = %v", err)
	}
}
