package xlborder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

func side(style models.BorderStyle, color string) models.Side {
	return models.Side{Style: style, Color: color}
}

func uniform(s models.Side) models.SideSet {
	var set models.SideSet
	for i := range set {
		set[i] = s
	}
	return set
}

func TestResolve(t *testing.T) {
	thin := side(models.StyleThin, "")
	none := side(models.StyleNone, "")

	tests := []struct {
		name     string
		opts     Options
		expected models.SideSet
	}{
		{
			name:     "zero options default to thin",
			opts:     Options{},
			expected: uniform(thin),
		},
		{
			name:     "base style and color",
			opts:     Options{Style: "thick", Color: "0000ff"},
			expected: uniform(side(models.StyleThick, "0000FF")),
		},
		{
			name: "six weights",
			opts: Options{Custom: []int{3, 2, 3, 2, 1, 2}},
			expected: models.SideSet{
				side(models.StyleThick, ""), side(models.StyleMedium, ""),
				side(models.StyleThick, ""), side(models.StyleMedium, ""),
				thin, side(models.StyleMedium, ""),
			},
		},
		{
			name: "four weights clear the inner positions",
			opts: Options{Style: "double", Custom: []int{3, 2, 3, 2}},
			expected: models.SideSet{
				side(models.StyleThick, ""), side(models.StyleMedium, ""),
				side(models.StyleThick, ""), side(models.StyleMedium, ""),
				none, none,
			},
		},
		{
			name: "weights carry the base color",
			opts: Options{Color: "00FF00", Custom: []int{0, 1, 2, 3}},
			expected: models.SideSet{
				side(models.StyleNone, "00FF00"), side(models.StyleThin, "00FF00"),
				side(models.StyleMedium, "00FF00"), side(models.StyleThick, "00FF00"),
				side(models.StyleNone, "00FF00"), side(models.StyleNone, "00FF00"),
			},
		},
		{
			name: "outline leaves inner positions at base",
			opts: Options{Outline: "medium"},
			expected: models.SideSet{
				side(models.StyleMedium, ""), side(models.StyleMedium, ""),
				side(models.StyleMedium, ""), side(models.StyleMedium, ""),
				thin, thin,
			},
		},
		{
			name: "outline and inside",
			opts: Options{Outline: "medium", Inside: "dotted"},
			expected: models.SideSet{
				side(models.StyleMedium, ""), side(models.StyleMedium, ""),
				side(models.StyleMedium, ""), side(models.StyleMedium, ""),
				side(models.StyleDotted, ""), side(models.StyleDotted, ""),
			},
		},
		{
			name: "outline overrides custom",
			opts: Options{Custom: []int{1, 1, 1, 1, 1, 1}, Outline: "thick"},
			expected: models.SideSet{
				side(models.StyleThick, ""), side(models.StyleThick, ""),
				side(models.StyleThick, ""), side(models.StyleThick, ""),
				thin, thin,
			},
		},
		{
			name: "axis groups override outline and inside",
			opts: Options{Outline: "double", Inside: "dashed", Horizontal: "thin", Vertical: "thick"},
			expected: models.SideSet{
				thin, side(models.StyleThick, ""),
				thin, side(models.StyleThick, ""),
				thin, side(models.StyleThick, ""),
			},
		},
		{
			name: "explicit sides win over every group",
			opts: Options{
				Color:         "0000FF",
				Custom:        []int{1, 1, 1, 1, 1, 1},
				Outline:       "medium",
				Vertical:      "thick",
				Left:          StyleSide("double"),
				Top:           PairSide("thick", "FF0000"),
				InnerVertical: RawSide(side(models.StyleHair, "123456")),
			},
			expected: models.SideSet{
				side(models.StyleThick, "FF0000"), side(models.StyleThick, "0000FF"),
				side(models.StyleMedium, "0000FF"), side(models.StyleDouble, "0000FF"),
				side(models.StyleThin, "0000FF"), side(models.StyleHair, "123456"),
			},
		},
		{
			name: "explicit none clears a position",
			opts: Options{InnerHorizontal: StyleSide("none"), InnerVertical: RawSide(models.Side{})},
			expected: models.SideSet{
				thin, thin, thin, thin, none, none,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Resolve(tt.opts)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Resolve mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestResolveFourWeightsAlwaysClearInner(t *testing.T) {
	for a := 0; a <= 3; a++ {
		for b := 0; b <= 3; b++ {
			weights := []int{a, b, 3 - a, 3 - b}
			result, err := Resolve(Options{Style: "thick", Inside: "", Custom: weights})
			if err != nil {
				t.Fatalf("Resolve(%v) failed: %v", weights, err)
			}
			if result[models.PositionInnerHorizontal].Visible() || result[models.PositionInnerVertical].Visible() {
				t.Errorf("Resolve(%v) inner positions = %v, %v, expected none", weights,
					result[models.PositionInnerHorizontal], result[models.PositionInnerVertical])
			}
		}
	}
}

func TestResolveColorInheritance(t *testing.T) {
	inherited, err := Resolve(Options{Color: "FF0000", Left: StyleSide("double")})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	paired, err := Resolve(Options{Color: "FF0000", Left: PairSide("double", "FF0000")})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if inherited[models.PositionLeft] != paired[models.PositionLeft] {
		t.Errorf("left = %v, expected %v", inherited[models.PositionLeft], paired[models.PositionLeft])
	}
}

func TestResolveIsPure(t *testing.T) {
	opts := Options{Custom: []int{3, 2, 3, 2}, Left: StyleSide("double")}
	first, err := Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Resolve not deterministic:\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 3, 2}, opts.Custom); diff != "" {
		t.Errorf("Resolve modified custom:\n%s", diff)
	}
}

func TestResolveNormalizesRawSideColor(t *testing.T) {
	sides, err := Resolve(Options{Bottom: RawSide(models.Side{Style: models.StyleDashed, Color: "#80ff00aa"})})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if diff := cmp.Diff(side(models.StyleDashed, "FF00AA"), sides[models.PositionBottom]); diff != "" {
		t.Errorf("bottom mismatch (-expected +got):\n%s", diff)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected error
	}{
		{"custom too short", Options{Custom: []int{1, 2, 3}}, ErrInvalidCustomLength},
		{"custom of five", Options{Custom: []int{1, 2, 3, 1, 2}}, ErrInvalidCustomLength},
		{"empty custom", Options{Custom: []int{}}, ErrInvalidCustomLength},
		{"weight out of range", Options{Custom: []int{1, 2, 3, 9}}, ErrInvalidWeight},
		{"negative weight", Options{Custom: []int{1, 2, 3, 1, -1, 0}}, ErrInvalidWeight},
		{"bad base style", Options{Style: "bold"}, ErrInvalidStyleName},
		{"bad outline", Options{Outline: "wavy"}, ErrInvalidStyleName},
		{"bad inside", Options{Inside: "wavy"}, ErrInvalidStyleName},
		{"bad horizontal", Options{Horizontal: "wavy"}, ErrInvalidStyleName},
		{"bad vertical", Options{Vertical: "wavy"}, ErrInvalidStyleName},
		{"bad side string", Options{Left: StyleSide("wavy")}, ErrInvalidStyleName},
		{"bad side pair style", Options{Top: PairSide("wavy", "FF0000")}, ErrInvalidStyleName},
		{"bad side pair color", Options{Top: PairSide("thin", "red")}, ErrInvalidColor},
		{"bad base color", Options{Color: "12"}, ErrInvalidColor},
		{"raw side style out of range", Options{Top: RawSide(models.Side{Style: 99})}, ErrInvalidStyleName},
		{"raw side bad color", Options{Left: RawSide(models.Side{Style: models.StyleThin, Color: "notacolor"})}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.opts)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Resolve error = %v, expected %v", err, tt.expected)
			}
		})
	}
}
