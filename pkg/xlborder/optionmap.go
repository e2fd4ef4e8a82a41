package xlborder

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

// OptionKeys lists the keys OptionsFromMap recognizes.
var OptionKeys = []string{
	"style", "color", "custom",
	"outline", "inside", "horizontal", "vertical",
	"left", "right", "top", "bottom", "inner_horizontal", "inner_vertical",
}

var sideKeys = map[string]models.Position{
	"top":              models.PositionTop,
	"right":            models.PositionRight,
	"bottom":           models.PositionBottom,
	"left":             models.PositionLeft,
	"inner_horizontal": models.PositionInnerHorizontal,
	"inner_vertical":   models.PositionInnerVertical,
}

// OptionsFromMap builds Options from keyword-style input such as decoded
// JSON or HCL attributes. A nil value leaves the option absent.
//
// Side keys accept a style string, a two-element [style, color] list, a
// models.Side or a *SideValue. "custom" accepts a list of integers.
func OptionsFromMap(m map[string]any) (Options, error) {
	keys := slices.Sorted(maps.Keys(m))
	for _, k := range keys {
		if !slices.Contains(OptionKeys, k) {
			return Options{}, fmt.Errorf("%w: %q", ErrUnknownOption, k)
		}
	}

	opts := DefaultOptions()
	for _, k := range keys {
		v := m[k]
		if v == nil {
			continue
		}

		var err error
		switch k {
		case "style":
			opts.Style, err = stringOption(k, v)
		case "color":
			opts.Color, err = stringOption(k, v)
		case "custom":
			opts.Custom, err = weightsOption(k, v)
		case "outline":
			opts.Outline, err = stringOption(k, v)
		case "inside":
			opts.Inside, err = stringOption(k, v)
		case "horizontal":
			opts.Horizontal, err = stringOption(k, v)
		case "vertical":
			opts.Vertical, err = stringOption(k, v)
		default:
			var sv *SideValue
			sv, err = sideOption(k, v)
			opts.SetSide(sideKeys[k], sv)
		}
		if err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

func stringOption(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOptionValue, key, v)
	}
	return s, nil
}

func weightsOption(key string, v any) ([]int, error) {
	switch w := v.(type) {
	case []int:
		return slices.Clone(w), nil
	case []any:
		weights := make([]int, len(w))
		for i, e := range w {
			n, ok := toInt(e)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be an integer, got %v", ErrInvalidOptionValue, key, i, e)
			}
			weights[i] = n
		}
		return weights, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a list of integers, got %T", ErrInvalidOptionValue, key, v)
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsInf(n, 0) || n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func sideOption(key string, v any) (*SideValue, error) {
	switch s := v.(type) {
	case string:
		return StyleSide(s), nil
	case [2]string:
		return PairSide(s[0], s[1]), nil
	case []string:
		if len(s) == 2 {
			return PairSide(s[0], s[1]), nil
		}
	case []any:
		if len(s) == 2 {
			style, ok1 := s[0].(string)
			color, ok2 := s[1].(string)
			if ok1 && ok2 {
				return PairSide(style, color), nil
			}
		}
	case models.Side:
		return RawSide(s), nil
	case *SideValue:
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s must be a style or a [style, color] pair, got %v", ErrInvalidOptionValue, key, v)
}
