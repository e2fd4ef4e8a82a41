package xlborder

import (
	"fmt"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

// weightStyles maps custom weights to styles.
var weightStyles = map[int]models.BorderStyle{
	0: models.StyleNone,
	1: models.StyleThin,
	2: models.StyleMedium,
	3: models.StyleThick,
}

// layer holds the sides one priority band supplies. Positions it does not
// mention keep the value of the layers below.
type layer map[models.Position]models.Side

// layerFunc builds one layer from the options and the normalized base color.
type layerFunc func(opts Options, color string) (layer, error)

// layers lists the priority bands, lowest first.
var layers = []layerFunc{
	baseLayer,
	customLayer,
	groupLayer,
	axisLayer,
	explicitLayer,
}

// Resolve merges the option layers into one Side per logical position.
// It has no side effects.
func Resolve(opts Options) (models.SideSet, error) {
	color, err := models.NormalizeColor(opts.Color)
	if err != nil {
		return models.SideSet{}, fmt.Errorf("color: %w", err)
	}

	var sides models.SideSet
	for _, build := range layers {
		l, err := build(opts, color)
		if err != nil {
			return models.SideSet{}, err
		}
		for pos, side := range l {
			sides[pos] = side
		}
	}
	return sides, nil
}

func baseLayer(opts Options, color string) (layer, error) {
	style, err := models.ParseBorderStyle(opts.BaseStyle())
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	l := make(layer, models.NumPositions)
	for _, pos := range models.Positions {
		l[pos] = models.Side{Style: style, Color: color}
	}
	return l, nil
}

func customLayer(opts Options, color string) (layer, error) {
	if opts.Custom == nil {
		return nil, nil
	}
	if n := len(opts.Custom); n != 4 && n != 6 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCustomLength, n)
	}

	weights := make([]int, models.NumPositions)
	copy(weights, opts.Custom)

	l := make(layer, models.NumPositions)
	for i, w := range weights {
		style, ok := weightStyles[w]
		if !ok {
			return nil, fmt.Errorf("%w: custom[%d] = %d (expected one of 0, 1, 2, 3)", ErrInvalidWeight, i, w)
		}
		l[models.Positions[i]] = models.Side{Style: style, Color: color}
	}
	return l, nil
}

func groupLayer(opts Options, color string) (layer, error) {
	l := make(layer)
	if err := fill(l, "outline", opts.Outline, color,
		models.PositionTop, models.PositionRight, models.PositionBottom, models.PositionLeft); err != nil {
		return nil, err
	}
	if err := fill(l, "inside", opts.Inside, color,
		models.PositionInnerHorizontal, models.PositionInnerVertical); err != nil {
		return nil, err
	}
	return l, nil
}

func axisLayer(opts Options, color string) (layer, error) {
	l := make(layer)
	if err := fill(l, "horizontal", opts.Horizontal, color,
		models.PositionTop, models.PositionBottom, models.PositionInnerHorizontal); err != nil {
		return nil, err
	}
	if err := fill(l, "vertical", opts.Vertical, color,
		models.PositionLeft, models.PositionRight, models.PositionInnerVertical); err != nil {
		return nil, err
	}
	return l, nil
}

func explicitLayer(opts Options, color string) (layer, error) {
	l := make(layer)
	for _, pos := range models.Positions {
		v := opts.Side(pos)
		if v == nil {
			continue
		}
		side, err := v.resolve(color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pos, err)
		}
		l[pos] = side
	}
	return l, nil
}

// fill sets every position in positions to style drawn in color. An empty
// style leaves l untouched.
func fill(l layer, name, style, color string, positions ...models.Position) error {
	if style == "" {
		return nil
	}
	s, err := models.ParseBorderStyle(style)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for _, pos := range positions {
		l[pos] = models.Side{Style: s, Color: color}
	}
	return nil
}
