package plan

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/ukaji3/xlborder-go/pkg/xlborder"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeBorder turns a border block into a job. Target attributes are
// consumed here; everything else is handed to xlborder.OptionsFromMap,
// which rejects unknown keys.
func decodeBorder(b *hclBorder) (xlborder.Job, error) {
	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return xlborder.Job{}, diags
	}

	job := xlborder.Job{Name: b.Name}
	options := make(map[string]any)
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return xlborder.Job{}, diags
		}

		var err error
		switch name {
		case "sheet":
			err = gocty.FromCtyValue(val, &job.Target.Sheet)
		case "range":
			err = gocty.FromCtyValue(val, &job.Target.Range)
		case "print_area":
			err = gocty.FromCtyValue(val, &job.Target.PrintArea)
		case "data_region":
			err = gocty.FromCtyValue(val, &job.Target.DataRegion)
		default:
			options[name], err = toGo(val)
		}
		if err != nil {
			return xlborder.Job{}, fmt.Errorf("%w: %s: %v", xlborder.ErrInvalidOptionValue, name, rangeError(attr, err))
		}
	}

	opts, err := xlborder.OptionsFromMap(options)
	if err != nil {
		return xlborder.Job{}, err
	}
	job.Options = opts
	return job, nil
}

// toGo converts an attribute value to the plain Go shapes OptionsFromMap
// accepts: string, int, bool and []any.
func toGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	t := v.Type()
	switch {
	case t == cty.String:
		return v.AsString(), nil
	case t == cty.Number:
		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return nil, err
		}
		return n, nil
	case t == cty.Bool:
		return v.True(), nil
	case t.IsTupleType() || t.IsListType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			e, err := toGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type %s", t.FriendlyName())
	}
}

func rangeError(attr *hcl.Attribute, err error) error {
	return fmt.Errorf("%s: %w", attr.Range.String(), err)
}
