// Package plan loads border plans: HCL files describing several border
// jobs applied to one workbook.
//
// A plan looks like:
//
//	input  = "report.xlsx"
//	output = "report-styled.xlsx"
//
//	border "table" {
//	  sheet   = "Data"
//	  range   = "A1:D20"
//	  outline = "thick"
//	  inside  = "thin"
//	  top     = ["double", "FF0000"]
//	}
//
// Each border block takes sheet, one of range / print_area / data_region,
// and any border option.
package plan

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ukaji3/xlborder-go/pkg/xlborder"
)

// Plan is a decoded plan file.
type Plan struct {
	// Input is the workbook to read. Relative to the plan file when loaded with Load.
	Input string
	// Output is the workbook to write. Empty overwrites Input.
	Output string
	// KeepColor keeps existing edge colors where a job sets no color.
	KeepColor bool
	// Jobs are applied in file order.
	Jobs []xlborder.Job
}

// hclPlanFile represents the top-level structure of a plan file for decoding.
type hclPlanFile struct {
	Input     string       `hcl:"input,optional"`
	Output    string       `hcl:"output,optional"`
	KeepColor bool         `hcl:"keep_color,optional"`
	Borders   []*hclBorder `hcl:"border,block"`
}

// hclBorder is a `border "<name>" { ... }` block. Its attributes are
// decoded by hand because side options are either a string or a tuple.
type hclBorder struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Load parses the plan file at path. Relative input and output paths are
// resolved against the plan file's directory.
func Load(path string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, diags)
	}

	p, err := decode(file.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	p.Input = resolvePath(dir, p.Input)
	p.Output = resolvePath(dir, p.Output)
	return p, nil
}

// Parse parses plan source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan %s: %w", filename, diags)
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Plan, error) {
	var parsed hclPlanFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}

	p := &Plan{
		Input:     parsed.Input,
		Output:    parsed.Output,
		KeepColor: parsed.KeepColor,
		Jobs:      make([]xlborder.Job, 0, len(parsed.Borders)),
	}
	seen := make(map[string]bool)
	for _, b := range parsed.Borders {
		if seen[b.Name] {
			return nil, fmt.Errorf("duplicate border %q", b.Name)
		}
		seen[b.Name] = true

		job, err := decodeBorder(b)
		if err != nil {
			return nil, fmt.Errorf("border %q: %w", b.Name, err)
		}
		p.Jobs = append(p.Jobs, job)
	}
	return p, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
