package xlborder

import (
	"io"
	"log/slog"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/parser"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/sheet"
	"github.com/xuri/excelize/v2"
)

// Applier applies borders to grids. The zero value writes the resolved
// sides exactly as resolved.
type Applier struct {
	// PreserveColor keeps the color of an existing edge when the new edge
	// is visible but has no color of its own.
	PreserveColor bool
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (a *Applier) logger() *slog.Logger {
	if a.Logger == nil {
		return discardLogger
	}
	return a.Logger
}

// ApplyBorder applies a border to the cells of an A1-style range.
// The grid is left unmodified when any option or the range is invalid.
func ApplyBorder(g Grid, cellRange string, opts Options) error {
	var a Applier
	return a.Apply(g, cellRange, opts)
}

// ApplyBorderBounds applies a border to the cells inside b.
func ApplyBorderBounds(g Grid, b models.Bounds, opts Options) error {
	var a Applier
	return a.ApplyBounds(g, b, opts)
}

// Apply applies a border to the cells of an A1-style range.
func (a *Applier) Apply(g Grid, cellRange string, opts Options) error {
	b, err := parser.ParseRange(cellRange)
	if err != nil {
		return err
	}
	return a.ApplyBounds(g, b, opts)
}

// ApplyBounds applies a border to the cells inside b. Options and bounds are
// fully validated before the first cell is written.
func (a *Applier) ApplyBounds(g Grid, b models.Bounds, opts Options) error {
	sides, err := Resolve(opts)
	if err != nil {
		return err
	}
	if err := checkBounds(g, b); err != nil {
		return err
	}

	a.logger().Debug("Applying border.", "bounds", b.String(), "cells", b.Cells(), "preserve_color", a.PreserveColor)
	return assign(g, sides, b, a.PreserveColor)
}

// Job is a named border applied to one target of a workbook.
type Job struct {
	Name    string
	Target  Target
	Options Options
}

// preparedJob is a job whose sheet, bounds and sides are known.
type preparedJob struct {
	job    Job
	grid   *sheet.Grid
	bounds models.Bounds
	sides  models.SideSet
}

// ApplyFile applies every job to an open workbook. All jobs are validated
// before any cell is written, so a failing job leaves the workbook unchanged.
func (a *Applier) ApplyFile(f *excelize.File, jobs ...Job) error {
	prepared := make([]preparedJob, 0, len(jobs))
	for _, job := range jobs {
		p, err := prepare(f, job)
		if err != nil {
			return err
		}
		prepared = append(prepared, p)
	}

	for _, p := range prepared {
		a.logger().Debug("Applying border job.",
			"job", p.job.Name, "sheet", p.grid.Name(), "bounds", p.bounds.String(), "cells", p.bounds.Cells())
		if err := assign(p.grid, p.sides, p.bounds, a.PreserveColor); err != nil {
			return NewBorderError(p.job.Name, p.grid.Name(), "assign", err)
		}
	}
	return nil
}

func prepare(f *excelize.File, job Job) (preparedJob, error) {
	g, err := sheet.Open(f, job.Target.Sheet)
	if err != nil {
		return preparedJob{}, NewBorderError(job.Name, job.Target.Sheet, "open", err)
	}
	b, err := job.Target.Bounds(f, g.Name())
	if err != nil {
		return preparedJob{}, NewBorderError(job.Name, g.Name(), "target", err)
	}
	sides, err := Resolve(job.Options)
	if err != nil {
		return preparedJob{}, NewBorderError(job.Name, g.Name(), "resolve", err)
	}
	if err := checkBounds(g, b); err != nil {
		return preparedJob{}, NewBorderError(job.Name, g.Name(), "bounds", err)
	}
	return preparedJob{job: job, grid: g, bounds: b, sides: sides}, nil
}

// ApplyToFile opens the workbook at path, applies the jobs and saves the
// result to outPath, or back to path when outPath is empty. Nothing is saved
// when a job fails.
func (a *Applier) ApplyToFile(path, outPath string, jobs ...Job) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := a.ApplyFile(f, jobs...); err != nil {
		return err
	}

	if outPath == "" {
		outPath = path
	}
	if err := f.SaveAs(outPath); err != nil {
		return NewBorderError("", "", "save", err)
	}
	a.logger().Debug("Saved workbook.", "path", outPath, "jobs", len(jobs))
	return nil
}

// ApplyToFile applies jobs to the workbook at path with a default Applier.
func ApplyToFile(path, outPath string, jobs ...Job) error {
	var a Applier
	return a.ApplyToFile(path, outPath, jobs...)
}
