package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/output"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/parser"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/sheet"
	"github.com/xuri/excelize/v2"
)

type inspectFlags struct {
	target     targetFlags
	outputPath string
	pretty     bool
}

func newInspectCmd(rf *rootFlags) *cobra.Command {
	inf := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the borders of a range as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, rf, inf, args[0])
		},
	}

	inf.target.register(cmd)
	cmd.Flags().StringVarP(&inf.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&inf.pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runInspect(cmd *cobra.Command, rf *rootFlags, inf *inspectFlags, inputPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	report, err := inspect(f, filepath.Base(inputPath), inf.target)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.ToJSON(report, inf.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if inf.outputPath != "" {
		if err := os.WriteFile(inf.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		rf.logger.Debug("Wrote border report.", "path", inf.outputPath, "rows", len(report.Rows))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func inspect(f *excelize.File, bookName string, tf targetFlags) (*models.SheetBorders, error) {
	g, err := sheet.Open(f, tf.sheet)
	if err != nil {
		return nil, err
	}
	b, err := tf.target().Bounds(f, g.Name())
	if err != nil {
		return nil, err
	}
	ref, err := parser.FormatRange(b)
	if err != nil {
		return nil, err
	}
	rows, err := parser.ExtractBorders(g, b)
	if err != nil {
		return nil, err
	}

	return &models.SheetBorders{
		BookName:  bookName,
		SheetName: g.Name(),
		Range:     ref,
		Area:      b,
		Rows:      rows,
	}, nil
}
