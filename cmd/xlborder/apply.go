package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlborder-go/pkg/xlborder"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
)

type applyFlags struct {
	target     targetFlags
	outputPath string
	keepColor  bool

	style      string
	color      string
	custom     []int
	outline    string
	inside     string
	horizontal string
	vertical   string
	sides      [models.NumPositions]string
}

// sideFlagNames maps each logical position to its flag.
var sideFlagNames = [models.NumPositions]string{
	models.PositionTop:             "top",
	models.PositionRight:           "right",
	models.PositionBottom:          "bottom",
	models.PositionLeft:            "left",
	models.PositionInnerHorizontal: "inner-horizontal",
	models.PositionInnerVertical:   "inner-vertical",
}

func newApplyCmd(rf *rootFlags) *cobra.Command {
	af := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply [input.xlsx]",
		Short: "Apply a border to one range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, rf, af, args[0])
		},
	}

	flags := cmd.Flags()
	af.target.register(cmd)
	flags.StringVarP(&af.outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	flags.BoolVar(&af.keepColor, "keep-color", false, "Keep existing edge colors where no color is set")

	flags.StringVar(&af.style, "style", xlborder.DefaultStyle, "Base style for every position")
	flags.StringVar(&af.color, "color", "", "Base color (RRGGBB)")
	flags.IntSliceVar(&af.custom, "custom", nil, "Weights top,right,bottom,left[,inner-h,inner-v] (0-3)")
	flags.StringVar(&af.outline, "outline", "", "Style of the four outer edges")
	flags.StringVar(&af.inside, "inside", "", "Style of the inner grid")
	flags.StringVar(&af.horizontal, "horizontal", "", "Style of top, bottom and inner horizontal")
	flags.StringVar(&af.vertical, "vertical", "", "Style of left, right and inner vertical")
	for _, p := range models.Positions {
		flags.StringVar(&af.sides[p], sideFlagNames[p], "", fmt.Sprintf("Style of the %s position (style or style:color)", p))
	}

	return cmd
}

// options builds border options from the flags that were set.
func (af *applyFlags) options(cmd *cobra.Command) (xlborder.Options, error) {
	opts := xlborder.Options{
		Style:      af.style,
		Color:      af.color,
		Outline:    af.outline,
		Inside:     af.inside,
		Horizontal: af.horizontal,
		Vertical:   af.vertical,
	}
	if cmd.Flags().Changed("custom") {
		opts.Custom = af.custom
	}
	for _, p := range models.Positions {
		if af.sides[p] == "" {
			continue
		}
		v, err := xlborder.ParseSideValue(af.sides[p])
		if err != nil {
			return xlborder.Options{}, fmt.Errorf("--%s: %w", sideFlagNames[p], err)
		}
		opts.SetSide(p, v)
	}
	return opts, nil
}

func runApply(cmd *cobra.Command, rf *rootFlags, af *applyFlags, inputPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	target := af.target.target()
	opts, err := af.options(cmd)
	if err != nil {
		return err
	}

	applier := &xlborder.Applier{PreserveColor: af.keepColor, Logger: rf.logger}
	job := xlborder.Job{Name: "apply", Target: target, Options: opts}
	if err := applier.ApplyToFile(inputPath, af.outputPath, job); err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	rf.logger.Info("Border applied.", "input", inputPath, "output", outputOrInput(af.outputPath, inputPath), "target", target.String())
	return nil
}

func outputOrInput(outputPath, inputPath string) string {
	if outputPath == "" {
		return inputPath
	}
	return outputPath
}
