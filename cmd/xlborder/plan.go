package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlborder-go/pkg/xlborder"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/plan"
)

type planFlags struct {
	inputPath  string
	outputPath string
}

func newPlanCmd(rf *rootFlags) *cobra.Command {
	pf := &planFlags{}

	cmd := &cobra.Command{
		Use:   "plan [plan.hcl]",
		Short: "Apply every border of an HCL plan file",
		Long: `plan applies all border blocks of a plan file to one workbook and
saves it once. Any failing border aborts before the workbook is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(rf, pf, args[0])
		},
	}

	cmd.Flags().StringVar(&pf.inputPath, "input", "", "Input workbook (overrides the plan's input)")
	cmd.Flags().StringVarP(&pf.outputPath, "output", "o", "", "Output workbook (overrides the plan's output)")
	return cmd
}

func runPlan(rf *rootFlags, pf *planFlags, planPath string) error {
	p, err := plan.Load(planPath)
	if err != nil {
		return err
	}

	input, output := p.Input, p.Output
	if pf.inputPath != "" {
		input = pf.inputPath
	}
	if pf.outputPath != "" {
		output = pf.outputPath
	}
	if input == "" {
		return fmt.Errorf("plan %s: no input workbook; set input in the plan or pass --input", planPath)
	}

	applier := &xlborder.Applier{PreserveColor: p.KeepColor, Logger: rf.logger}
	if err := applier.ApplyToFile(input, output, p.Jobs...); err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	rf.logger.Info("Plan applied.", "plan", planPath, "jobs", len(p.Jobs), "output", outputOrInput(output, input))
	return nil
}
