package main

import (
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlborder-go/pkg/xlborder"
)

// targetFlags selects the sheet and cells a command works on.
type targetFlags struct {
	sheet      string
	cellRange  string
	printArea  bool
	dataRegion bool
}

func (tf *targetFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&tf.sheet, "sheet", "", "Sheet name (default: first sheet)")
	flags.StringVar(&tf.cellRange, "range", "", "Cell range, e.g. A1:C3")
	flags.BoolVar(&tf.printArea, "print-area", false, "Use the sheet's print area")
	flags.BoolVar(&tf.dataRegion, "data-region", false, "Use the bounding box of non-empty cells")
	cmd.MarkFlagsMutuallyExclusive("range", "print-area", "data-region")
	cmd.MarkFlagsOneRequired("range", "print-area", "data-region")
}

func (tf *targetFlags) target() xlborder.Target {
	return xlborder.Target{
		Sheet:      tf.sheet,
		Range:      tf.cellRange,
		PrintArea:  tf.printArea,
		DataRegion: tf.dataRegion,
	}
}
