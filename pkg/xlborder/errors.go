package xlborder

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlborder-go/pkg/xlborder/models"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/parser"
	"github.com/ukaji3/xlborder-go/pkg/xlborder/sheet"
)

// ErrInvalidRangeSyntax indicates a malformed A1-style range string.
var ErrInvalidRangeSyntax = parser.ErrInvalidRangeSyntax

// ErrInvalidCustomLength indicates a weight tuple whose length is not 4 or 6.
var ErrInvalidCustomLength = errors.New("custom must have 4 or 6 elements")

// ErrInvalidWeight indicates a weight outside 0..3.
var ErrInvalidWeight = errors.New("invalid border weight")

// ErrInvalidStyleName indicates an unrecognized border style name.
var ErrInvalidStyleName = models.ErrInvalidStyleName

// ErrInvalidColor indicates a malformed border color.
var ErrInvalidColor = models.ErrInvalidColor

// ErrUnknownOption indicates an unrecognized option key.
var ErrUnknownOption = errors.New("unknown option")

// ErrInvalidOptionValue indicates an option value of the wrong type.
var ErrInvalidOptionValue = errors.New("invalid option value")

// ErrOutOfBounds indicates a range that is empty or exceeds the worksheet.
var ErrOutOfBounds = models.ErrOutOfBounds

// ErrSheetNotFound indicates the target worksheet does not exist.
var ErrSheetNotFound = sheet.ErrSheetNotFound

// ErrInvalidTarget indicates a target that names no range, or more than one.
var ErrInvalidTarget = errors.New("invalid target")

// BorderError represents an error while applying a border job to a workbook.
type BorderError struct {
	Job   string
	Sheet string
	Stage string // "open", "target", "resolve", "bounds", "assign", "save"
	Err   error
}

func (e *BorderError) Error() string {
	if e.Job == "" {
		return fmt.Sprintf("border error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
	}
	return fmt.Sprintf("border error in job %q, sheet %q (%s): %v", e.Job, e.Sheet, e.Stage, e.Err)
}

func (e *BorderError) Unwrap() error {
	return e.Err
}

// NewBorderError creates a new BorderError.
func NewBorderError(job, sheetName, stage string, err error) *BorderError {
	return &BorderError{
		Job:   job,
		Sheet: sheetName,
		Stage: stage,
		Err:   err,
	}
}
