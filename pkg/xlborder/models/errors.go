package models

import "errors"

// ErrInvalidStyleName indicates a border style name outside the supported vocabulary.
var ErrInvalidStyleName = errors.New("invalid border style name")

// ErrInvalidColor indicates a border color that is not an RRGGBB or AARRGGBB hex value.
var ErrInvalidColor = errors.New("invalid border color")

// ErrOutOfBounds indicates a cell range that is empty or exceeds the worksheet extent.
var ErrOutOfBounds = errors.New("range outside worksheet bounds")
