package sheet

import "errors"

// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .csv.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrNoRows indicates the workbook has no data rows after the header.
var ErrNoRows = errors.New("workbook has no data rows")

// ErrSheetNotFound is returned when the configured worksheet does not exist.
var ErrSheetNotFound = errors.New("worksheet not found")
