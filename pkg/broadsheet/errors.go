package broadsheet

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidWorkbook indicates the input is not a readable xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook")
