package usecase

import "fmt"

// ImportError aborts an import entirely: either a required column is
// missing from the header (Row == 0) or a required field is blank in a
// data row (Row is 1-based).
type ImportError struct {
	Row    int
	Column string
}

func (e *ImportError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("import: required column %q missing from header", e.Column)
	}
	return fmt.Sprintf("import: row %d: required column %q is blank or invalid", e.Row, e.Column)
}

func IsImportError(err error) bool {
	_, ok := err.(*ImportError)
	return ok
}

// ValidationError rejects a single field edit; the prior value is
// retained.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
