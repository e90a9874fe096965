// Package ingestion turns uploaded résumé files into clean plain text.
package ingestion

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for file extensions no extractor handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ExtractionError represents a failure to extract text from a document.
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error (%s): %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
