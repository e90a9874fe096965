// Package catalog loads the skill taxonomy, the job-role catalog, the coach
// knowledge base and the TF-IDF model artifact.
package catalog

import "fmt"

// LoadError represents an error reading, parsing or validating a data file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("load error: %s (%s)", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
