package ranking

import "fmt"

// ModelError reports an unusable vector model: inconsistent shapes, missing
// roles or a failure while computing similarities.
type ModelError struct {
	Message string
	Cause   error
}

func (e *ModelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vector model error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vector model error: %s", e.Message)
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}
