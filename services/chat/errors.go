package chat

import "fmt"

// FlowError signals that a conversation points at a step the catalog does not
// contain. It is surfaced to the caller as a degraded response steering the
// user back to the entry step, never as a process failure.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewFlowError builds a FlowError for a missing step id.
func NewFlowError(stepID string) error {
	return &FlowError{
		Code:    "flowError",
		Message: fmt.Sprintf("step %q not found in catalog", stepID),
	}
}
