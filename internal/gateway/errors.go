package gateway

import (
	"fmt"

	"github.com/ziadkadry99/codeassist/internal/prompt"
)

// failureMessages are the fixed, client-facing messages per operation.
var failureMessages = map[prompt.Operation]string{
	prompt.OpConvert: "Code conversion failed",
	prompt.OpDebug:   "Code debugging failed",
	prompt.OpQuality: "Code quality check failed",
}

// FailureMessage returns the client-facing failure message for op.
func FailureMessage(op prompt.Operation) string {
	if msg, ok := failureMessages[op]; ok {
		return msg
	}
	return "Operation failed"
}

// OperationFailedError reports that the upstream call for an operation
// failed. Err holds the cause for logging; Message is safe to return to clients.
type OperationFailedError struct {
	Op  prompt.Operation
	Err error
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

func (e *OperationFailedError) Unwrap() error { return e.Err }

// Message returns the generic message for the failed operation.
func (e *OperationFailedError) Message() string {
	return FailureMessage(e.Op)
}

// ValidationError reports a request rejected before dispatch.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
