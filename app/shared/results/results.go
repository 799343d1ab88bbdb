// Package results defines the service operation result envelope.
package results

// OperationResult splits a service outcome three ways: Success carries the
// payload of a completed operation, Failure carries a domain-level failure
// payload the caller should surface (not found, misconfigured ladder, wrong
// channel), and Error reports infrastructure problems. Success and Failure
// are mutually exclusive.
type OperationResult struct {
	Success any
	Failure any
	Error   error
}

// OkResult wraps a success payload.
func OkResult(payload any) OperationResult {
	return OperationResult{Success: payload}
}

// FailResult wraps a domain failure payload together with its error.
func FailResult(payload any, err error) OperationResult {
	return OperationResult{Failure: payload, Error: err}
}
