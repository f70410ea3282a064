// Package dcerrors defines the structured error taxonomy for the decimalint
// engine, distinguishing recoverable input errors from programmer-error
// preconditions that abort via panic.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with
// %w. All error types implement the Unwrap() method where they carry a cause,
// supporting errors.Is() and errors.As().
package dcerrors
