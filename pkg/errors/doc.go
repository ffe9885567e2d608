// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to load thread configuration",
//	    err,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
package errors
