package errors

import "restaurant/internal/errors"

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Kind    Kind   `json:"kind"`              // Failure category, e.g., "INSUFFICIENT_STOCK"
	Code    string `json:"code"`              // Business error code
	Message string `json:"message"`           // User-friendly error message
	Details string `json:"details,omitempty"` // Offending identifier or store message
}

// Describe flattens the first AppError in err's chain. Errors outside the
// taxonomy are reported as internal with their text as details.
func Describe(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return &ErrorInfo{
			Kind:    appErr.Kind(),
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: appErr.Details(),
		}
	}

	return &ErrorInfo{
		Kind:    KindInternal,
		Code:    ErrInternalError.ErrorCode(),
		Message: ErrInternalError.Message(),
		Details: err.Error(),
	}
}
