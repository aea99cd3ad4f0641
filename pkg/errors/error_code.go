package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter ErrorCode = 100
	ErrCodeInsufficientData ErrorCode = 106
	ErrCodeInvalidWindow    ErrorCode = 116

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeUnsupportedFormat     ErrorCode = 205

	// Indicator errors (300-399)
	ErrCodeDivideByZero ErrorCode = 303

	// Strategy errors (400-499)
	ErrCodeStrategyNotFound      ErrorCode = 400
	ErrCodeStrategyAlreadyExists ErrorCode = 401
	ErrCodeStrategyEvaluation    ErrorCode = 402
	ErrCodeUnsupportedStrategy   ErrorCode = 403
	ErrCodeVersionMismatch       ErrorCode = 404

	// Configuration errors (500-599)
	ErrCodeInvalidConfiguration ErrorCode = 500
	ErrCodeConfigReadFailed     ErrorCode = 501
)
