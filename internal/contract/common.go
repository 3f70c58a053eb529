package contract

// ErrorCode classifies failures crossing the service surface.
type ErrorCode string

const (
	ErrTaskNotFound    ErrorCode = "TASK_NOT_FOUND"
	ErrSectionNotFound ErrorCode = "SECTION_NOT_FOUND"
	ErrNotExcludable   ErrorCode = "NOT_EXCLUDABLE"
	ErrRealizeFailed   ErrorCode = "REALIZE_FAILED"
	ErrInvalidInput    ErrorCode = "INVALID_INPUT"
)

// Error is a typed service error carrying a stable code for callers that
// branch on failure kind (retry, refetch, surface to the user).
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}
