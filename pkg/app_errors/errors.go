package apperrors

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrSeatNotFound        = errors.New("seat not found")
	ErrReceptionNotFound   = errors.New("reception not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRelatedNotFound     = errors.New("related record not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrModelNotRegistered  = errors.New("model not registered")
)

// ValidationError 欄位驗證失敗，Message 可直接回給呼叫端
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrEmailRequired 建立使用者時未提供 email
var ErrEmailRequired = NewValidationError("email", "user must have an email address")

// IsValidationError 回傳 err 鏈中的 ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
