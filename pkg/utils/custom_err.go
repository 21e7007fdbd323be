package utils

import "errors"

// Error kinds. Every error a service returns on purpose wraps one of these.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrService      = errors.New("service error")
)

// AppError carries a client-safe message alongside its kind.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Kind }

func NewValidationError(message string) error {
	return &AppError{Kind: ErrValidation, Message: message}
}

var (
	ErrEmailAlreadyExists = &AppError{ErrConflict, "An account with this email already exists"}
	ErrInvalidCredentials = &AppError{ErrUnauthorized, "Invalid email or password"}
	ErrAccountWaitlisted  = &AppError{ErrForbidden, "Your account is on the waitlist and has not been approved yet"}
	ErrAccountRejected    = &AppError{ErrForbidden, "Your account has been rejected"}
	ErrAccountNotFound    = &AppError{ErrNotFound, "Account not found"}
	ErrTokenInvalid       = &AppError{ErrUnauthorized, "Invalid or expired token"}
	ErrAdminOnly          = &AppError{ErrForbidden, "Admin access required"}
	ErrInvalidAction      = &AppError{ErrValidation, "Action must be APPROVED or REJECTED"}

	ErrSelfRequest       = &AppError{ErrValidation, "You cannot send a friend request to yourself"}
	ErrUserNotFound      = &AppError{ErrNotFound, "User not found"}
	ErrTargetNotApproved = &AppError{ErrValidation, "This user cannot receive friend requests"}
	ErrRequestExists     = &AppError{ErrConflict, "A friend request already exists between these users"}
	ErrRequestNotFound   = &AppError{ErrNotFound, "Friend request not found"}
	ErrNotRecipient      = &AppError{ErrForbidden, "Only the recipient can respond to this request"}
	ErrRequestNotPending = &AppError{ErrConflict, "This friend request has already been answered"}
	ErrNotFriends        = &AppError{ErrForbidden, "You can only message accepted friends"}
	ErrSelfMessage       = &AppError{ErrValidation, "You cannot message yourself"}
	ErrAlertNotFound     = &AppError{ErrNotFound, "Alert not found"}
	ErrFeedbackNotFound  = &AppError{ErrNotFound, "Feedback not found"}
	ErrAIUnavailable     = &AppError{ErrService, "AI service unavailable"}
	ErrSpeechUnavailable = &AppError{ErrService, "Speech service unavailable"}
	ErrDatabaseError     = &AppError{ErrService, "Internal server error"}
)
