package services

import "net/http"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindUpstream
)

// Status is the HTTP status a kind is reported with.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUpstream:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Error is a classified failure whose Message is safe to show to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

var (
	ErrInternal = newError(KindInternal, "Server error")

	ErrMissingSignupFields = newError(KindValidation, "Full name, email and password are required.")
	ErrInvalidRole         = newError(KindValidation, "Invalid role.")
	ErrEmailInUse          = newError(KindConflict, "Email already in use.")

	// Login never says which of email or password was wrong.
	ErrInvalidCredentials = newError(KindUnauthorized, "Invalid email or password")

	ErrUserNotFound             = newError(KindNotFound, "User not found")
	ErrCurrentPasswordRequired  = newError(KindValidation, "Please provide your current password to change password.")
	ErrCurrentPasswordIncorrect = newError(KindUnauthorized, "Current password is incorrect.")
	ErrPasswordMismatch         = newError(KindValidation, "New passwords do not match.")
	ErrNothingToUpdate          = newError(KindValidation, "No changes to update.")

	ErrAuthRequired = newError(KindUnauthorized, "Authentication required")
	ErrForbidden    = newError(KindForbidden, "Not allowed to modify this user")

	ErrEmptyQuestion  = newError(KindValidation, "No question provided")
	ErrInvalidRAGBody = newError(KindUpstream, "Invalid JSON from RAG")

	ErrInvalidChapter = newError(KindValidation, "Invalid chapter number")
	ErrSourceMissing  = newError(KindNotFound, "Source text not found on server")
	ErrExtractFailed  = newError(KindInternal, "Failed to extract text")
	ErrSummaryFailed  = newError(KindUpstream, "Failed to generate summary")
)
