package validation

import (
	"fmt"
	"strings"

	"github.com/news-comments-api/internal/models"
)

// FieldError describes one invalid input field
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidationError is returned for invalid caller input. Handlers translate it
// to a 400; anything else surfacing from the workflow becomes a generic 500.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "invalid input"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// NewValidationError builds a single-field validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// ValidateSubmission checks a comment submission before any storage is
// touched. All three fields are required; a failure here must leave no side
// effects anywhere.
func ValidateSubmission(req *models.SubmitCommentRequest) error {
	var errs []FieldError

	username := strings.TrimSpace(req.Username)
	if username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	} else if len(username) > models.MaxUsernameLength {
		errs = append(errs, FieldError{
			Field:   "username",
			Message: fmt.Sprintf("username must be at most %d characters", models.MaxUsernameLength),
			Value:   req.Username,
		})
	}

	if strings.TrimSpace(req.Body) == "" {
		errs = append(errs, FieldError{Field: "comment", Message: "comment is required"})
	} else if len(req.Body) > models.MaxCommentLength {
		errs = append(errs, FieldError{
			Field:   "comment",
			Message: fmt.Sprintf("comment must be at most %d characters", models.MaxCommentLength),
		})
	}

	if strings.TrimSpace(req.ArticleID.String()) == "" {
		errs = append(errs, FieldError{Field: "articleId", Message: "articleId is required"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ValidateUsername guards the user directory on its own; resolve rejects an
// empty name even when called outside the submission workflow.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return NewValidationError("username", "username is required")
	}
	return nil
}
