package problemdetails

import "fmt"

const (
	TypeInvalidRequest     = "invalid-request"
	TypeInvalidDestination = "invalid-destination"
	TypeInvalidShortCode   = "invalid-short-code"
	TypeInvalidStatus      = "invalid-status"
	TypeInvalidWindow      = "invalid-window"
	TypeNotFound           = "not-found"
	TypeRateLimitExceeded  = "rate-limit-exceeded"
	TypeStorageUnavailable = "storage-unavailable"
	TypeInternalError      = "internal-error"
	TypeValidationError    = "validation-error"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProblemDetail is an RFC 7807 problem document.
type ProblemDetail struct {
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Status    int          `json:"status"`
	Detail    string       `json:"detail"`
	Retryable bool         `json:"retryable,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   typeURI(problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// NewRetryable marks the problem as transient; clients may retry the request.
func NewRetryable(status int, problemType, title, detail string) *ProblemDetail {
	p := New(status, problemType, title, detail)
	p.Retryable = true
	return p
}

func NewValidation(errors []FieldError) *ProblemDetail {
	return &ProblemDetail{
		Type:   typeURI(TypeValidationError),
		Title:  "Validation Failed",
		Status: 400,
		Detail: "Request validation failed",
		Errors: errors,
	}
}

func typeURI(problemType string) string {
	return fmt.Sprintf("https://link-tracker.dev/problems/%s", problemType)
}
