package errors

import "fmt"

// Error codes, one per failure class a client can see.
const (
	CodeMissingFile           = "missing_file"
	CodeFileTooLarge          = "file_too_large"
	CodeUnsupportedType       = "unsupported_type"
	CodeConfigurationMissing  = "configuration_missing"
	CodeStorageWriteFailed    = "storage_write_failed"
	CodeInvalidMetadata       = "invalid_metadata"
	CodeInvalidRequest        = "invalid_request"
	CodeSummarizerUnreachable = "summarizer_unreachable"
	CodeSummarizerError       = "summarizer_error"
	CodeNotFound              = "not_found"
	CodeInternal              = "internal_error"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type AppError struct {
	Code    string
	Message string
	Details []Violation
	// Status overrides the status derived from Code, used to pass upstream statuses through.
	Status int
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrMissingFile = func() *AppError {
		return &AppError{Code: CodeMissingFile, Message: "No file uploaded"}
	}
	ErrFileTooLarge = func(limit int64) *AppError {
		return &AppError{Code: CodeFileTooLarge, Message: "File too large. Maximum size is " + humanSize(limit) + "."}
	}
	ErrUnsupportedType = func(contentType string) *AppError {
		return &AppError{
			Code:    CodeUnsupportedType,
			Message: "Invalid file type. Only audio and video files are allowed.",
			Details: []Violation{{Path: "podcast", Message: fmt.Sprintf("unsupported content type %q", contentType)}},
		}
	}
	ErrConfigurationMissing = func(err error) *AppError {
		return &AppError{Code: CodeConfigurationMissing, Message: "Storage configuration missing", Err: err}
	}
	ErrStorageWrite = func(err error) *AppError {
		return &AppError{Code: CodeStorageWriteFailed, Message: "Failed to upload podcast", Err: err}
	}
	ErrInvalidMetadata = func(details []Violation) *AppError {
		return &AppError{Code: CodeInvalidMetadata, Message: "Invalid podcast data", Details: details}
	}
	ErrInvalidRequest = func(details []Violation) *AppError {
		return &AppError{Code: CodeInvalidRequest, Message: "Invalid request data", Details: details}
	}
	ErrSummarizerUnreachable = func(err error) *AppError {
		return &AppError{Code: CodeSummarizerUnreachable, Message: "Unable to connect to backend service. Please try again later.", Err: err}
	}
	ErrSummarizer = func(status int, message string) *AppError {
		return &AppError{Code: CodeSummarizerError, Message: message, Status: status}
	}
	ErrNotFound = func(err error) *AppError {
		return &AppError{Code: CodeNotFound, Message: "Not found", Err: err}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
	}
)

// humanSize prints whole MiB as "<n>MB" and anything else in bytes.
func humanSize(n int64) string {
	const mib = 1024 * 1024
	if n >= mib && n%mib == 0 {
		return fmt.Sprintf("%dMB", n/mib)
	}
	return fmt.Sprintf("%d bytes", n)
}
