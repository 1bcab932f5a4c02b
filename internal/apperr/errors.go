package apperr

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ExtractionError reports an uploaded file whose content could not be turned
// into tokens. The message is safe to show to the user.
type ExtractionError struct {
	File string
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "failed to process " + e.File
	}
	return "failed to process " + e.File + ": " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func NewExtraction(file string, err error) *ExtractionError {
	return &ExtractionError{File: file, Err: err}
}
