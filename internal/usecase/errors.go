package usecase

import "errors"

// DomainError marks failures the caller caused: invalid input, broken domain
// rules.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// TechnicalError marks failures of a backing service: broker publishes, SMTP
// delivery. Callers may retry; HTTP maps it to 503 instead of 500.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func NewTechnicalError(code, message string, err error) *TechnicalError {
	return &TechnicalError{Code: code, Message: message, Err: err}
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var technicalErr *TechnicalError
	return errors.As(err, &technicalErr)
}
