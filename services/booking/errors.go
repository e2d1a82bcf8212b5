package booking

import "fmt"

type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &ServiceError{
		Code:    "notFound",
		Message: msg,
	}
}

func NewInvalidActionError(msg string) error {
	return &ServiceError{
		Code:    "invalidAction",
		Message: msg,
	}
}

// IsNotFound reports whether err is a notFound ServiceError.
func IsNotFound(err error) bool {
	se, ok := err.(*ServiceError)
	return ok && se.Code == "notFound"
}
