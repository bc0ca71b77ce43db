package service

import "fmt"

// ValidationError reports caller input that breaks a precondition. It is
// returned before the Store is called.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ServiceError wraps a Store failure. Callers get the cause through
// errors.Is/As; the service does not interpret it.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
