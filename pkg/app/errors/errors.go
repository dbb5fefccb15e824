// Package errors classifies service failures so the HTTP layer can map them
// to status codes and decide what the client may see.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used when a handler returns no error.
	CategoryNoError Category = iota
	// CategoryDataError The client sent an event, address or hash that does not parse.
	CategoryDataError
	// CategoryResourceNotFound No event is stored under the requested hash.
	CategoryResourceNotFound
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryPayloadTooLarge The request body exceeds the accepted size
	CategoryPayloadTooLarge
)

var categoryNames = map[Category]string{
	CategoryNoError:          "CategoryNoError",
	CategoryDataError:        "CategoryDataError",
	CategoryResourceNotFound: "CategoryResourceNotFound",
	CategoryGeneralError:     "CategoryGeneralError",
	CategoryPayloadTooLarge:  "CategoryPayloadTooLarge",
}

var categoryStatus = map[Category]int{
	CategoryDataError:        http.StatusBadRequest,
	CategoryResourceNotFound: http.StatusNotFound,
	CategoryGeneralError:     http.StatusInternalServerError,
	CategoryPayloadTooLarge:  http.StatusRequestEntityTooLarge,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "CategoryGeneralError"
}

// ServiceError carries a category, the message returned to the client and
// the underlying cause, which is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if code, ok := categoryStatus[err.Category]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be hidden from the client:
// anything that is not a ServiceError in a client-facing category.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return true
	}
	return svcErr.StatusCode() >= http.StatusInternalServerError
}

func newServiceError(cat Category, err error, fallback, message string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error"; err is only logged.
func GeneralError(err error) error {
	return newServiceError(CategoryGeneralError, err, "internal server error", "Internal Server Error")
}

// ResourceNotFoundError returns message to the client with a 404.
func ResourceNotFoundError(err error, message string) error {
	return newServiceError(CategoryResourceNotFound, err, "resource not found: "+message, message)
}

// BadRequestError returns message to the client with a 400. Callers include
// the rejected input in message.
func BadRequestError(err error, message string) error {
	return newServiceError(CategoryDataError, err, "bad request: "+message, message)
}

// PayloadTooLargeError returns message to the client with a 413.
func PayloadTooLargeError(err error, message string) error {
	return newServiceError(CategoryPayloadTooLarge, err, "payload too large", message)
}
