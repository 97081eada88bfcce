package serverutils

import "github.com/gofiber/fiber/v2"

// HttpError is the error kind handlers and services return for expected
// failure conditions. ErrorHandlerMiddleware turns it into the API's
// uniform {"message": string} body with the carried status.
type HttpError struct {
	Status  int
	Message string
}

func (e *HttpError) Error() string {
	return e.Message
}

func NewHttpError(status int, message string) *HttpError {
	return &HttpError{Status: status, Message: message}
}

// Validation, conflict, and invalid-state conditions all surface as 400s;
// the message carries the distinction.
func BadRequest(message string) *HttpError {
	return NewHttpError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *HttpError {
	return NewHttpError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *HttpError {
	return NewHttpError(fiber.StatusForbidden, message)
}

func NotFound(message string) *HttpError {
	return NewHttpError(fiber.StatusNotFound, message)
}
