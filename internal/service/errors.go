package service

import "fmt"

// Typed errors carry the HTTP mapping decision out of the handlers: every
// not-found is a 404, every authorization failure a 403, every duplicate a
// 409, regardless of which operation produced it.

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func NotFoundf(format string, args ...any) error {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

type ForbiddenError struct {
	msg string
}

func (e *ForbiddenError) Error() string { return e.msg }

func Forbiddenf(format string, args ...any) error {
	return &ForbiddenError{msg: fmt.Sprintf(format, args...)}
}

type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string { return e.msg }

func Conflictf(format string, args ...any) error {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}
