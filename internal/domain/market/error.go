package market

import (
	"errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrStorageFailure  = errors.New("storage failure")
)

// Error - ошибка операции над рынками. Kind - одна из сентинельных ошибок
// выше, Cause - исходная ошибка хранилища (если есть).
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func invalidArgument(msg string) error {
	return &Error{Kind: ErrInvalidArgument, Message: msg}
}

func storageFailure(op string, cause error) error {
	return &Error{Kind: ErrStorageFailure, Message: op, Cause: cause}
}
