package service

import "errors"

var (
	ErrInvalidTransition   = errors.New("INVALID_TRANSITION")
	ErrNotTransactionParty = errors.New("NOT_TRANSACTION_PARTY")
	ErrEmptySummary        = errors.New("EMPTY_SUMMARY")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
