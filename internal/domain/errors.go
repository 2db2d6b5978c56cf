package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrUnderage  = errors.New("user must be at least 18 years old")
	ErrCardInUse = errors.New("card is referenced by a processing order")
)
