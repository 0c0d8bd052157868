package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidUpload      = errors.New("only image files are allowed")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrPaymentUnavailable = errors.New("payment service unavailable")
	ErrUsernameTaken      = errors.New("username already exists")
)
