package payment

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrAlreadyPaid       = errors.New("order already paid")
	ErrIllegalTransition = errors.New("illegal status transition")
)
