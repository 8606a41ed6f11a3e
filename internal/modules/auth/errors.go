package auth

import "errors"

var (
	ErrNoPendingOTP      = errors.New("no pending code for this identifier")
	ErrInvalidOTP        = errors.New("invalid code")
	ErrOTPExpired        = errors.New("code expired")
	ErrTooManyAttempts   = errors.New("too many attempts")
	ErrRateLimitExceeded = errors.New("resend cooldown not elapsed")
)
