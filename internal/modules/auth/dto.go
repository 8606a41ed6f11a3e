package auth

import "inspectbook/internal/domain"

type RequestOTPRequest struct {
	PhoneOrEmail string `json:"phoneOrEmail" binding:"required"`
}

type VerifyOTPRequest struct {
	PhoneOrEmail string `json:"phoneOrEmail" binding:"required"`
	Code         string `json:"code" binding:"required,len=4"`
}

type OTPRequestResult struct {
	Status string `json:"status"`
}

type LoginResult struct {
	Token string       `json:"token"`
	CRN   string       `json:"crnId"`
	User  *domain.User `json:"user"`
}
