package profile

type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type ProfileResponse struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CRN           string `json:"crnId,omitempty"`
	Authenticated bool   `json:"isAuthenticated"`
	OrderCount    int    `json:"orderCount"`
}
