package prefs

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
