package dto

type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark system"`
}

type ThemeResponse struct {
	Success bool   `json:"success"`
	Theme   string `json:"theme"`
	Source  string `json:"source,omitempty"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
