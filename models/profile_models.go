package models

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=3"`
}

type MobileRequest struct {
	Number string `json:"number" binding:"required"`
}

type VerifyMobileRequest struct {
	Code string `json:"code" binding:"required"`
}
