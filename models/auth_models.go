package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is what the auth service hands back on register and login. The
// refresh token travels to the client as an httpOnly cookie, not in the body.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         PublicUser
}
