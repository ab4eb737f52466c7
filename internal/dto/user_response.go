package dto

type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

type UserResponse struct {
	ID             int64  `json:"id"`
	ExternalID     string `json:"external_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	AvatarURL      string `json:"avatar_url"`
	IsAdmin        bool   `json:"is_admin"`
	EmailConfirmed bool   `json:"email_confirmed"`
	LastSignInAt   *int64 `json:"last_sign_in_at"`
	CreatedAt      int64  `json:"created_at"`
}
