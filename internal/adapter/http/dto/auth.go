package dto

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserItem struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    *string `json:"fullName"`
	IsActive    bool    `json:"isActive"`
	IsSuperuser bool    `json:"isSuperuser"`
	CreatedAt   string  `json:"createdAt"`
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   string    `json:"expiresAt"`
	User        *UserItem `json:"user,omitempty"`
}

type SessionItem struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	ExpiresAt string `json:"expiresAt"`
}

type MeResponse struct {
	User UserItem `json:"user"`
}

type SessionsResponse struct {
	Sessions []SessionItem `json:"sessions"`
	Total    int           `json:"total"`
}
