package mapper

import (
	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

const tokenTypeBearer = "bearer"

func ToUserItem(u domain.User) dto.UserItem {
	return dto.UserItem{
		ID:          u.ID.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   timestamp(u.CreatedAt),
	}
}

// ToTokenResponse omits the user on refresh, where only a new access token is issued.
func ToTokenResponse(s domain.AuthSession, withUser bool) dto.TokenResponse {
	resp := dto.TokenResponse{
		AccessToken: s.AccessToken,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   timestamp(s.AccessExpiresAt),
	}
	if withUser {
		user := ToUserItem(s.User)
		resp.User = &user
	}
	return resp
}

func ToSessionItems(tokens []domain.RefreshToken) []dto.SessionItem {
	items := make([]dto.SessionItem, 0, len(tokens))
	for _, t := range tokens {
		items = append(items, dto.SessionItem{
			ID:        t.ID.String(),
			CreatedAt: timestamp(t.CreatedAt),
			ExpiresAt: timestamp(t.ExpiresAt),
		})
	}
	return items
}
