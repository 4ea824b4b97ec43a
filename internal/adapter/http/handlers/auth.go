package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/middleware"
	"github.com/Chikimuras/ezlife/internal/core/ports"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

const (
	RefreshCookieName = "refresh_token"
	refreshCookiePath = "/api/v1"
)

type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) LoginGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	session, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err, "failed to log in with google")
		return
	}
	h.setRefreshCookie(c, session.RefreshToken, int(h.cookie.MaxAge.Seconds()))
	c.JSON(http.StatusOK, mapper.ToTokenResponse(session, true))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(RefreshCookieName)
	if err != nil || token == "" {
		respondBadRequest(c, apierrors.MsgMissingToken)
		return
	}
	session, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err, "failed to refresh access token")
		return
	}
	c.JSON(http.StatusOK, mapper.ToTokenResponse(session, false))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		currentUserID(c)
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{User: mapper.ToUserItem(user)})
}

// Logout revokes the cookie's refresh token, if any, and always clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(RefreshCookieName); err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err, "failed to revoke refresh token")
			return
		}
	}
	h.setRefreshCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	count, err := h.authService.LogoutAll(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to revoke sessions", zap.String("user_id", userID.String()))
		return
	}
	h.setRefreshCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.CountResponse{Message: "All devices logged out successfully", Count: count})
}

func (h *AuthHandler) Sessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tokens, err := h.authService.Sessions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list sessions", zap.String("user_id", userID.String()))
		return
	}
	items := mapper.ToSessionItems(tokens)
	c.JSON(http.StatusOK, dto.SessionsResponse{Sessions: items, Total: len(items)})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(RefreshCookieName, value, maxAge, refreshCookiePath, "", h.cookie.Secure, true)
}
