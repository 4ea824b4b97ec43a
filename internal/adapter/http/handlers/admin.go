package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

func (h *AdminHandler) CleanupTokens(c *gin.Context) {
	deleted, err := h.authService.CleanupTokens(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to clean up refresh tokens")
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Message: "Token cleanup completed", Count: deleted})
}
