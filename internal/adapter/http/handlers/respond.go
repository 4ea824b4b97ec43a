package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/middleware"
	"github.com/Chikimuras/ezlife/internal/adapter/http/validation"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

// respondError writes the translated error body for err. Errors the domain
// does not know about are logged with msg and answered with a 500.
func respondError(c *gin.Context, err error, msg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)
	if errors.Is(err, validation.ErrInvalidPayload) {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}
	status, body, known := mapper.ToAPIError(err, lang)
	if !known {
		zap.L().Error(msg, append(fields, zap.Error(err))...)
	}
	c.JSON(status, body)
}

func respondBadRequest(c *gin.Context, msgKey string) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.ReasonBadRequest, msgKey, lang),
	)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.ReasonUnauthorized, apierrors.MsgMissingToken, lang),
		)
		return uuid.Nil, false
	}
	return user.ID, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the body into req and returns the raw field map used to
// detect explicit nulls in patches.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return nil, false
	}
	raw, err := validation.DecodeJSON(body, req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return nil, false
	}
	return raw, true
}
