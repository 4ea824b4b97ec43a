package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Chikimuras/ezlife/internal/adapter/http/middleware"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"appName"`
	AppVersion        string `json:"appVersion"`
	CurrentSystemTime string `json:"currentSystemTime"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Postgres string `json:"postgres"`
}

type HealthAdvanced struct {
	AppName           string         `json:"appName"`
	AppVersion        string         `json:"appVersion"`
	CurrentSystemTime string         `json:"currentSystemTime"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type AppInfo struct {
	Name    string
	Version string
}

type HealthHandler struct {
	db   *sqlx.DB
	info AppInfo
}

func NewHealthHandler(db *sqlx.DB, info AppInfo) *HealthHandler {
	if info.Version == "" {
		info.Version = "dev"
	}
	return &HealthHandler{db: db, info: info}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	ctx := c.Request.Context()
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkConnectionToDatabase(ctx) {
		statusCode = http.StatusServiceUnavailable
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	databaseStatus := StatusDown
	if h.checkConnectionToDatabase(ctx) {
		databaseStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Postgres: databaseStatus,
		},
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}
