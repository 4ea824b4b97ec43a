package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/adapter/http/handlers"
	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
	"github.com/Chikimuras/ezlife/pkg/translator"
)

var categoryID = uuid.MustParse("55555555-5555-5555-5555-555555555555")

func runningActivity() domain.Activity {
	return domain.Activity{
		ID:         uuid.MustParse("66666666-6666-6666-6666-666666666666"),
		UserID:     testUser.ID,
		CategoryID: categoryID,
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  domain.TimeOfDay(9*60 + 15),
	}
}

func TestTimerHandler_StartTimer_Success(t *testing.T) {
	serviceMock := new(timerServiceMock)
	serviceMock.On("StartTimer", mock.Anything, testUser.ID, categoryID).Return(runningActivity(), nil).Once()
	handler := handlers.NewTimerHandler(serviceMock)
	router := newRouter(http.MethodPost, "/api/v1/timer/start", handler.StartTimer)

	rec := doRequest(router, http.MethodPost, "/api/v1/timer/start", fmt.Sprintf(`{"categoryId":%q}`, categoryID), translator.LanguageEn)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dto.ActivityItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.IsRunning)
	require.Nil(t, got.EndTime)
	require.Equal(t, "09:15", got.StartTime)
	require.Equal(t, "2026-03-02", got.Date)
	require.False(t, got.IsFromTask)
	serviceMock.AssertExpectations(t)
}

func TestTimerHandler_StartTimer_AlreadyRunning(t *testing.T) {
	serviceMock := new(timerServiceMock)
	serviceMock.On("StartTimer", mock.Anything, testUser.ID, categoryID).Return(nil, domain.ErrTimerAlreadyRunning).Once()
	handler := handlers.NewTimerHandler(serviceMock)
	router := newRouter(http.MethodPost, "/api/v1/timer/start", handler.StartTimer)

	rec := doRequest(router, http.MethodPost, "/api/v1/timer/start", fmt.Sprintf(`{"categoryId":%q}`, categoryID), translator.LanguageEn)

	require.Equal(t, http.StatusConflict, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, apierrors.ReasonConflict, got.Reason)
	require.Equal(t, "A timer is already running. Stop it before starting a new one.", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTimerHandler_StopTimerAt(t *testing.T) {
	stopped := runningActivity()
	end := domain.TimeOfDay(10 * 60)
	stopped.EndTime = &end

	serviceMock := new(timerServiceMock)
	serviceMock.On("StopTimerAt", mock.Anything, testUser.ID, domain.TimeOfDay(10*60)).Return(stopped, nil).Once()
	handler := handlers.NewTimerHandler(serviceMock)
	router := newRouter(http.MethodPost, "/api/v1/timer/stop-at", handler.StopTimerAt)

	rec := doRequest(router, http.MethodPost, "/api/v1/timer/stop-at", `{"endTime":"10:00"}`, translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.ActivityItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.False(t, got.IsRunning)
	require.Equal(t, "10:00", *got.EndTime)
	serviceMock.AssertExpectations(t)
}

func TestTimerHandler_StopTimerAt_BeforeStart(t *testing.T) {
	serviceMock := new(timerServiceMock)
	serviceMock.On("StopTimerAt", mock.Anything, testUser.ID, domain.TimeOfDay(8*60)).Return(nil, domain.ErrInvalidTimeRange).Once()
	handler := handlers.NewTimerHandler(serviceMock)
	router := newRouter(http.MethodPost, "/api/v1/timer/stop-at", handler.StopTimerAt)

	rec := doRequest(router, http.MethodPost, "/api/v1/timer/stop-at", `{"endTime":"08:00"}`, translator.LanguageEn)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "End time must be after start time.", decodeError(t, rec).Message)
	serviceMock.AssertExpectations(t)
}

func TestTimerHandler_ActiveTimer_None(t *testing.T) {
	serviceMock := new(timerServiceMock)
	serviceMock.On("ActiveTimer", mock.Anything, testUser.ID).Return(nil, domain.ErrNoActiveTimer).Once()
	handler := handlers.NewTimerHandler(serviceMock)
	router := newRouter(http.MethodGet, "/api/v1/timer/active", handler.ActiveTimer)

	rec := doRequest(router, http.MethodGet, "/api/v1/timer/active", "", translator.LanguageFr)

	require.Equal(t, http.StatusNotFound, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, apierrors.ReasonNotFound, got.Reason)
	require.NotEqual(t, "No active timer found.", got.Message)
	serviceMock.AssertExpectations(t)
}
