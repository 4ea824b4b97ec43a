package tests

import (
	"encoding/json"
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

func TestGroupHandler_CreateGroup(t *testing.T) {
	groupID := uuid.New()
	serviceMock := new(groupServiceMock)
	serviceMock.On("CreateGroup", mock.Anything, domain.Group{UserID: testUser.ID, Name: "Health", Color: "#a1b2c3"}).
		Return(domain.Group{
			ID:        groupID,
			UserID:    testUser.ID,
			Name:      "Health",
			Color:     "#A1B2C3",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil).Once()
	handler := handlers.NewGroupHandler(serviceMock)
	router := newRouter(http.MethodPost, "/api/v1/groups", handler.CreateGroup)

	rec := doRequest(router, http.MethodPost, "/api/v1/groups", `{"name":" Health ","color":"#a1b2c3"}`, translator.LanguageEn)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dto.GroupItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, groupID.String(), got.ID)
	require.Equal(t, "#A1B2C3", got.Color)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_CreateGroup_InvalidColor(t *testing.T) {
	serviceMock := new(groupServiceMock)
	handler := handlers.NewGroupHandler(serviceMock)
	router := newRouter(http.MethodPost, "/api/v1/groups", handler.CreateGroup)

	rec := doRequest(router, http.MethodPost, "/api/v1/groups", `{"name":"Health","color":"green"}`, translator.LanguageEn)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "CreateGroup")
}

func TestGroupHandler_DeleteGroup_BlockedByActivities(t *testing.T) {
	groupID := uuid.New()
	serviceMock := new(groupServiceMock)
	serviceMock.On("DeleteGroup", mock.Anything, groupID, testUser.ID).Return(domain.ErrGroupHasActivities).Once()
	handler := handlers.NewGroupHandler(serviceMock)
	router := newRouter(http.MethodDelete, "/api/v1/groups/:id", handler.DeleteGroup)

	rec := doRequest(router, http.MethodDelete, "/api/v1/groups/"+groupID.String(), "", translator.LanguageEn)

	require.Equal(t, http.StatusConflict, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, apierrors.ReasonDependencyConflict, got.Reason)
	require.Equal(t, "This group cannot be deleted while its categories have activities.", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_DeleteGroup_NoContent(t *testing.T) {
	groupID := uuid.New()
	serviceMock := new(groupServiceMock)
	serviceMock.On("DeleteGroup", mock.Anything, groupID, testUser.ID).Return(nil).Once()
	handler := handlers.NewGroupHandler(serviceMock)
	router := newRouter(http.MethodDelete, "/api/v1/groups/:id", handler.DeleteGroup)

	rec := doRequest(router, http.MethodDelete, "/api/v1/groups/"+groupID.String(), "", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_UpdateGroup_RejectsNullColor(t *testing.T) {
	serviceMock := new(groupServiceMock)
	handler := handlers.NewGroupHandler(serviceMock)
	router := newRouter(http.MethodPut, "/api/v1/groups/:id", handler.UpdateGroup)

	rec := doRequest(router, http.MethodPut, "/api/v1/groups/"+uuid.NewString(), `{"color":null}`, translator.LanguageEn)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "UpdateGroup")
}
