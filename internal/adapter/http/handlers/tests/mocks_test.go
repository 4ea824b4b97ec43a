package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Chikimuras/ezlife/internal/adapter/http/middleware"
	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

var testUser = domain.User{
	ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
	Email:    "ada@example.com",
	IsActive: true,
}

// newRouter mounts handler on path behind the language middleware and a
// fixed authenticated user.
func newRouter(method, path string, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Handle(method, path, middleware.LanguageMiddleware(), middleware.SetUser(testUser), handler)
	return router
}

func doRequest(router http.Handler, method, target, body string, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.Err {
	t.Helper()
	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got.ErrDetails
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func result[T any](args mock.Arguments) T {
	var value T
	if v := args.Get(0); v != nil {
		value = v.(T)
	}
	return value
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)
	return result[[]domain.Task](args), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id, userID uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return result[domain.Task](args), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return result[domain.Task](args), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id, userID uuid.UUID, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, id, userID, patch)
	return result[domain.Task](args), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *taskServiceMock) GenerateOccurrences(ctx context.Context, id, userID uuid.UUID, count int) ([]domain.Task, error) {
	args := m.Called(ctx, id, userID, count)
	return result[[]domain.Task](args), args.Error(1)
}

func (m *taskServiceMock) GenerateRollingOccurrences(ctx context.Context, userID uuid.UUID) (domain.RollingResult, error) {
	args := m.Called(ctx, userID)
	return result[domain.RollingResult](args), args.Error(1)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, id, userID uuid.UUID, input domain.CompleteTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, userID, input)
	return result[domain.Task](args), args.Error(1)
}

func (m *taskServiceMock) ConvertToActivity(ctx context.Context, id, userID uuid.UUID, input domain.ConvertTaskInput) (domain.TaskActivity, error) {
	args := m.Called(ctx, id, userID, input)
	return result[domain.TaskActivity](args), args.Error(1)
}

type timerServiceMock struct {
	mock.Mock
}

func (m *timerServiceMock) StartTimer(ctx context.Context, userID, categoryID uuid.UUID) (domain.Activity, error) {
	args := m.Called(ctx, userID, categoryID)
	return result[domain.Activity](args), args.Error(1)
}

func (m *timerServiceMock) StopTimer(ctx context.Context, userID uuid.UUID) (domain.Activity, error) {
	args := m.Called(ctx, userID)
	return result[domain.Activity](args), args.Error(1)
}

func (m *timerServiceMock) StopTimerAt(ctx context.Context, userID uuid.UUID, end domain.TimeOfDay) (domain.Activity, error) {
	args := m.Called(ctx, userID, end)
	return result[domain.Activity](args), args.Error(1)
}

func (m *timerServiceMock) ActiveTimer(ctx context.Context, userID uuid.UUID) (domain.Activity, error) {
	args := m.Called(ctx, userID)
	return result[domain.Activity](args), args.Error(1)
}

type groupServiceMock struct {
	mock.Mock
}

func (m *groupServiceMock) ListGroups(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	return result[[]domain.Group](args), args.Error(1)
}

func (m *groupServiceMock) GetGroup(ctx context.Context, id, userID uuid.UUID) (domain.Group, error) {
	args := m.Called(ctx, id, userID)
	return result[domain.Group](args), args.Error(1)
}

func (m *groupServiceMock) CreateGroup(ctx context.Context, group domain.Group) (domain.Group, error) {
	args := m.Called(ctx, group)
	return result[domain.Group](args), args.Error(1)
}

func (m *groupServiceMock) UpdateGroup(ctx context.Context, id, userID uuid.UUID, patch domain.GroupPatch) (domain.Group, error) {
	args := m.Called(ctx, id, userID, patch)
	return result[domain.Group](args), args.Error(1)
}

func (m *groupServiceMock) DeleteGroup(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type insightsServiceMock struct {
	mock.Mock
}

func (m *insightsServiceMock) WeeklyComparison(ctx context.Context, userID uuid.UUID, anyDate time.Time) (domain.WeeklyComparison, error) {
	args := m.Called(ctx, userID, anyDate)
	return result[domain.WeeklyComparison](args), args.Error(1)
}

func (m *insightsServiceMock) DailyComparison(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyComparison, error) {
	args := m.Called(ctx, userID, date)
	return result[domain.DailyComparison](args), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) LoginWithGoogle(ctx context.Context, idToken string) (domain.AuthSession, error) {
	args := m.Called(ctx, idToken)
	return result[domain.AuthSession](args), args.Error(1)
}

func (m *authServiceMock) Refresh(ctx context.Context, refreshToken string) (domain.AuthSession, error) {
	args := m.Called(ctx, refreshToken)
	return result[domain.AuthSession](args), args.Error(1)
}

func (m *authServiceMock) Authenticate(ctx context.Context, accessToken string) (domain.User, error) {
	args := m.Called(ctx, accessToken)
	return result[domain.User](args), args.Error(1)
}

func (m *authServiceMock) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *authServiceMock) LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return result[int64](args), args.Error(1)
}

func (m *authServiceMock) Sessions(ctx context.Context, userID uuid.UUID) ([]domain.RefreshToken, error) {
	args := m.Called(ctx, userID)
	return result[[]domain.RefreshToken](args), args.Error(1)
}

func (m *authServiceMock) CleanupTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return result[int64](args), args.Error(1)
}
