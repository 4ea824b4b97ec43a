//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase

	categoryID string
	taskListID string
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	rec := s.do(http.MethodPost, "/api/v1/groups", `{"name":"Work","color":"#3366ff"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var group dto.GroupItem
	s.decode(rec, &group)

	rec = s.do(http.MethodPost, "/api/v1/categories", `{"groupId":"`+group.ID+`","name":"Deep work","mandatory":true}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var category dto.CategoryItem
	s.decode(rec, &category)
	s.categoryID = category.ID

	rec = s.do(http.MethodPost, "/api/v1/task-lists", `{"name":"Inbox","color":"#ff9900"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var list dto.TaskListItem
	s.decode(rec, &list)
	s.taskListID = list.ID
}

func (s *TasksIntegrationSuite) do(method, target, body string) *httptest.ResponseRecorder {
	return s.doAs(s.bearer(), method, target, body)
}

func (s *TasksIntegrationSuite) doAs(authorization, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) decode(rec *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *TasksIntegrationSuite) decodeError(rec *httptest.ResponseRecorder) apierrors.Err {
	var got apierrors.JsonErr
	s.decode(rec, &got)
	return got.ErrDetails
}

func (s *TasksIntegrationSuite) createTask(body string) dto.TaskItem {
	rec := s.do(http.MethodPost, "/api/v1/tasks", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var task dto.TaskItem
	s.decode(rec, &task)
	return task
}

func (s *TasksIntegrationSuite) TestRequestsWithoutTokenAreRejected() {
	rec := s.doAs("", http.MethodGet, "/api/v1/tasks", "")

	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	s.Require().Equal(apierrors.ReasonUnauthorized, s.decodeError(rec).Reason)
}

func (s *TasksIntegrationSuite) TestTaskLifecycle() {
	task := s.createTask(`{
		"taskListId":"` + s.taskListID + `",
		"title":"Write quarterly report",
		"dueDate":"2026-03-10"
	}`)
	s.Require().NotEmpty(task.ID)
	s.Require().Equal("todo", task.Status)
	s.Require().Equal("medium", task.Priority)
	s.Require().NotNil(task.DueDate)
	s.Require().Equal("2026-03-10", *task.DueDate)
	s.Require().Equal([]string{}, task.ExceptionDates)

	rec := s.do(http.MethodPut, "/api/v1/tasks/"+task.ID, `{"status":"in_progress","dueDate":null}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated dto.TaskItem
	s.decode(rec, &updated)
	s.Require().Equal("in_progress", updated.Status)
	s.Require().Nil(updated.DueDate)
	s.Require().Equal("Write quarterly report", updated.Title)

	rec = s.do(http.MethodGet, "/api/v1/tasks?listId="+s.taskListID+"&status=in_progress", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var listed []dto.TaskItem
	s.decode(rec, &listed)
	s.Require().Len(listed, 1)
	s.Require().Equal(task.ID, listed[0].ID)

	rec = s.do(http.MethodDelete, "/api/v1/tasks/"+task.ID, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/tasks/"+task.ID, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Require().Equal("Task not found.", s.decodeError(rec).Message)
}

func (s *TasksIntegrationSuite) TestTasksAreScopedToTheirOwner() {
	task := s.createTask(`{"taskListId":"` + s.taskListID + `","title":"Private"}`)

	rec := s.doAs(s.otherUserToken(), http.MethodGet, "/api/v1/tasks/"+task.ID, "")

	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Require().Equal(apierrors.ReasonNotFound, s.decodeError(rec).Reason)
}

func (s *TasksIntegrationSuite) TestGenerateOccurrencesSkipsExceptionDates() {
	template := s.createTask(`{
		"taskListId":"` + s.taskListID + `",
		"title":"Stand-up",
		"scheduledDate":"2026-03-02",
		"recurrenceRule":"FREQ=DAILY",
		"exceptionDates":["2026-03-04"]
	}`)

	rec := s.do(http.MethodPost, "/api/v1/tasks/"+template.ID+"/generate-occurrences?count=3", "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created []dto.TaskItem
	s.decode(rec, &created)
	s.Require().Len(created, 3)
	var dates []string
	for _, occurrence := range created {
		s.Require().Nil(occurrence.RecurrenceRule)
		s.Require().Equal("todo", occurrence.Status)
		s.Require().NotNil(occurrence.ScheduledDate)
		dates = append(dates, *occurrence.ScheduledDate)
	}
	s.Require().Equal([]string{"2026-03-03", "2026-03-05", "2026-03-06"}, dates)

	// Dates that already have an occurrence are not generated twice.
	rec = s.do(http.MethodPost, "/api/v1/tasks/"+template.ID+"/generate-occurrences?count=1", "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.decode(rec, &created)
	s.Require().Len(created, 1)
	s.Require().Equal("2026-03-07", *created[0].ScheduledDate)
}

func (s *TasksIntegrationSuite) TestGenerateOccurrencesRequiresRecurrenceRule() {
	task := s.createTask(`{"taskListId":"` + s.taskListID + `","title":"One-off"}`)

	rec := s.do(http.MethodPost, "/api/v1/tasks/"+task.ID+"/generate-occurrences", "")

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal(apierrors.ReasonBadRequest, s.decodeError(rec).Reason)
}

func (s *TasksIntegrationSuite) TestConvertToActivityLinksTaskAndActivity() {
	task := s.createTask(`{
		"taskListId":"` + s.taskListID + `",
		"categoryId":"` + s.categoryID + `",
		"title":"Review pull requests"
	}`)

	rec := s.do(http.MethodPost, "/api/v1/tasks/"+task.ID+"/convert-to-activity", `{
		"date":"2026-03-02",
		"startTime":"09:00",
		"endTime":"10:30"
	}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var link dto.TaskActivityItem
	s.decode(rec, &link)
	s.Require().Equal(task.ID, link.TaskID)

	rec = s.do(http.MethodGet, "/api/v1/activities/"+link.ActivityID, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var activity dto.ActivityItem
	s.decode(rec, &activity)
	s.Require().True(activity.IsFromTask)
	s.Require().NotNil(activity.TaskID)
	s.Require().Equal(task.ID, *activity.TaskID)

	rec = s.do(http.MethodDelete, "/api/v1/categories/"+s.categoryID, "")
	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Require().Equal(apierrors.ReasonDependencyConflict, s.decodeError(rec).Reason)
}

func (s *TasksIntegrationSuite) TestSecondTimerIsRejectedWhileOneIsRunning() {
	body := `{"categoryId":"` + s.categoryID + `"}`

	rec := s.do(http.MethodPost, "/api/v1/timer/start", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var running dto.ActivityItem
	s.decode(rec, &running)
	s.Require().True(running.IsRunning)

	rec = s.do(http.MethodPost, "/api/v1/timer/start", body)
	s.Require().Equal(http.StatusConflict, rec.Code)
	got := s.decodeError(rec)
	s.Require().Equal(apierrors.ReasonConflict, got.Reason)
	s.Require().Equal("A timer is already running. Stop it before starting a new one.", got.Message)

	rec = s.do(http.MethodGet, "/api/v1/timer/active", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var active dto.ActivityItem
	s.decode(rec, &active)
	s.Require().Equal(running.ID, active.ID)
}

func (s *TasksIntegrationSuite) TestHealthReportsPostgres() {
	rec := s.doAs("", http.MethodGet, "/api/health", "")

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}
