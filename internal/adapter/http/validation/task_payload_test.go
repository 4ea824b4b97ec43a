package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func TestBuildTask_AppliesDefaultsAndDropsBlankRule(t *testing.T) {
	userID := uuid.New()
	listID := uuid.New()
	var req dto.CreateTaskRequest
	_, err := DecodeJSON([]byte(`{
		"taskListId":"`+listID.String()+`",
		"title":"  Plan sprint  ",
		"recurrenceRule":"   ",
		"scheduledStartTime":"09:30"
	}`), &req)
	require.NoError(t, err)

	task, err := BuildTask(userID, req)

	require.NoError(t, err)
	assert.Equal(t, userID, task.UserID)
	assert.Equal(t, listID, task.TaskListID)
	assert.Equal(t, "Plan sprint", task.Title)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.RecurrenceRule)
	require.NotNil(t, task.ScheduledStartTime)
	assert.Equal(t, "09:30", task.ScheduledStartTime.String())
}

func TestBuildTask_RejectsInvalidInput(t *testing.T) {
	listID := uuid.NewString()
	cases := map[string]string{
		"blank title":      `{"taskListId":"` + listID + `","title":"   "}`,
		"bad time":         `{"taskListId":"` + listID + `","title":"x","scheduledStartTime":"25:99"}`,
		"missing list":     `{"title":"x"}`,
		"unknown status":   `{"taskListId":"` + listID + `","title":"x","status":"blocked"}`,
		"bad due date":     `{"taskListId":"` + listID + `","title":"x","dueDate":"2026-13-01"}`,
		"bad exception":    `{"taskListId":"` + listID + `","title":"x","exceptionDates":["tomorrow"]}`,
		"wrong title type": `{"taskListId":"` + listID + `","title":42}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var req dto.CreateTaskRequest
			_, err := DecodeJSON([]byte(body), &req)
			if err == nil {
				_, err = BuildTask(uuid.New(), req)
			}
			require.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestBuildTaskPatch_DistinguishesNullFromAbsent(t *testing.T) {
	var req dto.UpdateTaskRequest
	raw, err := DecodeJSON([]byte(`{"dueDate":null,"priority":"high"}`), &req)
	require.NoError(t, err)

	patch, err := BuildTaskPatch(req, raw)

	require.NoError(t, err)
	assert.True(t, patch.DueDateSet)
	assert.Nil(t, patch.DueDate)
	assert.False(t, patch.ScheduledDateSet)
	assert.False(t, patch.CategoryIDSet)
	require.NotNil(t, patch.Priority)
	assert.Equal(t, domain.TaskPriorityHigh, *patch.Priority)
	assert.Nil(t, patch.Status)
}

func TestBuildTaskPatch_RejectsNullOnRequiredFieldsAndEmptyBody(t *testing.T) {
	for _, body := range []string{`{"status":null}`, `{"title":""}`, `{}`, `{"unknown":1}`} {
		var req dto.UpdateTaskRequest
		raw, err := DecodeJSON([]byte(body), &req)
		require.NoError(t, err, body)

		_, err = BuildTaskPatch(req, raw)
		assert.ErrorIs(t, err, ErrInvalidPayload, body)
	}
}

func TestBuildConvertTaskInput_ParsesSchedule(t *testing.T) {
	input, err := BuildConvertTaskInput(dto.ConvertTaskRequest{
		Date:      "2026-03-02",
		StartTime: "08:00",
		EndTime:   "09:15",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", input.Date.Format(domain.DateLayout))
	assert.Equal(t, "08:00", input.StartTime.String())
	assert.Equal(t, "09:15", input.EndTime.String())
	assert.Nil(t, input.CategoryID)
}
