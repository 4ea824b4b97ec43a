package domain

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Date       time.Time
	StartTime  TimeOfDay
	// EndTime is nil while the activity is a running timer.
	EndTime   *TimeOfDay
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Task is set when the activity was produced from a task.
	Task *ActivityTaskInfo
}

func (a Activity) Running() bool {
	return a.EndTime == nil
}

// DurationMinutes is zero for a running activity.
func (a Activity) DurationMinutes() int {
	if a.EndTime == nil {
		return 0
	}
	return int(*a.EndTime) - int(a.StartTime)
}

// ValidateTimes enforces end > start when an end is set.
func ValidateTimes(start TimeOfDay, end *TimeOfDay) error {
	if !start.Valid() {
		return ErrInvalidTimeRange
	}
	if end != nil && (!end.Valid() || *end <= start) {
		return ErrInvalidTimeRange
	}
	return nil
}

type ActivityTaskInfo struct {
	TaskID        uuid.UUID
	TaskName      string
	TaskListColor *string
}

type ActivityPatch struct {
	CategoryID *uuid.UUID
	Date       *time.Time
	StartTime  *TimeOfDay
	EndTime    *TimeOfDay
	EndTimeSet bool
	Notes      *string
	NotesSet   bool
}
