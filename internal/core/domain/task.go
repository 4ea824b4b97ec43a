package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

type TaskList struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     *string
	Icon      *string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaskListPatch struct {
	Name     *string
	Color    *string
	ColorSet bool
	Icon     *string
	IconSet  bool
	Position *int
}

// Task is either a recurring template (RecurrenceRule set) or a concrete
// task. Materialized occurrences are concrete tasks that share the template's
// list and title.
type Task struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	TaskListID               uuid.UUID
	CategoryID               *uuid.UUID
	Title                    string
	Description              *string
	Status                   TaskStatus
	Priority                 TaskPriority
	DueDate                  *time.Time
	ScheduledDate            *time.Time
	ScheduledStartTime       *TimeOfDay
	ScheduledEndTime         *TimeOfDay
	EstimatedDurationMinutes *int
	RecurrenceRule           *string
	ExceptionDates           []string
	Position                 int
	CreatedAt                time.Time
	UpdatedAt                time.Time

	ActivityIDs []uuid.UUID
}

func (t Task) IsRecurring() bool {
	return t.RecurrenceRule != nil && *t.RecurrenceRule != ""
}

// IsOccurrenceOf reports whether t is a materialized sibling of template.
func (t Task) IsOccurrenceOf(template Task) bool {
	return t.ID != template.ID &&
		t.TaskListID == template.TaskListID &&
		t.Title == template.Title &&
		!t.IsRecurring()
}

type TaskFilter struct {
	ListID *uuid.UUID
	Status *TaskStatus
}

type TaskPatch struct {
	TaskListID                  *uuid.UUID
	CategoryID                  *uuid.UUID
	CategoryIDSet               bool
	Title                       *string
	Description                 *string
	DescriptionSet              bool
	Status                      *TaskStatus
	Priority                    *TaskPriority
	DueDate                     *time.Time
	DueDateSet                  bool
	ScheduledDate               *time.Time
	ScheduledDateSet            bool
	ScheduledStartTime          *TimeOfDay
	ScheduledStartTimeSet       bool
	ScheduledEndTime            *TimeOfDay
	ScheduledEndTimeSet         bool
	EstimatedDurationMinutes    *int
	EstimatedDurationMinutesSet bool
	RecurrenceRule              *string
	RecurrenceRuleSet           bool
	ExceptionDates              []string
	ExceptionDatesSet           bool
	Position                    *int
}

type TaskActivity struct {
	ID         uuid.UUID
	TaskID     uuid.UUID
	ActivityID uuid.UUID
	CreatedAt  time.Time
}

// CompleteTaskInput carries the optional tracker fields of a completion.
// Missing values fall back to the task's own category and schedule.
type CompleteTaskInput struct {
	AddToTracker bool
	CategoryID   *uuid.UUID
	Date         *time.Time
	StartTime    *TimeOfDay
	EndTime      *TimeOfDay
	Notes        *string
}

type ConvertTaskInput struct {
	CategoryID *uuid.UUID
	Date       time.Time
	StartTime  TimeOfDay
	EndTime    TimeOfDay
	Notes      *string
}

// RollingFailure records a template whose expansion failed during a rolling run.
type RollingFailure struct {
	TaskID uuid.UUID
	Title  string
	Err    error
}

type RollingResult struct {
	CreatedCount          int
	RecurringTasksChecked int
	Failures              []RollingFailure
}
