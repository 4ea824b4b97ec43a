package domain

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GroupPatch struct {
	Name  *string
	Color *string
}

type CategoryUnit string

const (
	CategoryUnitHours   CategoryUnit = "hours"
	CategoryUnitMinutes CategoryUnit = "minutes"
	CategoryUnitCount   CategoryUnit = "count"
)

type Category struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	GroupID           uuid.UUID
	Name              string
	Priority          int
	MinWeeklyHours    float64
	TargetWeeklyHours float64
	MaxWeeklyHours    float64
	Unit              CategoryUnit
	Mandatory         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasGoal reports whether the category takes part in weekly goal tracking.
func (c Category) HasGoal() bool {
	return c.TargetWeeklyHours > 0
}

type CategoryPatch struct {
	GroupID           *uuid.UUID
	Name              *string
	Priority          *int
	MinWeeklyHours    *float64
	TargetWeeklyHours *float64
	MaxWeeklyHours    *float64
	Unit              *CategoryUnit
	Mandatory         *bool
}
