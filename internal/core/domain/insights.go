package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateRange is inclusive on both ends. Start and End are calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Raw aggregation rows, as returned by the store. Minutes are fractional.

type GroupMinutes struct {
	GroupID    uuid.UUID
	GroupName  string
	GroupColor *string
	Minutes    float64
}

type CategoryMinutes struct {
	CategoryID   uuid.UUID
	CategoryName string
	GroupName    string
	GroupColor   *string
	Minutes      float64
}

type ActivityStats struct {
	Count              int
	AvgDurationMinutes float64
	DistinctCategories int
}

type DayMinutes struct {
	Date    time.Time
	Minutes float64
	Count   int
}

type LongestActivity struct {
	CategoryName string
	Minutes      float64
	Date         time.Time
	StartTime    TimeOfDay
	EndTime      TimeOfDay
}

// GoalCategoryMinutes is a goal-tracked category with the minutes spent on
// it during a period.
type GoalCategoryMinutes struct {
	Category Category
	Minutes  float64
}

// Report types, shaped for the response.

type GroupComparison struct {
	GroupID         uuid.UUID
	GroupName       string
	GroupColor      *string
	Minutes         int
	PreviousMinutes int
	MinutesDelta    int
	PercentChange   float64
	PercentOfTotal  float64
}

type CategoryComparison struct {
	CategoryID      uuid.UUID
	CategoryName    string
	GroupName       string
	GroupColor      *string
	Minutes         int
	PreviousMinutes int
	MinutesDelta    int
	PercentChange   float64
	PercentOfTotal  float64
}

type ProductiveDay struct {
	Date    time.Time
	DayName string
	Minutes int
}

type LongestActivityDetail struct {
	CategoryName string
	Minutes      int
	Date         time.Time
	StartTime    TimeOfDay
	EndTime      TimeOfDay
}

type DailyBreakdownItem struct {
	Date            time.Time
	DayName         string
	Minutes         int
	ActivitiesCount int
}

type GoalStatus string

const (
	GoalStatusUnder     GoalStatus = "under"
	GoalStatusOnTrack   GoalStatus = "on_track"
	GoalStatusTargetMet GoalStatus = "target_met"
	GoalStatusOver      GoalStatus = "over"
)

type GoalProgress struct {
	CategoryID          uuid.UUID
	CategoryName        string
	CurrentWeekMinutes  int
	TargetWeeklyMinutes int
	MinWeeklyMinutes    int
	MaxWeeklyMinutes    int
	ProgressPercent     float64
	Status              GoalStatus
}

type PeriodStats struct {
	ActivitiesCount                 int
	PreviousActivitiesCount         int
	ActivitiesCountDelta            int
	CategoriesUsed                  int
	PreviousCategoriesUsed          int
	CategoriesUsedDelta             int
	AverageActivityDuration         float64
	PreviousAverageActivityDuration float64
	AverageActivityDurationDelta    float64
	LongestActivity                 *LongestActivityDetail
}

type WeeklyStats struct {
	PeriodStats
	AverageDailyMinutes         float64
	PreviousAverageDailyMinutes float64
	AverageDailyMinutesDelta    float64
	MostProductiveDay           *ProductiveDay
	LeastProductiveDay          *ProductiveDay
}

type WeeklyComparison struct {
	WeekStart                 time.Time
	WeekEnd                   time.Time
	PreviousWeekStart         time.Time
	PreviousWeekEnd           time.Time
	TotalMinutes              int
	PreviousTotalMinutes      int
	TotalMinutesDelta         int
	TotalMinutesPercentChange float64
	GroupBreakdown            []GroupComparison
	TopCategories             []CategoryComparison
	Stats                     WeeklyStats
	DailyBreakdown            []DailyBreakdownItem
	// GoalsProgress is nil when the user tracks no goals.
	GoalsProgress []GoalProgress
}

type ProductivityBreakdown struct {
	MandatoryMinutes         int
	PreviousMandatoryMinutes int
	MandatoryMinutesDelta    int
	MandatoryPercentOfTotal  float64
	OptionalMinutes          int
	PreviousOptionalMinutes  int
	OptionalMinutesDelta     int
	OptionalPercentOfTotal   float64
}

type DailyComparison struct {
	Date                      time.Time
	PreviousDate              time.Time
	TotalMinutes              int
	PreviousTotalMinutes      int
	TotalMinutesDelta         int
	TotalMinutesPercentChange float64
	GroupBreakdown            []GroupComparison
	TopCategories             []CategoryComparison
	Stats                     PeriodStats
	// Productivity is nil when neither day has any tracked time.
	Productivity *ProductivityBreakdown
}
