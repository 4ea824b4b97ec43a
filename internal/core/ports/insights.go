package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

// InsightsRepository runs the aggregate queries behind insights. Every
// query ignores running timers and sums end_time - start_time in minutes.
type InsightsRepository interface {
	TotalMinutes(ctx context.Context, userID uuid.UUID, r domain.DateRange) (float64, error)
	GroupBreakdown(ctx context.Context, userID uuid.UUID, r domain.DateRange) ([]domain.GroupMinutes, error)
	TopCategories(ctx context.Context, userID uuid.UUID, r domain.DateRange, limit int) ([]domain.CategoryMinutes, error)
	ActivityStats(ctx context.Context, userID uuid.UUID, r domain.DateRange) (domain.ActivityStats, error)
	// DailyTotals returns only the days that have activities.
	DailyTotals(ctx context.Context, userID uuid.UUID, r domain.DateRange) ([]domain.DayMinutes, error)
	// LongestActivity returns nil when the range has no finished activity.
	LongestActivity(ctx context.Context, userID uuid.UUID, r domain.DateRange) (*domain.LongestActivity, error)
	MandatoryMinutes(ctx context.Context, userID uuid.UUID, r domain.DateRange) (float64, error)
	GoalCategoryMinutes(ctx context.Context, userID uuid.UUID, r domain.DateRange) ([]domain.GoalCategoryMinutes, error)
}

type InsightsService interface {
	WeeklyComparison(ctx context.Context, userID uuid.UUID, anyDate time.Time) (domain.WeeklyComparison, error)
	DailyComparison(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyComparison, error)
}
