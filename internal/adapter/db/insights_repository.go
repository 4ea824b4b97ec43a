package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

// Every aggregate skips running timers and works on finished activities only.
const (
	activityMinutesExpr = `EXTRACT(EPOCH FROM (a.end_time - a.start_time)) / 60.0`
	finishedInRange     = `a.user_id = $1 AND a.date BETWEEN $2 AND $3 AND a.end_time IS NOT NULL`

	totalMinutesQuery = `
SELECT COALESCE(SUM(` + activityMinutesExpr + `), 0)
FROM activities a
WHERE ` + finishedInRange

	groupBreakdownQuery = `
SELECT g.id AS group_id, g.name AS group_name, g.color AS group_color,
  SUM(` + activityMinutesExpr + `) AS minutes
FROM activities a
JOIN categories c ON c.id = a.category_id
JOIN groups g ON g.id = c.group_id
WHERE ` + finishedInRange + `
GROUP BY g.id, g.name, g.color
ORDER BY minutes DESC`

	topCategoriesQuery = `
SELECT c.id AS category_id, c.name AS category_name, g.name AS group_name, g.color AS group_color,
  SUM(` + activityMinutesExpr + `) AS minutes
FROM activities a
JOIN categories c ON c.id = a.category_id
JOIN groups g ON g.id = c.group_id
WHERE ` + finishedInRange + `
GROUP BY c.id, c.name, g.name, g.color
ORDER BY minutes DESC
LIMIT $4`

	activityStatsQuery = `
SELECT COUNT(*) AS activities_count,
  COALESCE(AVG(` + activityMinutesExpr + `), 0) AS avg_minutes,
  COUNT(DISTINCT a.category_id) AS categories_used
FROM activities a
WHERE ` + finishedInRange

	dailyTotalsQuery = `
SELECT a.date AS date, SUM(` + activityMinutesExpr + `) AS minutes, COUNT(*) AS activities_count
FROM activities a
WHERE ` + finishedInRange + `
GROUP BY a.date
ORDER BY a.date`

	longestActivityQuery = `
SELECT c.name AS category_name, ` + activityMinutesExpr + ` AS minutes,
  a.date AS date, a.start_time AS start_time, a.end_time AS end_time
FROM activities a
JOIN categories c ON c.id = a.category_id
WHERE ` + finishedInRange + `
ORDER BY minutes DESC, a.date, a.start_time
LIMIT 1`

	mandatoryMinutesQuery = `
SELECT COALESCE(SUM(` + activityMinutesExpr + `), 0)
FROM activities a
JOIN categories c ON c.id = a.category_id
WHERE ` + finishedInRange + ` AND c.mandatory = TRUE`

	goalCategoryMinutesQuery = `
SELECT c.id, c.user_id, c.group_id, c.name, c.priority, c.min_weekly_hours, c.target_weekly_hours,
  c.max_weekly_hours, c.unit, c.mandatory, c.created_at, c.updated_at,
  COALESCE(SUM(` + activityMinutesExpr + `), 0) AS minutes
FROM categories c
LEFT JOIN activities a ON a.category_id = c.id
  AND a.date BETWEEN $2 AND $3 AND a.end_time IS NOT NULL
WHERE c.user_id = $1 AND c.target_weekly_hours > 0
GROUP BY c.id
ORDER BY c.priority, c.name`
)

type InsightsRepository struct {
	db *sqlx.DB
}

type groupMinutesRow struct {
	GroupID    uuid.UUID      `db:"group_id"`
	GroupName  string         `db:"group_name"`
	GroupColor sql.NullString `db:"group_color"`
	Minutes    float64        `db:"minutes"`
}

type categoryMinutesRow struct {
	CategoryID   uuid.UUID      `db:"category_id"`
	CategoryName string         `db:"category_name"`
	GroupName    string         `db:"group_name"`
	GroupColor   sql.NullString `db:"group_color"`
	Minutes      float64        `db:"minutes"`
}

type activityStatsRow struct {
	Count      int     `db:"activities_count"`
	AvgMinutes float64 `db:"avg_minutes"`
	Categories int     `db:"categories_used"`
}

type dayMinutesRow struct {
	Date    time.Time `db:"date"`
	Minutes float64   `db:"minutes"`
	Count   int       `db:"activities_count"`
}

type longestActivityRow struct {
	CategoryName string    `db:"category_name"`
	Minutes      float64   `db:"minutes"`
	Date         time.Time `db:"date"`
	StartTime    string    `db:"start_time"`
	EndTime      string    `db:"end_time"`
}

type goalCategoryRow struct {
	categoryRow
	Minutes float64 `db:"minutes"`
}

var _ ports.InsightsRepository = (*InsightsRepository)(nil)

func NewInsightsRepository(db *sqlx.DB) *InsightsRepository {
	return &InsightsRepository{db: db}
}

func rangeArgs(userID uuid.UUID, r domain.DateRange) []interface{} {
	return []interface{}{userID, r.Start.Format(domain.DateLayout), r.End.Format(domain.DateLayout)}
}

func (r *InsightsRepository) TotalMinutes(ctx context.Context, userID uuid.UUID, dr domain.DateRange) (float64, error) {
	var total float64
	err := conn(ctx, r.db).GetContext(ctx, &total, totalMinutesQuery, rangeArgs(userID, dr)...)
	return total, err
}

func (r *InsightsRepository) GroupBreakdown(ctx context.Context, userID uuid.UUID, dr domain.DateRange) ([]domain.GroupMinutes, error) {
	var rows []groupMinutesRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, groupBreakdownQuery, rangeArgs(userID, dr)...); err != nil {
		return nil, err
	}
	groups := make([]domain.GroupMinutes, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, domain.GroupMinutes{
			GroupID:    row.GroupID,
			GroupName:  row.GroupName,
			GroupColor: stringPtr(row.GroupColor),
			Minutes:    row.Minutes,
		})
	}
	return groups, nil
}

func (r *InsightsRepository) TopCategories(ctx context.Context, userID uuid.UUID, dr domain.DateRange, limit int) ([]domain.CategoryMinutes, error) {
	args := append(rangeArgs(userID, dr), limit)
	var rows []categoryMinutesRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, topCategoriesQuery, args...); err != nil {
		return nil, err
	}
	categories := make([]domain.CategoryMinutes, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.CategoryMinutes{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			GroupName:    row.GroupName,
			GroupColor:   stringPtr(row.GroupColor),
			Minutes:      row.Minutes,
		})
	}
	return categories, nil
}

func (r *InsightsRepository) ActivityStats(ctx context.Context, userID uuid.UUID, dr domain.DateRange) (domain.ActivityStats, error) {
	var row activityStatsRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, activityStatsQuery, rangeArgs(userID, dr)...); err != nil {
		return domain.ActivityStats{}, err
	}
	return domain.ActivityStats{
		Count:              row.Count,
		AvgDurationMinutes: row.AvgMinutes,
		DistinctCategories: row.Categories,
	}, nil
}

func (r *InsightsRepository) DailyTotals(ctx context.Context, userID uuid.UUID, dr domain.DateRange) ([]domain.DayMinutes, error) {
	var rows []dayMinutesRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, dailyTotalsQuery, rangeArgs(userID, dr)...); err != nil {
		return nil, err
	}
	days := make([]domain.DayMinutes, 0, len(rows))
	for _, row := range rows {
		days = append(days, domain.DayMinutes{Date: row.Date, Minutes: row.Minutes, Count: row.Count})
	}
	return days, nil
}

func (r *InsightsRepository) LongestActivity(ctx context.Context, userID uuid.UUID, dr domain.DateRange) (*domain.LongestActivity, error) {
	var row longestActivityRow
	err := conn(ctx, r.db).GetContext(ctx, &row, longestActivityQuery, rangeArgs(userID, dr)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseTimeOfDay(row.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseTimeOfDay(row.EndTime)
	if err != nil {
		return nil, err
	}
	return &domain.LongestActivity{
		CategoryName: row.CategoryName,
		Minutes:      row.Minutes,
		Date:         row.Date,
		StartTime:    start,
		EndTime:      end,
	}, nil
}

func (r *InsightsRepository) MandatoryMinutes(ctx context.Context, userID uuid.UUID, dr domain.DateRange) (float64, error) {
	var total float64
	err := conn(ctx, r.db).GetContext(ctx, &total, mandatoryMinutesQuery, rangeArgs(userID, dr)...)
	return total, err
}

func (r *InsightsRepository) GoalCategoryMinutes(ctx context.Context, userID uuid.UUID, dr domain.DateRange) ([]domain.GoalCategoryMinutes, error) {
	var rows []goalCategoryRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, goalCategoryMinutesQuery, rangeArgs(userID, dr)...); err != nil {
		return nil, err
	}
	goals := make([]domain.GoalCategoryMinutes, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, domain.GoalCategoryMinutes{
			Category: mapCategoryRowToDomain(row.categoryRow),
			Minutes:  row.Minutes,
		})
	}
	return goals, nil
}
