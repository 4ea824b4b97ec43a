package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/period"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const TopCategoriesLimit = 5

type InsightsService struct {
	repo ports.InsightsRepository
}

func NewInsightsService(repo ports.InsightsRepository) *InsightsService {
	return &InsightsService{repo: repo}
}

var _ ports.InsightsService = (*InsightsService)(nil)

// periodSnapshot holds the aggregates shared by daily and weekly reports.
type periodSnapshot struct {
	total      float64
	groups     []domain.GroupMinutes
	categories []domain.CategoryMinutes
	stats      domain.ActivityStats
}

func (s *InsightsService) snapshot(ctx context.Context, userID uuid.UUID, r domain.DateRange) (periodSnapshot, error) {
	var snap periodSnapshot
	var err error

	if snap.total, err = s.repo.TotalMinutes(ctx, userID, r); err != nil {
		return snap, fmt.Errorf("total minutes: %w", err)
	}
	if snap.groups, err = s.repo.GroupBreakdown(ctx, userID, r); err != nil {
		return snap, fmt.Errorf("group breakdown: %w", err)
	}
	if snap.categories, err = s.repo.TopCategories(ctx, userID, r, TopCategoriesLimit); err != nil {
		return snap, fmt.Errorf("top categories: %w", err)
	}
	if snap.stats, err = s.repo.ActivityStats(ctx, userID, r); err != nil {
		return snap, fmt.Errorf("activity stats: %w", err)
	}
	return snap, nil
}

func (s *InsightsService) WeeklyComparison(ctx context.Context, userID uuid.UUID, anyDate time.Time) (domain.WeeklyComparison, error) {
	week := period.WeekBounds(anyDate)
	previousWeek := period.PreviousWeek(week)
	zap.L().Info("generating weekly comparison",
		zap.String("user_id", userID.String()),
		zap.Time("week_start", week.Start),
		zap.Time("previous_week_start", previousWeek.Start),
	)

	current, err := s.snapshot(ctx, userID, week)
	if err != nil {
		return domain.WeeklyComparison{}, err
	}
	previous, err := s.snapshot(ctx, userID, previousWeek)
	if err != nil {
		return domain.WeeklyComparison{}, err
	}

	days, err := s.repo.DailyTotals(ctx, userID, week)
	if err != nil {
		return domain.WeeklyComparison{}, fmt.Errorf("daily totals: %w", err)
	}
	longest, err := s.repo.LongestActivity(ctx, userID, week)
	if err != nil {
		return domain.WeeklyComparison{}, fmt.Errorf("longest activity: %w", err)
	}
	goals, err := s.repo.GoalCategoryMinutes(ctx, userID, week)
	if err != nil {
		return domain.WeeklyComparison{}, fmt.Errorf("goal categories: %w", err)
	}

	currentAvgDaily := current.total / period.DaysPerWeek
	previousAvgDaily := previous.total / period.DaysPerWeek
	most, least := ProductiveDays(days)

	report := domain.WeeklyComparison{
		WeekStart:                 week.Start,
		WeekEnd:                   week.End,
		PreviousWeekStart:         previousWeek.Start,
		PreviousWeekEnd:           previousWeek.End,
		TotalMinutes:              floorMinutes(current.total),
		PreviousTotalMinutes:      floorMinutes(previous.total),
		TotalMinutesPercentChange: PercentChange(current.total, previous.total),
		GroupBreakdown:            CompareGroups(current.groups, previous.groups, current.total),
		TopCategories:             CompareCategories(current.categories, previous.categories, current.total),
		Stats: domain.WeeklyStats{
			PeriodStats:                 compareStats(current.stats, previous.stats, longest),
			AverageDailyMinutes:         currentAvgDaily,
			PreviousAverageDailyMinutes: previousAvgDaily,
			AverageDailyMinutesDelta:    currentAvgDaily - previousAvgDaily,
			MostProductiveDay:           most,
			LeastProductiveDay:          least,
		},
		DailyBreakdown: FillWeek(week, days),
		GoalsProgress:  BuildGoalsProgress(goals),
	}
	report.TotalMinutesDelta = report.TotalMinutes - report.PreviousTotalMinutes

	zap.L().Info("weekly comparison generated",
		zap.String("user_id", userID.String()),
		zap.Int("total_minutes", report.TotalMinutes),
		zap.Int("activities_count", current.stats.Count),
	)
	return report, nil
}

func (s *InsightsService) DailyComparison(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyComparison, error) {
	day := period.Day(date)
	previousDay := period.Day(period.PreviousDay(date))
	zap.L().Info("generating daily comparison",
		zap.String("user_id", userID.String()),
		zap.Time("date", day.Start),
	)

	current, err := s.snapshot(ctx, userID, day)
	if err != nil {
		return domain.DailyComparison{}, err
	}
	previous, err := s.snapshot(ctx, userID, previousDay)
	if err != nil {
		return domain.DailyComparison{}, err
	}

	longest, err := s.repo.LongestActivity(ctx, userID, day)
	if err != nil {
		return domain.DailyComparison{}, fmt.Errorf("longest activity: %w", err)
	}
	currentMandatory, err := s.repo.MandatoryMinutes(ctx, userID, day)
	if err != nil {
		return domain.DailyComparison{}, fmt.Errorf("mandatory minutes: %w", err)
	}
	previousMandatory, err := s.repo.MandatoryMinutes(ctx, userID, previousDay)
	if err != nil {
		return domain.DailyComparison{}, fmt.Errorf("mandatory minutes: %w", err)
	}

	report := domain.DailyComparison{
		Date:                      day.Start,
		PreviousDate:              previousDay.Start,
		TotalMinutes:              floorMinutes(current.total),
		PreviousTotalMinutes:      floorMinutes(previous.total),
		TotalMinutesPercentChange: PercentChange(current.total, previous.total),
		GroupBreakdown:            CompareGroups(current.groups, previous.groups, current.total),
		TopCategories:             CompareCategories(current.categories, previous.categories, current.total),
		Stats:                     compareStats(current.stats, previous.stats, longest),
		Productivity:              productivity(current.total, previous.total, currentMandatory, previousMandatory),
	}
	report.TotalMinutesDelta = report.TotalMinutes - report.PreviousTotalMinutes

	zap.L().Info("daily comparison generated",
		zap.String("user_id", userID.String()),
		zap.Int("total_minutes", report.TotalMinutes),
		zap.Int("activities_count", current.stats.Count),
	)
	return report, nil
}

// PercentChange is 0 when both values are zero and 100 when only the
// previous value is zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func PercentOfTotal(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total * 100
}

// GoalStatusFor classifies minutes against thresholds already expressed in minutes.
func GoalStatusFor(current, minimum, target, maximum float64) domain.GoalStatus {
	switch {
	case current < minimum:
		return domain.GoalStatusUnder
	case current < target:
		return domain.GoalStatusOnTrack
	case current <= maximum:
		return domain.GoalStatusTargetMet
	default:
		return domain.GoalStatusOver
	}
}

// CompareGroups matches each current group to the previous period by name.
func CompareGroups(current, previous []domain.GroupMinutes, total float64) []domain.GroupComparison {
	previousByName := make(map[string]float64, len(previous))
	for _, g := range previous {
		previousByName[g.GroupName] = g.Minutes
	}

	out := make([]domain.GroupComparison, 0, len(current))
	for _, g := range current {
		prev := previousByName[g.GroupName]
		minutes, prevMinutes := floorMinutes(g.Minutes), floorMinutes(prev)
		out = append(out, domain.GroupComparison{
			GroupID:         g.GroupID,
			GroupName:       g.GroupName,
			GroupColor:      g.GroupColor,
			Minutes:         minutes,
			PreviousMinutes: prevMinutes,
			MinutesDelta:    minutes - prevMinutes,
			PercentChange:   PercentChange(g.Minutes, prev),
			PercentOfTotal:  PercentOfTotal(g.Minutes, total),
		})
	}
	return out
}

// CompareCategories matches each current category to the previous period by name.
func CompareCategories(current, previous []domain.CategoryMinutes, total float64) []domain.CategoryComparison {
	previousByName := make(map[string]float64, len(previous))
	for _, c := range previous {
		previousByName[c.CategoryName] = c.Minutes
	}

	out := make([]domain.CategoryComparison, 0, len(current))
	for _, c := range current {
		prev := previousByName[c.CategoryName]
		minutes, prevMinutes := floorMinutes(c.Minutes), floorMinutes(prev)
		out = append(out, domain.CategoryComparison{
			CategoryID:      c.CategoryID,
			CategoryName:    c.CategoryName,
			GroupName:       c.GroupName,
			GroupColor:      c.GroupColor,
			Minutes:         minutes,
			PreviousMinutes: prevMinutes,
			MinutesDelta:    minutes - prevMinutes,
			PercentChange:   PercentChange(c.Minutes, prev),
			PercentOfTotal:  PercentOfTotal(c.Minutes, total),
		})
	}
	return out
}

// FillWeek returns exactly seven entries, Monday through Sunday, with zeros
// for days absent from days.
func FillWeek(week domain.DateRange, days []domain.DayMinutes) []domain.DailyBreakdownItem {
	byDate := make(map[time.Time]domain.DayMinutes, len(days))
	for _, d := range days {
		byDate[period.Date(d.Date)] = d
	}

	out := make([]domain.DailyBreakdownItem, 0, period.DaysPerWeek)
	for i := 0; i < period.DaysPerWeek; i++ {
		date := week.Start.AddDate(0, 0, i)
		d := byDate[date]
		out = append(out, domain.DailyBreakdownItem{
			Date:            date,
			DayName:         period.DayName(date),
			Minutes:         floorMinutes(d.Minutes),
			ActivitiesCount: d.Count,
		})
	}
	return out
}

// ProductiveDays picks the days with the most and the fewest minutes. Days
// without tracked time never qualify. Ties go to the earliest date.
func ProductiveDays(days []domain.DayMinutes) (most, least *domain.ProductiveDay) {
	var best, worst *domain.DayMinutes
	for i := range days {
		d := &days[i]
		if d.Minutes <= 0 {
			continue
		}
		if best == nil || d.Minutes > best.Minutes || (d.Minutes == best.Minutes && d.Date.Before(best.Date)) {
			best = d
		}
		if worst == nil || d.Minutes < worst.Minutes || (d.Minutes == worst.Minutes && d.Date.Before(worst.Date)) {
			worst = d
		}
	}
	return toProductiveDay(best), toProductiveDay(worst)
}

func toProductiveDay(d *domain.DayMinutes) *domain.ProductiveDay {
	if d == nil {
		return nil
	}
	date := period.Date(d.Date)
	return &domain.ProductiveDay{Date: date, DayName: period.DayName(date), Minutes: floorMinutes(d.Minutes)}
}

// BuildGoalsProgress returns nil when no category carries a goal.
func BuildGoalsProgress(goals []domain.GoalCategoryMinutes) []domain.GoalProgress {
	var out []domain.GoalProgress
	for _, g := range goals {
		if !g.Category.HasGoal() {
			continue
		}
		minMinutes := g.Category.MinWeeklyHours * 60
		targetMinutes := g.Category.TargetWeeklyHours * 60
		maxMinutes := g.Category.MaxWeeklyHours * 60

		progress := 0.0
		if targetMinutes > 0 {
			progress = g.Minutes / targetMinutes * 100
		}
		out = append(out, domain.GoalProgress{
			CategoryID:          g.Category.ID,
			CategoryName:        g.Category.Name,
			CurrentWeekMinutes:  floorMinutes(g.Minutes),
			TargetWeeklyMinutes: floorMinutes(targetMinutes),
			MinWeeklyMinutes:    floorMinutes(minMinutes),
			MaxWeeklyMinutes:    floorMinutes(maxMinutes),
			ProgressPercent:     progress,
			Status:              GoalStatusFor(g.Minutes, minMinutes, targetMinutes, maxMinutes),
		})
	}
	return out
}

func compareStats(current, previous domain.ActivityStats, longest *domain.LongestActivity) domain.PeriodStats {
	stats := domain.PeriodStats{
		ActivitiesCount:                 current.Count,
		PreviousActivitiesCount:         previous.Count,
		ActivitiesCountDelta:            current.Count - previous.Count,
		CategoriesUsed:                  current.DistinctCategories,
		PreviousCategoriesUsed:          previous.DistinctCategories,
		CategoriesUsedDelta:             current.DistinctCategories - previous.DistinctCategories,
		AverageActivityDuration:         current.AvgDurationMinutes,
		PreviousAverageActivityDuration: previous.AvgDurationMinutes,
		AverageActivityDurationDelta:    current.AvgDurationMinutes - previous.AvgDurationMinutes,
	}
	if longest != nil {
		stats.LongestActivity = &domain.LongestActivityDetail{
			CategoryName: longest.CategoryName,
			Minutes:      floorMinutes(longest.Minutes),
			Date:         period.Date(longest.Date),
			StartTime:    longest.StartTime,
			EndTime:      longest.EndTime,
		}
	}
	return stats
}

func productivity(currentTotal, previousTotal, currentMandatory, previousMandatory float64) *domain.ProductivityBreakdown {
	if currentTotal <= 0 && previousTotal <= 0 {
		return nil
	}
	currentOptional := currentTotal - currentMandatory
	previousOptional := previousTotal - previousMandatory

	p := &domain.ProductivityBreakdown{
		MandatoryMinutes:         floorMinutes(currentMandatory),
		PreviousMandatoryMinutes: floorMinutes(previousMandatory),
		MandatoryPercentOfTotal:  PercentOfTotal(currentMandatory, currentTotal),
		OptionalMinutes:          floorMinutes(currentOptional),
		PreviousOptionalMinutes:  floorMinutes(previousOptional),
		OptionalPercentOfTotal:   PercentOfTotal(currentOptional, currentTotal),
	}
	p.MandatoryMinutesDelta = p.MandatoryMinutes - p.PreviousMandatoryMinutes
	p.OptionalMinutesDelta = p.OptionalMinutes - p.PreviousOptionalMinutes
	return p
}

func floorMinutes(v float64) int {
	return int(math.Floor(v))
}
