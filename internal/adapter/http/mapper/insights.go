package mapper

import (
	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func ToWeeklyComparisonResponse(r domain.WeeklyComparison) dto.WeeklyComparisonResponse {
	resp := dto.WeeklyComparisonResponse{
		WeekStart:                 date(r.WeekStart),
		WeekEnd:                   date(r.WeekEnd),
		PreviousWeekStart:         date(r.PreviousWeekStart),
		PreviousWeekEnd:           date(r.PreviousWeekEnd),
		TotalMinutes:              r.TotalMinutes,
		PreviousTotalMinutes:      r.PreviousTotalMinutes,
		TotalMinutesDelta:         r.TotalMinutesDelta,
		TotalMinutesPercentChange: r.TotalMinutesPercentChange,
		GroupBreakdown:            toGroupComparisonItems(r.GroupBreakdown),
		TopCategories:             toCategoryComparisonItems(r.TopCategories),
		Stats: dto.WeeklyStatsItem{
			PeriodStatsItem:             toPeriodStatsItem(r.Stats.PeriodStats),
			AverageDailyMinutes:         r.Stats.AverageDailyMinutes,
			PreviousAverageDailyMinutes: r.Stats.PreviousAverageDailyMinutes,
			AverageDailyMinutesDelta:    r.Stats.AverageDailyMinutesDelta,
			MostProductiveDay:           toProductiveDayItem(r.Stats.MostProductiveDay),
			LeastProductiveDay:          toProductiveDayItem(r.Stats.LeastProductiveDay),
		},
		DailyBreakdown: make([]dto.DailyBreakdownItem, 0, len(r.DailyBreakdown)),
	}
	for _, d := range r.DailyBreakdown {
		resp.DailyBreakdown = append(resp.DailyBreakdown, dto.DailyBreakdownItem{
			Date:            date(d.Date),
			DayName:         d.DayName,
			Minutes:         d.Minutes,
			ActivitiesCount: d.ActivitiesCount,
		})
	}
	// goalsProgress stays null when no category tracks a goal.
	if r.GoalsProgress != nil {
		resp.GoalsProgress = make([]dto.GoalProgressItem, 0, len(r.GoalsProgress))
		for _, g := range r.GoalsProgress {
			resp.GoalsProgress = append(resp.GoalsProgress, dto.GoalProgressItem{
				CategoryID:          g.CategoryID.String(),
				CategoryName:        g.CategoryName,
				CurrentWeekMinutes:  g.CurrentWeekMinutes,
				TargetWeeklyMinutes: g.TargetWeeklyMinutes,
				MinWeeklyMinutes:    g.MinWeeklyMinutes,
				MaxWeeklyMinutes:    g.MaxWeeklyMinutes,
				ProgressPercent:     g.ProgressPercent,
				Status:              string(g.Status),
			})
		}
	}
	return resp
}

func ToDailyComparisonResponse(r domain.DailyComparison) dto.DailyComparisonResponse {
	resp := dto.DailyComparisonResponse{
		Date:                      date(r.Date),
		PreviousDate:              date(r.PreviousDate),
		TotalMinutes:              r.TotalMinutes,
		PreviousTotalMinutes:      r.PreviousTotalMinutes,
		TotalMinutesDelta:         r.TotalMinutesDelta,
		TotalMinutesPercentChange: r.TotalMinutesPercentChange,
		GroupBreakdown:            toGroupComparisonItems(r.GroupBreakdown),
		TopCategories:             toCategoryComparisonItems(r.TopCategories),
		Stats:                     toPeriodStatsItem(r.Stats),
	}
	if p := r.Productivity; p != nil {
		resp.Productivity = &dto.ProductivityItem{
			MandatoryMinutes:         p.MandatoryMinutes,
			PreviousMandatoryMinutes: p.PreviousMandatoryMinutes,
			MandatoryMinutesDelta:    p.MandatoryMinutesDelta,
			MandatoryPercentOfTotal:  p.MandatoryPercentOfTotal,
			OptionalMinutes:          p.OptionalMinutes,
			PreviousOptionalMinutes:  p.PreviousOptionalMinutes,
			OptionalMinutesDelta:     p.OptionalMinutesDelta,
			OptionalPercentOfTotal:   p.OptionalPercentOfTotal,
		}
	}
	return resp
}

func toGroupComparisonItems(groups []domain.GroupComparison) []dto.GroupComparisonItem {
	items := make([]dto.GroupComparisonItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, dto.GroupComparisonItem{
			GroupID:         g.GroupID.String(),
			GroupName:       g.GroupName,
			GroupColor:      g.GroupColor,
			Minutes:         g.Minutes,
			PreviousMinutes: g.PreviousMinutes,
			MinutesDelta:    g.MinutesDelta,
			PercentChange:   g.PercentChange,
			PercentOfTotal:  g.PercentOfTotal,
		})
	}
	return items
}

func toCategoryComparisonItems(categories []domain.CategoryComparison) []dto.CategoryComparisonItem {
	items := make([]dto.CategoryComparisonItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.CategoryComparisonItem{
			CategoryID:      c.CategoryID.String(),
			CategoryName:    c.CategoryName,
			GroupName:       c.GroupName,
			GroupColor:      c.GroupColor,
			Minutes:         c.Minutes,
			PreviousMinutes: c.PreviousMinutes,
			MinutesDelta:    c.MinutesDelta,
			PercentChange:   c.PercentChange,
			PercentOfTotal:  c.PercentOfTotal,
		})
	}
	return items
}

func toPeriodStatsItem(s domain.PeriodStats) dto.PeriodStatsItem {
	item := dto.PeriodStatsItem{
		ActivitiesCount:                 s.ActivitiesCount,
		PreviousActivitiesCount:         s.PreviousActivitiesCount,
		ActivitiesCountDelta:            s.ActivitiesCountDelta,
		CategoriesUsed:                  s.CategoriesUsed,
		PreviousCategoriesUsed:          s.PreviousCategoriesUsed,
		CategoriesUsedDelta:             s.CategoriesUsedDelta,
		AverageActivityDuration:         s.AverageActivityDuration,
		PreviousAverageActivityDuration: s.PreviousAverageActivityDuration,
		AverageActivityDurationDelta:    s.AverageActivityDurationDelta,
	}
	if l := s.LongestActivity; l != nil {
		item.LongestActivity = &dto.LongestActivityItem{
			CategoryName: l.CategoryName,
			Minutes:      l.Minutes,
			Date:         date(l.Date),
			StartTime:    l.StartTime.String(),
			EndTime:      l.EndTime.String(),
		}
	}
	return item
}

func toProductiveDayItem(d *domain.ProductiveDay) *dto.ProductiveDayItem {
	if d == nil {
		return nil
	}
	return &dto.ProductiveDayItem{Date: date(d.Date), DayName: d.DayName, Minutes: d.Minutes}
}
