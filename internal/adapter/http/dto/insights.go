package dto

type GroupComparisonItem struct {
	GroupID         string  `json:"groupId"`
	GroupName       string  `json:"groupName"`
	GroupColor      *string `json:"groupColor"`
	Minutes         int     `json:"minutes"`
	PreviousMinutes int     `json:"previousMinutes"`
	MinutesDelta    int     `json:"minutesDelta"`
	PercentChange   float64 `json:"percentChange"`
	PercentOfTotal  float64 `json:"percentOfTotal"`
}

type CategoryComparisonItem struct {
	CategoryID      string  `json:"categoryId"`
	CategoryName    string  `json:"categoryName"`
	GroupName       string  `json:"groupName"`
	GroupColor      *string `json:"groupColor"`
	Minutes         int     `json:"minutes"`
	PreviousMinutes int     `json:"previousMinutes"`
	MinutesDelta    int     `json:"minutesDelta"`
	PercentChange   float64 `json:"percentChange"`
	PercentOfTotal  float64 `json:"percentOfTotal"`
}

type ProductiveDayItem struct {
	Date    string `json:"date"`
	DayName string `json:"dayName"`
	Minutes int    `json:"minutes"`
}

type LongestActivityItem struct {
	CategoryName string `json:"categoryName"`
	Minutes      int    `json:"minutes"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type DailyBreakdownItem struct {
	Date            string `json:"date"`
	DayName         string `json:"dayName"`
	Minutes         int    `json:"minutes"`
	ActivitiesCount int    `json:"activitiesCount"`
}

type GoalProgressItem struct {
	CategoryID          string  `json:"categoryId"`
	CategoryName        string  `json:"categoryName"`
	CurrentWeekMinutes  int     `json:"currentWeekMinutes"`
	TargetWeeklyMinutes int     `json:"targetWeeklyMinutes"`
	MinWeeklyMinutes    int     `json:"minWeeklyMinutes"`
	MaxWeeklyMinutes    int     `json:"maxWeeklyMinutes"`
	ProgressPercent     float64 `json:"progressPercent"`
	Status              string  `json:"status"`
}

type PeriodStatsItem struct {
	ActivitiesCount                 int                  `json:"activitiesCount"`
	PreviousActivitiesCount         int                  `json:"previousActivitiesCount"`
	ActivitiesCountDelta            int                  `json:"activitiesCountDelta"`
	CategoriesUsed                  int                  `json:"categoriesUsed"`
	PreviousCategoriesUsed          int                  `json:"previousCategoriesUsed"`
	CategoriesUsedDelta             int                  `json:"categoriesUsedDelta"`
	AverageActivityDuration         float64              `json:"averageActivityDuration"`
	PreviousAverageActivityDuration float64              `json:"previousAverageActivityDuration"`
	AverageActivityDurationDelta    float64              `json:"averageActivityDurationDelta"`
	LongestActivity                 *LongestActivityItem `json:"longestActivity"`
}

type WeeklyStatsItem struct {
	PeriodStatsItem
	AverageDailyMinutes         float64            `json:"averageDailyMinutes"`
	PreviousAverageDailyMinutes float64            `json:"previousAverageDailyMinutes"`
	AverageDailyMinutesDelta    float64            `json:"averageDailyMinutesDelta"`
	MostProductiveDay           *ProductiveDayItem `json:"mostProductiveDay"`
	LeastProductiveDay          *ProductiveDayItem `json:"leastProductiveDay"`
}

type WeeklyComparisonResponse struct {
	WeekStart                 string                   `json:"weekStart"`
	WeekEnd                   string                   `json:"weekEnd"`
	PreviousWeekStart         string                   `json:"previousWeekStart"`
	PreviousWeekEnd           string                   `json:"previousWeekEnd"`
	TotalMinutes              int                      `json:"totalMinutes"`
	PreviousTotalMinutes      int                      `json:"previousTotalMinutes"`
	TotalMinutesDelta         int                      `json:"totalMinutesDelta"`
	TotalMinutesPercentChange float64                  `json:"totalMinutesPercentChange"`
	GroupBreakdown            []GroupComparisonItem    `json:"groupBreakdown"`
	TopCategories             []CategoryComparisonItem `json:"topCategories"`
	Stats                     WeeklyStatsItem          `json:"stats"`
	DailyBreakdown            []DailyBreakdownItem     `json:"dailyBreakdown"`
	GoalsProgress             []GoalProgressItem       `json:"goalsProgress"`
}

type ProductivityItem struct {
	MandatoryMinutes         int     `json:"mandatoryMinutes"`
	PreviousMandatoryMinutes int     `json:"previousMandatoryMinutes"`
	MandatoryMinutesDelta    int     `json:"mandatoryMinutesDelta"`
	MandatoryPercentOfTotal  float64 `json:"mandatoryPercentOfTotal"`
	OptionalMinutes          int     `json:"optionalMinutes"`
	PreviousOptionalMinutes  int     `json:"previousOptionalMinutes"`
	OptionalMinutesDelta     int     `json:"optionalMinutesDelta"`
	OptionalPercentOfTotal   float64 `json:"optionalPercentOfTotal"`
}

type DailyComparisonResponse struct {
	Date                      string                   `json:"date"`
	PreviousDate              string                   `json:"previousDate"`
	TotalMinutes              int                      `json:"totalMinutes"`
	PreviousTotalMinutes      int                      `json:"previousTotalMinutes"`
	TotalMinutesDelta         int                      `json:"totalMinutesDelta"`
	TotalMinutesPercentChange float64                  `json:"totalMinutesPercentChange"`
	GroupBreakdown            []GroupComparisonItem    `json:"groupBreakdown"`
	TopCategories             []CategoryComparisonItem `json:"topCategories"`
	Stats                     PeriodStatsItem          `json:"stats"`
	Productivity              *ProductivityItem        `json:"productivity"`
}
