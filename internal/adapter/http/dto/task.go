package dto

type TaskItem struct {
	ID                       string   `json:"id"`
	UserID                   string   `json:"userId"`
	TaskListID               string   `json:"taskListId"`
	CategoryID               *string  `json:"categoryId"`
	Title                    string   `json:"title"`
	Description              *string  `json:"description"`
	Status                   string   `json:"status"`
	Priority                 string   `json:"priority"`
	DueDate                  *string  `json:"dueDate"`
	ScheduledDate            *string  `json:"scheduledDate"`
	ScheduledStartTime       *string  `json:"scheduledStartTime"`
	ScheduledEndTime         *string  `json:"scheduledEndTime"`
	EstimatedDurationMinutes *int     `json:"estimatedDurationMinutes"`
	RecurrenceRule           *string  `json:"recurrenceRule"`
	ExceptionDates           []string `json:"exceptionDates"`
	Position                 int      `json:"position"`
	ActivityIDs              []string `json:"activityIds"`
	CreatedAt                string   `json:"createdAt"`
	UpdatedAt                string   `json:"updatedAt"`
}

type CreateTaskRequest struct {
	TaskListID               string   `json:"taskListId" binding:"required,uuid"`
	CategoryID               *string  `json:"categoryId" binding:"omitempty,uuid"`
	Title                    string   `json:"title" binding:"required,max=255"`
	Description              *string  `json:"description" binding:"omitempty,max=65535"`
	Status                   *string  `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	Priority                 *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate                  *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ScheduledDate            *string  `json:"scheduledDate" binding:"omitempty,datetime=2006-01-02"`
	ScheduledStartTime       *string  `json:"scheduledStartTime"`
	ScheduledEndTime         *string  `json:"scheduledEndTime"`
	EstimatedDurationMinutes *int     `json:"estimatedDurationMinutes" binding:"omitempty,gte=0"`
	RecurrenceRule           *string  `json:"recurrenceRule"`
	ExceptionDates           []string `json:"exceptionDates" binding:"omitempty,dive,datetime=2006-01-02"`
	Position                 *int     `json:"position" binding:"omitempty,gte=0"`
}

type UpdateTaskRequest struct {
	TaskListID               *string  `json:"taskListId" binding:"omitempty,uuid"`
	CategoryID               *string  `json:"categoryId" binding:"omitempty,uuid"`
	Title                    *string  `json:"title" binding:"omitempty,max=255"`
	Description              *string  `json:"description" binding:"omitempty,max=65535"`
	Status                   *string  `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	Priority                 *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate                  *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ScheduledDate            *string  `json:"scheduledDate" binding:"omitempty,datetime=2006-01-02"`
	ScheduledStartTime       *string  `json:"scheduledStartTime"`
	ScheduledEndTime         *string  `json:"scheduledEndTime"`
	EstimatedDurationMinutes *int     `json:"estimatedDurationMinutes" binding:"omitempty,gte=0"`
	RecurrenceRule           *string  `json:"recurrenceRule"`
	ExceptionDates           []string `json:"exceptionDates" binding:"omitempty,dive,datetime=2006-01-02"`
	Position                 *int     `json:"position" binding:"omitempty,gte=0"`
}

type CompleteTaskRequest struct {
	AddToTracker bool    `json:"addToTracker"`
	CategoryID   *string `json:"categoryId" binding:"omitempty,uuid"`
	Date         *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
	Notes        *string `json:"notes" binding:"omitempty,max=65535"`
}

type ConvertTaskRequest struct {
	CategoryID *string `json:"categoryId" binding:"omitempty,uuid"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	Notes      *string `json:"notes" binding:"omitempty,max=65535"`
}

type TaskActivityItem struct {
	ID         string `json:"id"`
	TaskID     string `json:"taskId"`
	ActivityID string `json:"activityId"`
	CreatedAt  string `json:"createdAt"`
}

type RollingFailureItem struct {
	TaskID string `json:"taskId"`
	Title  string `json:"title"`
	Error  string `json:"error"`
}

type RollingGenerationResponse struct {
	Message               string               `json:"message"`
	CreatedCount          int                  `json:"createdCount"`
	RecurringTasksChecked int                  `json:"recurringTasksChecked"`
	Failures              []RollingFailureItem `json:"failures"`
}
