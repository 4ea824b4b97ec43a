package dto

type ActivityItem struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	CategoryID    string  `json:"categoryId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       *string `json:"endTime"`
	Notes         *string `json:"notes"`
	IsRunning     bool    `json:"isRunning"`
	IsFromTask    bool    `json:"isFromTask"`
	TaskID        *string `json:"taskId"`
	TaskName      *string `json:"taskName"`
	TaskListColor *string `json:"taskListColor"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type CreateActivityRequest struct {
	CategoryID string  `json:"categoryId" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    *string `json:"endTime"`
	Notes      *string `json:"notes" binding:"omitempty,max=65535"`
}

type UpdateActivityRequest struct {
	CategoryID *string `json:"categoryId" binding:"omitempty,uuid"`
	Date       *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	Notes      *string `json:"notes" binding:"omitempty,max=65535"`
}

type StartTimerRequest struct {
	CategoryID string `json:"categoryId" binding:"required,uuid"`
}

type StopTimerAtRequest struct {
	EndTime string `json:"endTime" binding:"required"`
}
