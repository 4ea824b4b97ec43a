package dto

type CategoryItem struct {
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	GroupID           string  `json:"groupId"`
	Name              string  `json:"name"`
	Priority          int     `json:"priority"`
	MinWeeklyHours    float64 `json:"minWeeklyHours"`
	TargetWeeklyHours float64 `json:"targetWeeklyHours"`
	MaxWeeklyHours    float64 `json:"maxWeeklyHours"`
	Unit              string  `json:"unit"`
	Mandatory         bool    `json:"mandatory"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

type CreateCategoryRequest struct {
	GroupID           string   `json:"groupId" binding:"required,uuid"`
	Name              string   `json:"name" binding:"required,max=255"`
	Priority          *int     `json:"priority" binding:"omitempty,gte=1"`
	MinWeeklyHours    *float64 `json:"minWeeklyHours" binding:"omitempty,gte=0"`
	TargetWeeklyHours *float64 `json:"targetWeeklyHours" binding:"omitempty,gte=0"`
	MaxWeeklyHours    *float64 `json:"maxWeeklyHours" binding:"omitempty,gte=0"`
	Unit              *string  `json:"unit" binding:"omitempty,oneof=hours minutes count"`
	Mandatory         *bool    `json:"mandatory"`
}

type UpdateCategoryRequest struct {
	GroupID           *string  `json:"groupId" binding:"omitempty,uuid"`
	Name              *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Priority          *int     `json:"priority" binding:"omitempty,gte=1"`
	MinWeeklyHours    *float64 `json:"minWeeklyHours" binding:"omitempty,gte=0"`
	TargetWeeklyHours *float64 `json:"targetWeeklyHours" binding:"omitempty,gte=0"`
	MaxWeeklyHours    *float64 `json:"maxWeeklyHours" binding:"omitempty,gte=0"`
	Unit              *string  `json:"unit" binding:"omitempty,oneof=hours minutes count"`
	Mandatory         *bool    `json:"mandatory"`
}
