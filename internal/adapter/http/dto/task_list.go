package dto

type TaskListItem struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	Color     *string `json:"color"`
	Icon      *string `json:"icon"`
	Position  int     `json:"position"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type CreateTaskListRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Color    *string `json:"color" binding:"omitempty,hexcolor"`
	Icon     *string `json:"icon" binding:"omitempty,max=64"`
	Position *int    `json:"position" binding:"omitempty,gte=0"`
}

type UpdateTaskListRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Color    *string `json:"color" binding:"omitempty,hexcolor"`
	Icon     *string `json:"icon" binding:"omitempty,max=64"`
	Position *int    `json:"position" binding:"omitempty,gte=0"`
}
