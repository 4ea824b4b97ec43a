package dto

type GroupItem struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CreateGroupRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Color string `json:"color" binding:"required,hexcolor"`
}

type UpdateGroupRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}
