package models

type Category struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}
