package models

import "time"

type Budget struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CategoryID  int64     `json:"category_id"`
	LimitAmount float64   `json:"limit_amount"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type CreateBudgetRequest struct {
	LimitAmount float64 `json:"limit_amount"`
	CategoryID  int64   `json:"category_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}
