package models

import "time"

type Income struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CategoryID  *int64    `json:"category_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type CreateIncomeRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	Date        string  `json:"date"`
}
