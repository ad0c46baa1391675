package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"
)

func CreateBudget(ctx context.Context, pool Querier, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, category_id, limit_amount, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category_id, limit_amount, start_date, end_date
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query,
		budget.UserID, budget.CategoryID, budget.LimitAmount, budget.StartDate, budget.EndDate).
		Scan(&b.ID, &b.UserID, &b.CategoryID, &b.LimitAmount, &b.StartDate, &b.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return &b, nil
}

func GetBudgetsForUser(ctx context.Context, pool Querier, userID int64) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category_id, limit_amount, start_date, end_date
		FROM budgets
		WHERE user_id = $1
		ORDER BY start_date DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.LimitAmount, &b.StartDate, &b.EndDate); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}
