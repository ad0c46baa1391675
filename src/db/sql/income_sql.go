package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"
)

func CreateIncome(ctx context.Context, pool Querier, income *models.Income) (*models.Income, error) {
	query := `
		INSERT INTO incomes (user_id, category_id, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category_id, amount, description, date
	`
	var i models.Income
	err := pool.QueryRow(ctx, query,
		income.UserID, income.CategoryID, income.Amount, income.Description, income.Date).
		Scan(&i.ID, &i.UserID, &i.CategoryID, &i.Amount, &i.Description, &i.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}
	return &i, nil
}

func GetIncomesForUser(ctx context.Context, pool Querier, userID int64) ([]models.Income, error) {
	query := `
		SELECT id, user_id, category_id, amount, description, date
		FROM incomes
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var i models.Income
		if err := rows.Scan(&i.ID, &i.UserID, &i.CategoryID, &i.Amount, &i.Description, &i.Date); err != nil {
			return nil, err
		}
		incomes = append(incomes, i)
	}
	return incomes, rows.Err()
}
