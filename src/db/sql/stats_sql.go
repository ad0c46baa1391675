package db

import (
	"context"
	"fmt"

	cache "fintrack-server/src/db"
	"fintrack-server/src/models"
)

// GetBalance sums the caller's incomes and expenses. COALESCE pins both sums
// to zero when no rows exist, so a fresh user reads {0, 0, 0}.
func GetBalance(ctx context.Context, pool Querier, userID int64) (models.Balance, error) {
	if balance, ok := cache.GetBalanceCache(userID); ok {
		return balance, nil
	}

	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM incomes WHERE user_id = $1), 0),
			COALESCE((SELECT SUM(amount) FROM expenses WHERE user_id = $1), 0)
	`
	var balance models.Balance
	err := pool.QueryRow(ctx, query, userID).Scan(&balance.TotalIncome, &balance.TotalExpenses)
	if err != nil {
		return models.Balance{}, fmt.Errorf("failed to compute balance: %w", err)
	}
	balance.NetBalance = balance.TotalIncome - balance.TotalExpenses

	cache.SetBalanceCache(userID, balance)
	return balance, nil
}

// GetExpensesByCategory groups the caller's expenses by category name.
// Group order is whatever the planner produces.
func GetExpensesByCategory(ctx context.Context, pool Querier, userID int64) ([]models.CategoryStats, error) {
	if stats, ok := cache.GetStatsCache(userID); ok {
		return stats, nil
	}

	query := `
		SELECT c.name, SUM(e.amount)
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.user_id = $1
		GROUP BY c.name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.CategoryStats{}
	for rows.Next() {
		var s models.CategoryStats
		if err := rows.Scan(&s.CategoryName, &s.TotalAmount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cache.SetStatsCache(userID, stats)
	return stats, nil
}
