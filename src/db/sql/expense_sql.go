package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

func CreateExpense(ctx context.Context, pool Querier, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, category_id, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category_id, amount, description, date
	`
	var e models.Expense
	err := pool.QueryRow(ctx, query,
		expense.UserID, expense.CategoryID, expense.Amount, expense.Description, expense.Date).
		Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Description, &e.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &e, nil
}

func GetExpensesForUser(ctx context.Context, pool Querier, userID int64) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, category_id, amount, description, date
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Description, &e.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// UpdateExpense applies a partial update: nil fields keep their stored value.
func UpdateExpense(ctx context.Context, pool Querier, userID, expenseID int64,
	amount *float64, description *string, categoryID *int64, date *time.Time) (*models.Expense, error) {

	query := `
		UPDATE expenses
		SET amount = COALESCE($1, amount),
		    description = COALESCE($2, description),
		    category_id = COALESCE($3, category_id),
		    date = COALESCE($4, date)
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, category_id, amount, description, date
	`
	var e models.Expense
	err := pool.QueryRow(ctx, query, amount, description, categoryID, date, expenseID, userID).
		Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Description, &e.Date)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return &e, nil
}

// DeleteExpense removes the row only when it belongs to userID; a foreign or
// absent id is reported as ErrNotFound and the store is left unchanged.
func DeleteExpense(ctx context.Context, pool Querier, userID, expenseID int64) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
