package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

func CreateCategory(ctx context.Context, pool Querier, userID int64, name string) (*models.Category, error) {
	query := `
		INSERT INTO categories (user_id, name)
		VALUES ($1, $2)
		RETURNING id, user_id, name
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, userID, name).Scan(&c.ID, &c.UserID, &c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

func GetCategoriesForUser(ctx context.Context, pool Querier, userID int64) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name
		FROM categories
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryByID is scoped by user_id so a category belonging to someone
// else reads as absent.
func GetCategoryByID(ctx context.Context, pool Querier, userID, categoryID int64) (*models.Category, error) {
	query := `
		SELECT id, user_id, name
		FROM categories
		WHERE id = $1 AND user_id = $2
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, categoryID, userID).Scan(&c.ID, &c.UserID, &c.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &c, nil
}

// GetOrCreateCategoryByName returns the user's category with the given name,
// creating it on first use. Names are not unique at the schema level, so an
// existing duplicate simply wins by lowest id.
func GetOrCreateCategoryByName(ctx context.Context, pool Querier, userID int64, name string) (*models.Category, error) {
	query := `
		SELECT id, user_id, name
		FROM categories
		WHERE user_id = $1 AND name = $2
		ORDER BY id
		LIMIT 1
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, userID, name).Scan(&c.ID, &c.UserID, &c.Name)
	if err == nil {
		return &c, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return CreateCategory(ctx, pool, userID, name)
}
