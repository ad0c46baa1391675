package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var defaultCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Entertainment",
	"Utilities",
	"Health",
	"Education",
	"Travel",
	"Other",
}

// SeedDefaultCategories creates the stock category list for the earliest
// registered user. Nothing enforces name uniqueness in the schema, so each
// name is checked before insert. The connection is acquired for the duration
// of the seed only.
func SeedDefaultCategories(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire seed connection: %w", err)
	}
	defer conn.Release()

	var userID int64
	err = conn.QueryRow(ctx, `SELECT id FROM users ORDER BY id LIMIT 1`).Scan(&userID)
	if err == pgx.ErrNoRows {
		log.Println("INFO: Seed skipped, no users registered yet")
		return nil
	}
	if err != nil {
		return fmt.Errorf("find seed user: %w", err)
	}

	for _, name := range defaultCategories {
		var exists bool
		err := conn.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM categories WHERE user_id = $1 AND name = $2)`,
			userID, name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check category %q: %w", name, err)
		}
		if exists {
			continue
		}

		if _, err := conn.Exec(ctx,
			`INSERT INTO categories (user_id, name) VALUES ($1, $2)`, userID, name); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		log.Printf("INFO: Seeded category %q for user %d", name, userID)
	}

	return nil
}
