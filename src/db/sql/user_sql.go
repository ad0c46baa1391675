package db

import (
	"context"
	"errors"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a row is absent or not owned by the caller.
var ErrNotFound = errors.New("not found")

func GetUserByID(ctx context.Context, pool Querier, id int64) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, password_hash, is_active, telegram_chat_id, created_at
		FROM users
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.TelegramChatID,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, pool Querier, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, password_hash, is_active, telegram_chat_id, created_at
		FROM users
		WHERE email = $1
	`
	err := pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.TelegramChatID,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func GetUserByChatID(ctx context.Context, pool Querier, chatID int64) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, password_hash, is_active, telegram_chat_id, created_at
		FROM users
		WHERE telegram_chat_id = $1
	`
	err := pool.QueryRow(ctx, query, chatID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.TelegramChatID,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func CreateUser(ctx context.Context, pool Querier, req models.RegisterRequest, hashedPassword string) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, is_active, telegram_chat_id, created_at
	`

	var user models.User
	err := pool.QueryRow(ctx, query, req.Username, req.Email, hashedPassword).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.TelegramChatID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func UpdateUserProfile(ctx context.Context, pool Querier, userID int64, username, email string) error {
	query := `
		UPDATE users
		SET username = $1, email = $2
		WHERE id = $3
	`
	cmd, err := pool.Exec(ctx, query, username, email, userID)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, pool Querier, userID int64, hashedPassword string) error {
	query := `
		UPDATE users
		SET password_hash = $1
		WHERE id = $2
	`
	cmd, err := pool.Exec(ctx, query, hashedPassword, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func LinkTelegramChat(ctx context.Context, pool Querier, userID, chatID int64) error {
	query := `
		UPDATE users
		SET telegram_chat_id = $1
		WHERE id = $2
	`
	cmd, err := pool.Exec(ctx, query, chatID, userID)
	if err != nil {
		return fmt.Errorf("failed to link chat: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user row; owned categories, expenses, incomes and
// budgets go with it via ON DELETE CASCADE.
func DeleteUser(ctx context.Context, pool Querier, userID int64) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`
	_, err := pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
