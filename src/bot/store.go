package bot

import (
	"context"
	"errors"
	"time"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
)

// PGStore backs the bridge with the same ledger tables the API uses.
type PGStore struct {
	pool db.Querier
}

func NewPGStore(pool db.Querier) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) UserIDByChatID(ctx context.Context, chatID int64) (int64, error) {
	user, err := db.GetUserByChatID(ctx, s.pool, chatID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return 0, ErrUnknownChat
		}
		return 0, err
	}
	return user.ID, nil
}

func (s *PGStore) FallbackCategoryID(ctx context.Context, userID int64) (int64, error) {
	category, err := db.GetOrCreateCategoryByName(ctx, s.pool, userID, FallbackCategoryName)
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}

func (s *PGStore) AddExpense(ctx context.Context, userID, categoryID int64, amount float64, description string, date time.Time) error {
	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        date,
	}
	if _, err := db.CreateExpense(ctx, s.pool, expense); err != nil {
		return err
	}
	cache.InvalidateUserAggregates(userID)
	return nil
}
