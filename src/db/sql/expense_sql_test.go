package db

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteExpense_ForeignOwnerLeavesRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// The delete is scoped by user_id, so a row owned by someone else
	// matches nothing and the caller sees not-found.
	mock.ExpectExec(`DELETE FROM expenses WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(10), int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = DeleteExpense(context.Background(), mock, 2, 10)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpense_OwnedRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM expenses WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = DeleteExpense(context.Background(), mock, 1, 10)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
