package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkChatRequest(t *testing.T, userID int64, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users/chat-link", strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), "user_id", userID))
}

func TestLinkChat_ChatHeldByAnotherAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	chatID := int64(555)
	mock.ExpectQuery(`WHERE telegram_chat_id = \$1`).
		WithArgs(chatID).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(2), "other", "other@example.com", []byte("hash"), true, &chatID, time.Now()))

	rec := httptest.NewRecorder()
	LinkChat(mock).ServeHTTP(rec, linkChatRequest(t, 1, `{"chat_id": 555}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "chat already linked to another account")
	assert.NoError(t, mock.ExpectationsWereMet(), "no update may run once the conflict is detected")
}

func TestLinkChat_AlreadyLinkedToCaller(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	chatID := int64(555)
	mock.ExpectQuery(`WHERE telegram_chat_id = \$1`).
		WithArgs(chatID).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(1), "caller", "caller@example.com", []byte("hash"), true, &chatID, time.Now()))

	rec := httptest.NewRecorder()
	LinkChat(mock).ServeHTTP(rec, linkChatRequest(t, 1, `{"chat_id": 555}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkChat_ConcurrentClaimConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// The chat is free at check time but another request claims it before the
	// update lands; the unique index rejection must read as a conflict, not a
	// server error.
	mock.ExpectQuery(`WHERE telegram_chat_id = \$1`).
		WithArgs(int64(555)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec(`UPDATE users`).
		WithArgs(int64(555), int64(1)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_telegram_chat_id_key" (SQLSTATE 23505)`))

	rec := httptest.NewRecorder()
	LinkChat(mock).ServeHTTP(rec, linkChatRequest(t, 1, `{"chat_id": 555}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "chat already linked to another account")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkChat_MissingChatID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := httptest.NewRecorder()
	LinkChat(mock).ServeHTTP(rec, linkChatRequest(t, 1, `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
