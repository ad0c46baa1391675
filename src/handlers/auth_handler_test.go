package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "email", "password_hash", "is_active", "telegram_chat_id", "created_at"}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// The email is already held by another account; no INSERT may follow.
	mock.ExpectQuery(`FROM users`).
		WithArgs("taken@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(1), "existing", "taken@example.com", []byte("hash"), true, nil, time.Now()))

	body := `{"username": "newcomer", "email": "taken@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	Register(mock).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	body := `{"username": "newcomer", "email": "new@example.com", "password": "short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	Register(mock).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "validation failures must not reach the database")
}
