package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedExpense struct {
	UserID      int64
	CategoryID  int64
	Amount      float64
	Description string
	Date        time.Time
}

type fakeStore struct {
	links      map[int64]int64 // chat id -> user id
	categoryID int64
	expenses   []recordedExpense
}

func (s *fakeStore) UserIDByChatID(_ context.Context, chatID int64) (int64, error) {
	userID, ok := s.links[chatID]
	if !ok {
		return 0, ErrUnknownChat
	}
	return userID, nil
}

func (s *fakeStore) FallbackCategoryID(_ context.Context, _ int64) (int64, error) {
	return s.categoryID, nil
}

func (s *fakeStore) AddExpense(_ context.Context, userID, categoryID int64, amount float64, description string, date time.Time) error {
	s.expenses = append(s.expenses, recordedExpense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        date,
	})
	return nil
}

func newTestBridge(store *fakeStore) *Bridge {
	b := NewBridge(store)
	b.now = func() time.Time {
		return time.Date(2025, 6, 15, 13, 30, 0, 0, time.UTC)
	}
	return b
}

func TestHandleMessage_UnlinkedSender(t *testing.T) {
	store := &fakeStore{links: map[int64]int64{}}
	bridge := newTestBridge(store)

	reply := bridge.HandleMessage(context.Background(), 555, "2000 Taxi")

	assert.Equal(t, ReplyAccountNotFound, reply)
	assert.Empty(t, store.expenses, "no expense may be created for an unlinked sender")
}

func TestHandleMessage_Start(t *testing.T) {
	store := &fakeStore{links: map[int64]int64{555: 1}, categoryID: 9}
	bridge := newTestBridge(store)

	reply := bridge.HandleMessage(context.Background(), 555, "/start")

	assert.Equal(t, ReplyGreeting, reply)
	assert.Empty(t, store.expenses)
}

func TestHandleMessage_NotANumber(t *testing.T) {
	store := &fakeStore{links: map[int64]int64{555: 1}, categoryID: 9}
	bridge := newTestBridge(store)

	reply := bridge.HandleMessage(context.Background(), 555, "abc lunch")

	assert.Equal(t, ReplyNotUnderstood, reply)
	assert.Empty(t, store.expenses, "no expense may be created for unparseable text")
}

func TestHandleMessage_SavesExpense(t *testing.T) {
	store := &fakeStore{links: map[int64]int64{555: 42}, categoryID: 9}
	bridge := newTestBridge(store)

	reply := bridge.HandleMessage(context.Background(), 555, "2000 Taxi")

	assert.Equal(t, "Saved expense: 2000.00 Taxi", reply)
	require.Len(t, store.expenses, 1)

	e := store.expenses[0]
	assert.Equal(t, int64(42), e.UserID)
	assert.Equal(t, int64(9), e.CategoryID)
	assert.Equal(t, 2000.0, e.Amount)
	assert.Equal(t, "Taxi", e.Description)
	assert.Equal(t, 2025, e.Date.Year())
}

func TestHandleMessage_DateIsCalendarDay(t *testing.T) {
	store := &fakeStore{links: map[int64]int64{555: 42}, categoryID: 9}
	bridge := NewBridge(store)
	// 01:00 on June 16 in UTC+10 is still June 15 in UTC; the recorded date
	// must follow the wall clock, not the UTC instant.
	bridge.now = func() time.Time {
		return time.Date(2025, 6, 16, 1, 0, 0, 0, time.FixedZone("UTC+10", 10*3600))
	}

	bridge.HandleMessage(context.Background(), 555, "2000 Taxi")

	require.Len(t, store.expenses, 1)
	date := store.expenses[0].Date
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 16, date.Day())
}

func TestHandleMessage_AmountOnly(t *testing.T) {
	store := &fakeStore{links: map[int64]int64{555: 42}, categoryID: 9}
	bridge := newTestBridge(store)

	bridge.HandleMessage(context.Background(), 555, "350.5")

	require.Len(t, store.expenses, 1)
	assert.Equal(t, 350.5, store.expenses[0].Amount)
	assert.Equal(t, "", store.expenses[0].Description)
}

func TestParseExpenseMessage(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		amount   float64
		desc     string
		ok       bool
	}{
		{"amount and description", "2000 Taxi", 2000, "Taxi", true},
		{"multi-word description", "120.50 coffee with friends", 120.50, "coffee with friends", true},
		{"amount only", "75", 75, "", true},
		{"not a number", "abc lunch", 0, "", false},
		{"negative amount", "-50 refund", 0, "", false},
		{"zero amount", "0 nothing", 0, "", false},
		{"empty", "", 0, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, desc, ok := parseExpenseMessage(tc.text)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.amount, amount)
				assert.Equal(t, tc.desc, desc)
			}
		})
	}
}
