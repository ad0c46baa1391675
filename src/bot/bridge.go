package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// FallbackCategoryName is the category every chat-submitted expense lands in.
const FallbackCategoryName = "Other"

// ErrUnknownChat is returned by Store implementations when no account is
// linked to the sender's chat id.
var ErrUnknownChat = errors.New("unknown chat")

const (
	ReplyAccountNotFound = "Account not found. Link your chat in the app settings first."
	ReplyGreeting        = "Hello! Send me an expense as \"<amount> <description>\", e.g. \"2000 Taxi\"."
	ReplyNotUnderstood   = "Sorry, I didn't understand that. Send \"<amount> <description>\", e.g. \"2000 Taxi\"."
	ReplyInternalError   = "Something went wrong, please try again later."
)

// Store is the slice of the ledger the bridge needs.
type Store interface {
	UserIDByChatID(ctx context.Context, chatID int64) (int64, error)
	FallbackCategoryID(ctx context.Context, userID int64) (int64, error)
	AddExpense(ctx context.Context, userID, categoryID int64, amount float64, description string, date time.Time) error
}

type Bridge struct {
	store Store
	now   func() time.Time
}

func NewBridge(store Store) *Bridge {
	return &Bridge{store: store, now: time.Now}
}

// HandleMessage maps one inbound chat message to a reply. Unlinked senders
// and unparseable text never touch the ledger.
func (b *Bridge) HandleMessage(ctx context.Context, chatID int64, text string) string {
	userID, err := b.store.UserIDByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrUnknownChat) {
			return ReplyAccountNotFound
		}
		log.Printf("ERROR: Failed to resolve chat %d: %v", chatID, err)
		return ReplyInternalError
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "/start") {
		return ReplyGreeting
	}

	amount, description, ok := parseExpenseMessage(text)
	if !ok {
		return ReplyNotUnderstood
	}

	categoryID, err := b.store.FallbackCategoryID(ctx, userID)
	if err != nil {
		log.Printf("ERROR: Failed to resolve fallback category for user %d: %v", userID, err)
		return ReplyInternalError
	}

	now := b.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := b.store.AddExpense(ctx, userID, categoryID, amount, description, today); err != nil {
		log.Printf("ERROR: Failed to save chat expense for user %d: %v", userID, err)
		return ReplyInternalError
	}

	log.Printf("INFO: Chat expense saved for user %d, amount %.2f", userID, amount)
	return fmt.Sprintf("Saved expense: %.2f %s", amount, description)
}

// parseExpenseMessage splits "<amount> <description>" on the first
// whitespace. The first token must be a positive decimal number.
func parseExpenseMessage(text string) (float64, string, bool) {
	parts := strings.SplitN(text, " ", 2)

	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || amount <= 0 {
		return 0, "", false
	}

	description := ""
	if len(parts) == 2 {
		description = strings.TrimSpace(parts[1])
	}

	return amount, description, true
}
