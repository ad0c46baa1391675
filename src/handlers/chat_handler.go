package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"fintrack-server/src/bot"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Replier is the outbound half of the chat provider; *tgbotapi.BotAPI
// satisfies it.
type Replier interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// LinkChat binds the caller's account to a Telegram chat id. The mapping is
// one-to-one: a chat id already held by another account is a conflict.
func LinkChat(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.LinkChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode link chat request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.ChatID == 0 {
			http.Error(w, "chat_id is required", http.StatusBadRequest)
			return
		}

		existing, err := db.GetUserByChatID(r.Context(), pool, req.ChatID)
		if err == nil {
			if existing.ID != userID {
				log.Printf("ERROR: Chat %d already linked to user %d, rejected link for user %d", req.ChatID, existing.ID, userID)
				http.Error(w, "chat already linked to another account", http.StatusConflict)
				return
			}
			// Already linked to the caller; nothing to do.
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "chat linked"})
			return
		}
		if !errors.Is(err, db.ErrNotFound) {
			log.Printf("ERROR: Failed to check chat %d: %v", req.ChatID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := db.LinkTelegramChat(r.Context(), pool, userID, req.ChatID); err != nil {
			// Another request can win the chat id between the check above and
			// this update; the unique index reports it as a duplicate key.
			if strings.Contains(err.Error(), "duplicate key") {
				log.Printf("ERROR: Chat %d claimed concurrently, rejected link for user %d", req.ChatID, userID)
				http.Error(w, "chat already linked to another account", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to link chat %d to user %d: %v", req.ChatID, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Linked chat %d to user %d", req.ChatID, userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "chat linked"})
	}
}

// TelegramWebhook handles inbound provider updates. It acknowledges every
// delivery with 200 regardless of what happens inside, so the provider does
// not redeliver on our internal failures.
func TelegramWebhook(pool db.Querier, replier Replier) http.HandlerFunc {
	bridge := bot.NewBridge(bot.NewPGStore(pool))

	return func(w http.ResponseWriter, r *http.Request) {
		defer w.WriteHeader(http.StatusOK)

		var update tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			log.Printf("ERROR: Failed to decode webhook update: %v", err)
			return
		}

		if update.Message == nil || update.Message.Chat == nil {
			return
		}

		chatID := update.Message.Chat.ID
		reply := bridge.HandleMessage(r.Context(), chatID, update.Message.Text)

		if replier == nil {
			log.Printf("INFO: No bot configured, dropping reply to chat %d", chatID)
			return
		}

		msg := tgbotapi.NewMessage(chatID, reply)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := replier.Send(msg); err != nil {
			log.Printf("ERROR: Failed to send reply to chat %d: %v", chatID, err)
		}
	}
}
