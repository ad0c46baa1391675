package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
)

func GetBalance(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		balance, err := db.GetBalance(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to compute balance for user %d: %v", userID, err)
			http.Error(w, "failed to compute balance", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(balance)
	}
}

func GetCategoryStats(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		stats, err := db.GetExpensesByCategory(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to compute category statistics for user %d: %v", userID, err)
			http.Error(w, "failed to compute statistics", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}
