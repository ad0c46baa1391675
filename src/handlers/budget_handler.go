package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

func CreateBudget(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.CreateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateAmount(req.LimitAmount) {
			log.Printf("ERROR: Invalid budget limit %f for user %d", req.LimitAmount, userID)
			http.Error(w, "limit_amount must be positive", http.StatusBadRequest)
			return
		}

		startDate, err := parseDate(req.StartDate)
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if endDate.Before(startDate) {
			http.Error(w, "end_date must not precede start_date", http.StatusBadRequest)
			return
		}

		if _, err := db.GetCategoryByID(r.Context(), pool, userID, req.CategoryID); err != nil {
			log.Printf("ERROR: Category %d not found for user %d: %v", req.CategoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		budget := &models.Budget{
			UserID:      userID,
			CategoryID:  req.CategoryID,
			LimitAmount: req.LimitAmount,
			StartDate:   startDate,
			EndDate:     endDate,
		}
		created, err := db.CreateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to create budget for user %d: %v", userID, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created budget id %d for user %d, category %d", created.ID, userID, created.CategoryID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBudgets(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		budgets, err := db.GetBudgetsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %d: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}
