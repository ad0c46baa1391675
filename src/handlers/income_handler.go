package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

func CreateIncome(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.CreateIncomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create income request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateAmount(req.Amount) {
			log.Printf("ERROR: Invalid income amount %f for user %d", req.Amount, userID)
			http.Error(w, "amount must be positive", http.StatusBadRequest)
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid income date %q for user %d", req.Date, userID)
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		// Category is optional on incomes; when given it must be the caller's.
		if req.CategoryID != nil {
			if _, err := db.GetCategoryByID(r.Context(), pool, userID, *req.CategoryID); err != nil {
				log.Printf("ERROR: Category %d not found for user %d: %v", *req.CategoryID, userID, err)
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
		}

		income := &models.Income{
			UserID:      userID,
			CategoryID:  req.CategoryID,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
		}
		created, err := db.CreateIncome(r.Context(), pool, income)
		if err != nil {
			log.Printf("ERROR: Failed to create income for user %d: %v", userID, err)
			http.Error(w, "failed to create income", http.StatusInternalServerError)
			return
		}
		cache.InvalidateUserAggregates(userID)

		log.Printf("INFO: Created income id %d for user %d, amount %.2f", created.ID, userID, created.Amount)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetIncomes(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		incomes, err := db.GetIncomesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get incomes for user %d: %v", userID, err)
			http.Error(w, "failed to get incomes", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(incomes)
	}
}
