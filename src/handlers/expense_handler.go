package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// Ledger dates are calendar dates, no time-of-day significance.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func CreateExpense(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.CreateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateAmount(req.Amount) {
			log.Printf("ERROR: Invalid expense amount %f for user %d", req.Amount, userID)
			http.Error(w, "amount must be positive", http.StatusBadRequest)
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid expense date %q for user %d", req.Date, userID)
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		// The referenced category must belong to the caller.
		if _, err := db.GetCategoryByID(r.Context(), pool, userID, req.CategoryID); err != nil {
			log.Printf("ERROR: Category %d not found for user %d: %v", req.CategoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		expense := &models.Expense{
			UserID:      userID,
			CategoryID:  req.CategoryID,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
		}
		created, err := db.CreateExpense(r.Context(), pool, expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %d: %v", userID, err)
			http.Error(w, "failed to create expense", http.StatusInternalServerError)
			return
		}
		cache.InvalidateUserAggregates(userID)

		log.Printf("INFO: Created expense id %d for user %d, amount %.2f", created.ID, userID, created.Amount)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetExpenses(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expenses, err := db.GetExpensesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %d: %v", userID, err)
			http.Error(w, "failed to get expenses", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expenses)
	}
}

func UpdateExpense(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.ParseInt(expenseIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}

		var req models.UpdateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Amount != nil && !util.ValidateAmount(*req.Amount) {
			log.Printf("ERROR: Invalid expense amount %f for user %d", *req.Amount, userID)
			http.Error(w, "amount must be positive", http.StatusBadRequest)
			return
		}

		var date *time.Time
		if req.Date != nil {
			parsed, err := parseDate(*req.Date)
			if err != nil {
				log.Printf("ERROR: Invalid expense date %q for user %d", *req.Date, userID)
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = &parsed
		}

		if req.CategoryID != nil {
			if _, err := db.GetCategoryByID(r.Context(), pool, userID, *req.CategoryID); err != nil {
				log.Printf("ERROR: Category %d not found for user %d: %v", *req.CategoryID, userID, err)
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
		}

		updated, err := db.UpdateExpense(r.Context(), pool, userID, expenseID,
			req.Amount, req.Description, req.CategoryID, date)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				log.Printf("ERROR: Expense %d not found for user %d", expenseID, userID)
				http.Error(w, "expense not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update expense %d for user %d: %v", expenseID, userID, err)
			http.Error(w, "failed to update expense", http.StatusInternalServerError)
			return
		}
		cache.InvalidateUserAggregates(userID)

		log.Printf("INFO: Updated expense id %d for user %d", expenseID, userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteExpense(pool db.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.ParseInt(expenseIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}

		if err := db.DeleteExpense(r.Context(), pool, userID, expenseID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				log.Printf("ERROR: Expense %d not found for user %d", expenseID, userID)
				http.Error(w, "expense not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete expense %d for user %d: %v", expenseID, userID, err)
			http.Error(w, "failed to delete expense", http.StatusInternalServerError)
			return
		}
		cache.InvalidateUserAggregates(userID)

		log.Printf("INFO: Deleted expense id %d for user %d", expenseID, userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "expense deleted",
		})
	}
}
