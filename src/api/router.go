package api

import (
	"net/http"

	"fintrack-server/src/config"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config, replier handlers.Replier) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.CORSMiddleware)

	secret := []byte(cfg.JWTSecret)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", handlers.Register(pool))
		r.Post("/login", handlers.Login(pool, secret, cfg.TokenTTL))
		r.Post("/telegram/webhook", handlers.TelegramWebhook(pool, replier))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(pool, secret)).Group(func(r chi.Router) {
			// User
			r.Get("/users/me", handlers.GetMe(pool))
			r.Put("/users/me", handlers.UpdateProfile(pool))
			r.Put("/users/password", handlers.ChangePassword(pool))
			r.Delete("/users/me", handlers.DeleteAccount(pool))
			r.Post("/users/chat-link", handlers.LinkChat(pool))

			// Categories
			r.Post("/categories", handlers.CreateCategory(pool))
			r.Get("/categories", handlers.GetCategories(pool))

			// Expenses
			r.Post("/expenses", handlers.CreateExpense(pool))
			r.Get("/expenses", handlers.GetExpenses(pool))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(pool))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(pool))

			// Incomes
			r.Post("/incomes", handlers.CreateIncome(pool))
			r.Get("/incomes", handlers.GetIncomes(pool))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Get("/budgets", handlers.GetBudgets(pool))

			// Aggregates
			r.Get("/balance", handlers.GetBalance(pool))
			r.Get("/statistics/expenses", handlers.GetCategoryStats(pool))
		})
	})

	return r
}
