package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendtrack/internal/auth"
	"spendtrack/internal/config"
	"spendtrack/internal/db"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
	"spendtrack/internal/service"
)

const (
	demoName     = "Demo User"
	demoEmail    = "demo@spendtrack.local"
	demoPassword = "demo-password"
)

type seedRecord struct {
	kind        model.TransactionKind
	title       string
	amount      string
	category    string
	description string
	daysAgo     int
}

var seedRecords = []seedRecord{
	{model.KindIncome, "Salary", "3200.00", "Salary", "Monthly salary", 20},
	{model.KindIncome, "Freelance", "450.50", "Side work", "Logo design gig", 9},
	{model.KindExpense, "Rent", "1200.00", "Housing", "September rent", 19},
	{model.KindExpense, "Groceries", "86.35", "Food", "Weekly shop", 6},
	{model.KindExpense, "Coffee", "4.50", "Food", "Morning coffee", 1},
	{model.KindExpense, "Bus pass", "49.00", "Transport", "Monthly pass", 15},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret))

	user, _, err := authService.Register(ctx, demoName, demoEmail, demoPassword)
	if err != nil {
		log.Fatalf("Failed to create demo user (already seeded?): %v", err)
	}
	log.Printf("Created demo user %s (%s)", user.Email, user.ID)

	repos := map[model.TransactionKind]repository.TransactionRepository{
		model.KindIncome:  repository.NewTransactionRepository(gormDB, model.KindIncome),
		model.KindExpense: repository.NewTransactionRepository(gormDB, model.KindExpense),
	}

	for _, rec := range seedRecords {
		txn := &model.Transaction{
			ID:          uuid.New(),
			UserID:      user.ID,
			Title:       rec.title,
			Amount:      decimal.RequireFromString(rec.amount),
			Type:        rec.kind,
			Category:    rec.category,
			Description: rec.description,
			Date:        time.Now().AddDate(0, 0, -rec.daysAgo),
		}
		if err := repos[rec.kind].Create(ctx, txn); err != nil {
			log.Fatalf("Failed to seed %s %q: %v", rec.kind, rec.title, err)
		}
		log.Printf("Seeded %s %q (%s)", rec.kind, rec.title, rec.amount)
	}

	log.Printf("Seed complete: %d records for %s (password %q)", len(seedRecords), demoEmail, demoPassword)
}
