package cmd

import (
	"fmt"
	"log"

	"github.com/LevonKG/Smart-Expense-App/internal/expense"
	expensePostgres "github.com/LevonKG/Smart-Expense-App/internal/expense/postgres"
	"github.com/LevonKG/Smart-Expense-App/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample expenses for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, gormDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		var count int64
		if err := gormDB.Model(&expense.Expense{}).Count(&count).Error; err != nil {
			log.Fatalf("failed to count expenses: %v", err)
		}
		if count > 0 {
			fmt.Printf("expenses table already has %d rows; skipping seed\n", count)
			return
		}

		service := expense.NewService(expensePostgres.NewExpenseRepository(gormDB), logger.LoggerWrapper())

		samples := []expense.CreateExpenseDTO{
			{Amount: amount(12.50), Category: "Food", Description: str("McDonald's"), UserID: "demo-user"},
			{Amount: amount(34.90), Category: "Groceries", Description: str("Weekly shop"), UserID: "demo-user"},
			{Amount: amount(2.40), Category: "Transport", Description: str("Bus ticket"), UserID: "demo-user"},
			{Amount: amount(60.00), Category: "Home", UserID: "demo-user"},
		}

		for _, dto := range samples {
			created, err := service.CreateExpense(dto)
			if err != nil {
				log.Fatalf("failed to seed expense: %v", err)
			}
			fmt.Printf("Seeded expense %d: %.2f %s\n", created.ID, created.Amount, created.Category)
		}
	},
}

func amount(v float64) *float64 { return &v }
func str(v string) *string      { return &v }
