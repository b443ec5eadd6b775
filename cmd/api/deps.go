package main

import (
	"log"

	"expensetracker/internal/domain/account"
	"expensetracker/internal/domain/category"
	"expensetracker/internal/domain/transaction"
	"expensetracker/internal/domain/user"
	"expensetracker/internal/infrastructure/postgres"
	"expensetracker/internal/infrastructure/uploads"
	httphandlers "expensetracker/internal/interfaces/http"
	"expensetracker/internal/shared/auth"
	"expensetracker/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	UserHandler        *httphandlers.UserHandler
	AccountHandler     *httphandlers.AccountHandler
	CategoryHandler    *httphandlers.CategoryHandler
	TransactionHandler *httphandlers.TransactionHandler
	ReportHandler      *httphandlers.ReportHandler

	// Auth
	TokenIssuer *auth.TokenIssuer
	UserRepo    *postgres.UserRepository
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	connStr := cfg.Database.ConnectionString()

	if err := postgres.RunMigrations(connStr); err != nil {
		return nil, err
	}
	log.Println("Database migrations applied")

	db, err := postgres.New(connStr)
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	// Domain services
	userService := user.NewService(userRepo)
	accountService := account.NewService(accountRepo)
	categoryService := category.NewService(categoryRepo)
	transactionService := transaction.NewService(transactionRepo, accountRepo, categoryRepo)

	// Auth components
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Lifetime)

	// Uploads
	uploadStore := uploads.NewStore(cfg.Uploads.Dir)

	// Handlers
	authHandler := httphandlers.NewAuthHandler(userService, issuer)
	userHandler := httphandlers.NewUserHandler(userService)
	accountHandler := httphandlers.NewAccountHandler(accountService)
	categoryHandler := httphandlers.NewCategoryHandler(categoryService)
	transactionHandler := httphandlers.NewTransactionHandler(transactionService, uploadStore)
	reportHandler := httphandlers.NewReportHandler(transactionService)

	return &Dependencies{
		DB:                 db,
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		AccountHandler:     accountHandler,
		CategoryHandler:    categoryHandler,
		TransactionHandler: transactionHandler,
		ReportHandler:      reportHandler,
		TokenIssuer:        issuer,
		UserRepo:           userRepo,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
