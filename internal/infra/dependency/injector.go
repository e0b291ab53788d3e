// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/finance-manager/backend/config"
	"github.com/finance-manager/backend/internal/application/usecase/auth"
	"github.com/finance-manager/backend/internal/application/usecase/bill"
	"github.com/finance-manager/backend/internal/application/usecase/dashboard"
	"github.com/finance-manager/backend/internal/application/usecase/transaction"
	"github.com/finance-manager/backend/internal/infra/server/router"
	"github.com/finance-manager/backend/internal/integration/adapters"
	"github.com/finance-manager/backend/internal/integration/entrypoint/controller"
	"github.com/finance-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create bill use cases
	listBillsUseCase := bill.NewListBillsUseCase(transactionRepo)
	markBillPaidUseCase := bill.NewMarkBillPaidUseCase(transactionRepo)
	resetMonthlyBillsUseCase := bill.NewResetMonthlyBillsUseCase(transactionRepo)
	billsCalendarUseCase := bill.NewBillsCalendarUseCase(transactionRepo)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	billController := controller.NewBillController(
		listBillsUseCase,
		markBillPaidUseCase,
		resetMonthlyBillsUseCase,
		billsCalendarUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		billController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
