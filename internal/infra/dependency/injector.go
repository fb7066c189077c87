// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pgdesk/backend/config"
	"github.com/pgdesk/backend/internal/application/usecase/auth"
	"github.com/pgdesk/backend/internal/application/usecase/expense"
	"github.com/pgdesk/backend/internal/application/usecase/guest"
	"github.com/pgdesk/backend/internal/application/usecase/payment"
	"github.com/pgdesk/backend/internal/application/usecase/portal"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/application/usecase/report"
	"github.com/pgdesk/backend/internal/application/usecase/room"
	"github.com/pgdesk/backend/internal/infra/server/router"
	"github.com/pgdesk/backend/internal/integration/adapters"
	"github.com/pgdesk/backend/internal/integration/entrypoint/controller"
	"github.com/pgdesk/backend/internal/integration/entrypoint/middleware"
	"github.com/pgdesk/backend/internal/integration/persistence"
	"github.com/pgdesk/backend/internal/integration/preference"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client backs the per-user selected property store.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	propertyRepo := persistence.NewPropertyRepository(db)
	managerRepo := persistence.NewManagerRepository(db)
	roomRepo := persistence.NewRoomRepository(db)
	guestRepo := persistence.NewGuestRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	maintenanceRepo := persistence.NewMaintenanceRepository(db)
	contentRepo := persistence.NewContentRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	mailService := adapters.NewMailService(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	preferenceStore := preference.NewRedisStore(redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, mailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create property use cases
	createPropertyUseCase := property.NewCreatePropertyUseCase(propertyRepo, preferenceStore)
	listPropertiesUseCase := property.NewListPropertiesUseCase(propertyRepo)
	updatePropertyUseCase := property.NewUpdatePropertyUseCase(propertyRepo, managerRepo)
	deletePropertyUseCase := property.NewDeletePropertyUseCase(propertyRepo, preferenceStore)
	selectPropertyUseCase := property.NewSelectPropertyUseCase(propertyRepo, managerRepo, preferenceStore)
	getSelectedPropertyUseCase := property.NewGetSelectedPropertyUseCase(propertyRepo, preferenceStore)
	assignManagerUseCase := property.NewAssignManagerUseCase(propertyRepo, managerRepo, userRepo)
	removeManagerUseCase := property.NewRemoveManagerUseCase(propertyRepo, managerRepo, preferenceStore)
	listManagersUseCase := property.NewListManagersUseCase(propertyRepo, managerRepo)

	// Create room use cases
	createRoomUseCase := room.NewCreateRoomUseCase(propertyRepo, managerRepo, roomRepo)
	listRoomsUseCase := room.NewListRoomsUseCase(propertyRepo, managerRepo, roomRepo)
	updateRoomUseCase := room.NewUpdateRoomUseCase(propertyRepo, managerRepo, roomRepo)
	deleteRoomUseCase := room.NewDeleteRoomUseCase(propertyRepo, managerRepo, roomRepo)

	// Create guest use cases
	checkInGuestUseCase := guest.NewCheckInGuestUseCase(propertyRepo, managerRepo, guestRepo, roomRepo)
	listGuestsUseCase := guest.NewListGuestsUseCase(propertyRepo, managerRepo, guestRepo)
	updateGuestUseCase := guest.NewUpdateGuestUseCase(propertyRepo, managerRepo, guestRepo, roomRepo)
	moveOutGuestUseCase := guest.NewMoveOutGuestUseCase(propertyRepo, managerRepo, guestRepo, roomRepo)
	deleteGuestUseCase := guest.NewDeleteGuestUseCase(propertyRepo, managerRepo, guestRepo, roomRepo)

	// Create payment use cases
	recordPaymentUseCase := payment.NewRecordPaymentUseCase(propertyRepo, managerRepo, guestRepo, paymentRepo, nil)
	listPaymentsUseCase := payment.NewListPaymentsUseCase(propertyRepo, managerRepo, paymentRepo)
	deletePaymentUseCase := payment.NewDeletePaymentUseCase(propertyRepo, managerRepo, paymentRepo)
	guestSummaryUseCase := payment.NewGetGuestSummaryUseCase(propertyRepo, managerRepo, guestRepo, paymentRepo, nil)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(propertyRepo, managerRepo, expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(propertyRepo, managerRepo, expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(propertyRepo, managerRepo, expenseRepo)

	// Create report use cases
	dashboardUseCase := report.NewGetDashboardUseCase(propertyRepo, managerRepo, roomRepo, guestRepo, expenseRepo)
	notificationsUseCase := report.NewGetNotificationsUseCase(propertyRepo, managerRepo, guestRepo, paymentRepo, roomRepo, nil)
	exportUseCase := report.NewExportRecordsUseCase(propertyRepo, managerRepo, paymentRepo, expenseRepo)

	// Create guest portal use cases
	profileUseCase := portal.NewGetProfileUseCase(guestRepo, roomRepo, propertyRepo)
	myPaymentsUseCase := portal.NewListMyPaymentsUseCase(guestRepo, paymentRepo, nil)
	payRentUseCase := portal.NewPayRentUseCase(guestRepo, paymentRepo, nil)
	submitMaintenanceUseCase := portal.NewSubmitMaintenanceUseCase(guestRepo, maintenanceRepo)
	myMaintenanceUseCase := portal.NewListMyMaintenanceUseCase(guestRepo, maintenanceRepo)
	houseRulesUseCase := portal.NewListHouseRulesUseCase(guestRepo, contentRepo)
	announcementsUseCase := portal.NewListAnnouncementsUseCase(guestRepo, contentRepo)

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
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	propertyController := controller.NewPropertyController(
		createPropertyUseCase,
		listPropertiesUseCase,
		updatePropertyUseCase,
		deletePropertyUseCase,
		selectPropertyUseCase,
		getSelectedPropertyUseCase,
		assignManagerUseCase,
		removeManagerUseCase,
		listManagersUseCase,
	)

	roomController := controller.NewRoomController(
		createRoomUseCase,
		listRoomsUseCase,
		updateRoomUseCase,
		deleteRoomUseCase,
	)

	guestController := controller.NewGuestController(
		checkInGuestUseCase,
		listGuestsUseCase,
		updateGuestUseCase,
		moveOutGuestUseCase,
		deleteGuestUseCase,
	)

	paymentController := controller.NewPaymentController(
		recordPaymentUseCase,
		listPaymentsUseCase,
		deletePaymentUseCase,
		guestSummaryUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		deleteExpenseUseCase,
	)

	reportController := controller.NewReportController(
		dashboardUseCase,
		notificationsUseCase,
		exportUseCase,
	)

	portalController := controller.NewPortalController(
		profileUseCase,
		myPaymentsUseCase,
		payRentUseCase,
		submitMaintenanceUseCase,
		myMaintenanceUseCase,
		houseRulesUseCase,
		announcementsUseCase,
	)

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
		propertyController,
		roomController,
		guestController,
		paymentController,
		expenseController,
		reportController,
		portalController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
