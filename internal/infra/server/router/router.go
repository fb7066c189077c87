// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pgdesk/backend/internal/integration/entrypoint/controller"
	"github.com/pgdesk/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	propertyController *controller.PropertyController
	roomController     *controller.RoomController
	guestController    *controller.GuestController
	paymentController  *controller.PaymentController
	expenseController  *controller.ExpenseController
	reportController   *controller.ReportController
	portalController   *controller.PortalController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	propertyController *controller.PropertyController,
	roomController *controller.RoomController,
	guestController *controller.GuestController,
	paymentController *controller.PaymentController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	portalController *controller.PortalController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		propertyController: propertyController,
		roomController:     roomController,
		guestController:    guestController,
		paymentController:  paymentController,
		expenseController:  expenseController,
		reportController:   reportController,
		portalController:   portalController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Property routes and the property-scoped resources (require authentication)
		if r.propertyController != nil && r.authMiddleware != nil {
			properties := v1.Group("/properties")
			properties.Use(r.authMiddleware.Authenticate())
			{
				properties.GET("", r.propertyController.List)
				properties.POST("", r.propertyController.Create)
				properties.GET("/selected", r.propertyController.GetSelected)
				properties.PATCH("/:property_id", r.propertyController.Update)
				properties.DELETE("/:property_id", r.propertyController.Delete)
				properties.POST("/:property_id/select", r.propertyController.Select)

				properties.GET("/:property_id/managers", r.propertyController.ListManagers)
				properties.POST("/:property_id/managers", r.propertyController.AssignManager)
				properties.DELETE("/:property_id/managers/:manager_id", r.propertyController.RemoveManager)

				if r.roomController != nil {
					properties.GET("/:property_id/rooms", r.roomController.List)
					properties.POST("/:property_id/rooms", r.roomController.Create)
					properties.PATCH("/:property_id/rooms/:room_id", r.roomController.Update)
					properties.DELETE("/:property_id/rooms/:room_id", r.roomController.Delete)
				}

				if r.guestController != nil {
					properties.GET("/:property_id/guests", r.guestController.List)
					properties.POST("/:property_id/guests", r.guestController.CheckIn)
					properties.PATCH("/:property_id/guests/:guest_id", r.guestController.Update)
					properties.POST("/:property_id/guests/:guest_id/move-out", r.guestController.MoveOut)
					properties.DELETE("/:property_id/guests/:guest_id", r.guestController.Delete)
				}

				if r.paymentController != nil {
					properties.GET("/:property_id/payments", r.paymentController.List)
					properties.POST("/:property_id/payments", r.paymentController.Record)
					properties.DELETE("/:property_id/payments/:payment_id", r.paymentController.Delete)
					properties.GET("/:property_id/guests/:guest_id/payments", r.paymentController.GuestSummary)
				}

				if r.expenseController != nil {
					properties.GET("/:property_id/expenses", r.expenseController.List)
					properties.POST("/:property_id/expenses", r.expenseController.Create)
					properties.DELETE("/:property_id/expenses/:expense_id", r.expenseController.Delete)
				}

				if r.reportController != nil {
					properties.GET("/:property_id/dashboard", r.reportController.Dashboard)
					properties.GET("/:property_id/notifications", r.reportController.Notifications)
					properties.GET("/:property_id/reports/export", r.reportController.Export)
				}
			}
		}

		// Guest portal routes (require authentication)
		if r.portalController != nil && r.authMiddleware != nil {
			portal := v1.Group("/portal")
			portal.Use(r.authMiddleware.Authenticate())
			{
				portal.GET("/profile", r.portalController.GetProfile)
				portal.GET("/payments", r.portalController.ListMyPayments)
				portal.POST("/payments", r.portalController.PayRent)
				portal.GET("/maintenance", r.portalController.ListMyMaintenance)
				portal.POST("/maintenance", r.portalController.SubmitMaintenance)
				portal.GET("/house-rules", r.portalController.ListHouseRules)
				portal.GET("/announcements", r.portalController.ListAnnouncements)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
