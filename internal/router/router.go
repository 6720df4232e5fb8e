package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"artisticdb/internal/auth"
	"artisticdb/internal/config"
	"artisticdb/internal/handler"
	"artisticdb/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	tokens auth.TokenValidator,
	roles auth.RoleLookup,
	authHandler *handler.AuthHandler,
	classHandler *handler.ClassHandler,
	cartHandler *handler.CartHandler,
	userHandler *handler.UserHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: cfg.RequestTimeout,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "hello from server")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	verified := auth.Middleware(tokens)
	admin := auth.RequireRole(roles, model.RoleAdmin)
	teaching := auth.RequireRole(roles, model.RoleInstructor, model.RoleAdmin)

	// Public routes
	e.POST("/JWT-Token", authHandler.IssueToken)
	e.GET("/classes", classHandler.ListClasses)
	e.GET("/users", userHandler.ListUsers)
	e.POST("/users", userHandler.RegisterUser)

	// Class routes
	e.GET("/classes/:email", classHandler.ListInstructorClasses, verified)
	e.POST("/class-add/:email", classHandler.CreateClass, verified, teaching)
	e.PATCH("/class-update", classHandler.Enroll, verified)
	e.PATCH("/class-feedback/:id", classHandler.SetFeedback, verified, admin)
	e.PATCH("/class-approved/:id", classHandler.Approve, verified, admin)
	e.PATCH("/class-denied/:id", classHandler.Deny, verified, admin)
	e.DELETE("/class-delete/:id", classHandler.DeleteClass, verified, teaching)

	// Cart routes
	e.POST("/add-to-cart/:id", cartHandler.AddToCart, verified)
	e.GET("/user/added-carts/:email", cartHandler.ListCart, verified)
	e.DELETE("/user/delete-cart", cartHandler.RemoveFromCart, verified)

	// Role routes
	e.GET("/manage-user/newUser/:email", userHandler.IsUser, verified)
	e.GET("/manage-user/instructor/:email", userHandler.IsInstructor, verified)
	e.GET("/manage-user/admin/:email", userHandler.IsAdmin, verified)
	e.PATCH("/user-roll/:id", userHandler.PromoteInstructor, verified, admin)
	e.PATCH("/user-admin/:id", userHandler.PromoteAdmin, verified, admin)

	// Payment routes
	e.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent, verified)
	e.POST("/user/payments-details", paymentHandler.RecordPayment, verified)
	e.GET("/user/payments/:email", paymentHandler.ListPayments, verified)
	e.GET("/user/enrolled-classes/:email", paymentHandler.ListPayments, verified)
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			if v.Status >= http.StatusInternalServerError {
				log.Error("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
