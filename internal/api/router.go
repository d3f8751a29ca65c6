// Package api assembles the HTTP surface: routing, middleware, error
// mapping, and the swagger/metrics endpoints.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nagarpalika/complaint-system/docs"
	"github.com/nagarpalika/complaint-system/internal/api/handler"
	"github.com/nagarpalika/complaint-system/internal/api/middleware"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

// Dependencies carries everything the router needs to wire handlers.
type Dependencies struct {
	ComplaintService ports.ComplaintService
	AuthService      ports.AuthService
	QRService        ports.QRService

	MongoClient *mongo.Client
	RedisClient *redis.Client

	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds the echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(echoprometheus.NewMiddleware("complaint_api"))
	e.Use(requestLogger(deps.Logger))

	complaintHandler := handler.NewComplaintHandler(deps.ComplaintService, deps.Logger)
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Logger)
	qrHandler := handler.NewQRHandler(deps.QRService, deps.Logger)
	healthHandler := handler.NewHealthHandler(deps.MongoClient, deps.RedisClient)

	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RequireRole("admin")

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, auth)

	complaints := e.Group("/api/complaints")

	// Citizen-facing routes: no authentication.
	complaints.POST("/submit", complaintHandler.Submit)
	complaints.POST("/qr/submit", complaintHandler.SubmitViaQR)
	complaints.GET("/track/:complaintNumber", complaintHandler.Track)

	// Admin triage routes.
	admin := complaints.Group("", auth, adminOnly)
	admin.GET("", complaintHandler.List)
	admin.GET("/stats/overview", complaintHandler.Stats)
	admin.GET("/:id", complaintHandler.GetByID)
	admin.PATCH("/:id/status", complaintHandler.UpdateStatus)
	admin.POST("/qr/generate-location", qrHandler.GenerateLocation)
	admin.GET("/:id/qr", qrHandler.ComplaintQR)

	return e
}

// requestLogger emits one structured line per request using zerolog, wired
// through echo's RequestLogger middleware.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
