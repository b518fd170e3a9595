package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peopleops/hr-system/docs"
	"github.com/peopleops/hr-system/internal/api/handler"
	"github.com/peopleops/hr-system/internal/api/middleware"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/service"
	mongorepo "github.com/peopleops/hr-system/internal/infrastructure/db/mongo"
	redisstore "github.com/peopleops/hr-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	users := mongorepo.NewUserRepository(db)
	employees := mongorepo.NewEmployeeRepository(db)
	attendance := mongorepo.NewAttendanceRepository(db)
	leave := mongorepo.NewLeaveRepository(db)
	settings := mongorepo.NewSettingsRepository(db)
	revocations := redisstore.NewRevocationStore(rdb, tokenTTL)

	authService := service.NewAuthService(users, revocations, jwtSecret, tokenTTL, log)
	employeeService := service.NewEmployeeService(employees, users, log)
	attendanceService := service.NewAttendanceService(attendance, employees, log)
	leaveService := service.NewLeaveService(leave, employees, log)
	settingsService := service.NewSettingsService(settings, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	portalHandler := handler.NewPortalHandler(employeeService, attendanceService, leaveService)

	authed := middleware.Auth(jwtSecret, revocations)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	employeeOnly := middleware.RequireRole(domain.RoleEmployee)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authed)
	auth.POST("/change-password", authHandler.ChangePassword, authed)

	// --- Admin console routes ---
	admin := e.Group("/api", authed, adminOnly)
	admin.GET("/employees", employeeHandler.List)
	admin.POST("/employees", employeeHandler.Create)
	admin.PUT("/employees", employeeHandler.Update)
	admin.DELETE("/employees", employeeHandler.Delete)
	admin.GET("/attendance", attendanceHandler.List)
	admin.POST("/attendance", attendanceHandler.Create)
	admin.PUT("/attendance", attendanceHandler.Update)
	admin.DELETE("/attendance", attendanceHandler.Delete)
	admin.GET("/leave", leaveHandler.List)
	admin.POST("/leave", leaveHandler.Create)
	admin.PUT("/leave", leaveHandler.Update)
	admin.DELETE("/leave", leaveHandler.Delete)
	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Update)

	// --- Employee portal routes (permission-gated per resource) ---
	portal := e.Group("/api/employee", authed, employeeOnly)
	portal.GET("/me", portalHandler.Me, middleware.RequirePermission(middleware.PermProfileView))
	portal.GET("/attendance", portalHandler.Attendance, middleware.RequirePermission(middleware.PermAttendanceView))
	portal.GET("/leave", portalHandler.Leave, middleware.RequirePermission(middleware.PermLeaveApply))
	portal.POST("/leave", portalHandler.ApplyLeave, middleware.RequirePermission(middleware.PermLeaveApply))
	portal.DELETE("/leave", portalHandler.CancelLeave, middleware.RequirePermission(middleware.PermLeaveApply))

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
