package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/controllers"
	"intranet-portal/internal/repositories"
	"intranet-portal/internal/services"
	"intranet-portal/pkg/config"
	"intranet-portal/pkg/service"
)

func runAuthRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	dbConn *pgxpool.Pool,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) {
	userRepo := repositories.NewUserRepository(dbConn, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, logger, &cfg.Auth)
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)

	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh", authCtrl.RefreshToken)
	api.POST("/auth/logout", authCtrl.Logout)

	secureGroup.GET("/auth/me", authCtrl.Me)
}
