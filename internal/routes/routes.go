package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/repositories"
	"intranet-portal/pkg/config"
	"intranet-portal/pkg/filestorage"
	"intranet-portal/pkg/middleware"
	"intranet-portal/pkg/service"
)

// InitRouter собирает граф зависимостей и вешает маршруты портала.
// Всё, что не относится к входу в систему, закрыто Auth-middleware,
// а права на конкретные действия проверяются политикой ролей.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	secureGroup := api.Group("", authMW.Auth)

	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("не удалось создать файловое хранилище", zap.Error(err))
	}

	runAuthRouter(api, secureGroup, dbConn, cacheRepo, jwtSvc, cfg, logger)
	runUserRouter(secureGroup, dbConn, fileStorage, authMW, logger)
	runPositionRouter(secureGroup, dbConn, authMW, logger)
	runRegulationRouter(secureGroup, dbConn, cacheRepo, authMW, logger)
	runPostRouter(secureGroup, dbConn, authMW, logger)
	runEventRouter(secureGroup, dbConn, authMW, logger)
	runFeedbackRouter(secureGroup, dbConn, authMW, logger)
	runStatisticsRouter(secureGroup, dbConn, authMW, logger)
	runLinkRouter(secureGroup, dbConn, authMW, logger)
	runDocumentationRouter(secureGroup, dbConn, authMW, logger)

	logger.Info("InitRouter: Маршруты созданы")
}
