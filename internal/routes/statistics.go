package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/authz"
	"intranet-portal/internal/controllers"
	"intranet-portal/internal/repositories"
	"intranet-portal/internal/services"
	"intranet-portal/pkg/middleware"
)

func runStatisticsRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	statsRepo := repositories.NewStatisticsRepository(dbConn, logger)
	statsService := services.NewStatisticsService(dbConn, statsRepo, logger)
	statsCtrl := controllers.NewStatisticsController(statsService, logger)

	secureGroup.GET("/statistics", statsCtrl.GetAll,
		authMW.Require(authz.ResourceStatistics, authz.ActionRead))
	secureGroup.GET("/statistics/:year", statsCtrl.GetByYear,
		authMW.Require(authz.ResourceStatistics, authz.ActionRead))
	secureGroup.GET("/statistics/:year/export", statsCtrl.ExportByYear,
		authMW.Require(authz.ResourceStatistics, authz.ActionRead))
	secureGroup.GET("/statistics/:year/:month", statsCtrl.GetByYearAndMonth,
		authMW.Require(authz.ResourceStatistics, authz.ActionRead))
	secureGroup.POST("/statistics", statsCtrl.Create,
		authMW.Require(authz.ResourceStatistics, authz.ActionCreate))
	secureGroup.POST("/statistics/bulk", statsCtrl.BulkUpsert,
		authMW.Require(authz.ResourceStatistics, authz.ActionUpdate))
}
