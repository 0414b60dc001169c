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

func runPositionRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	positionRepo := repositories.NewPositionRepository(dbConn, logger)
	positionService := services.NewPositionService(dbConn, positionRepo, logger)
	positionCtrl := controllers.NewPositionController(positionService, logger)

	secureGroup.GET("/positions", positionCtrl.GetAll,
		authMW.Require(authz.ResourcePositions, authz.ActionRead))
	secureGroup.GET("/positions/:id", positionCtrl.GetByID,
		authMW.Require(authz.ResourcePositions, authz.ActionRead))
	secureGroup.POST("/positions", positionCtrl.Create,
		authMW.Require(authz.ResourcePositions, authz.ActionCreate))
	secureGroup.PUT("/positions/:id", positionCtrl.Update,
		authMW.Require(authz.ResourcePositions, authz.ActionUpdate))
	secureGroup.DELETE("/positions/:id", positionCtrl.Delete,
		authMW.Require(authz.ResourcePositions, authz.ActionDelete))
}
