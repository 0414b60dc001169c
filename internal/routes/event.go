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

func runEventRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	eventRepo := repositories.NewEventRepository(dbConn, logger)
	eventService := services.NewEventService(eventRepo, logger)
	eventCtrl := controllers.NewEventController(eventService, logger)

	secureGroup.GET("/events", eventCtrl.GetAll,
		authMW.Require(authz.ResourceEvents, authz.ActionRead))
	secureGroup.POST("/events", eventCtrl.Create,
		authMW.Require(authz.ResourceEvents, authz.ActionCreate))
	secureGroup.PUT("/events/:id", eventCtrl.Update,
		authMW.Require(authz.ResourceEvents, authz.ActionUpdate))
	secureGroup.DELETE("/events/:id", eventCtrl.Delete,
		authMW.Require(authz.ResourceEvents, authz.ActionDelete))
}
