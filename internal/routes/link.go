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

func runLinkRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	linkRepo := repositories.NewLinkRepository(dbConn, logger)
	linkService := services.NewLinkService(linkRepo, logger)
	linkCtrl := controllers.NewLinkController(linkService, logger)

	secureGroup.GET("/links", linkCtrl.GetAll,
		authMW.Require(authz.ResourceLinks, authz.ActionRead))
	secureGroup.GET("/links/:id", linkCtrl.GetByID,
		authMW.Require(authz.ResourceLinks, authz.ActionRead))
	secureGroup.POST("/links", linkCtrl.Create,
		authMW.Require(authz.ResourceLinks, authz.ActionCreate))
	secureGroup.PUT("/links/:id", linkCtrl.Update,
		authMW.Require(authz.ResourceLinks, authz.ActionUpdate))
	secureGroup.DELETE("/links/:id", linkCtrl.Delete,
		authMW.Require(authz.ResourceLinks, authz.ActionDelete))
}
