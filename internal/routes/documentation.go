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

func runDocumentationRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	docRepo := repositories.NewDocumentationRepository(dbConn, logger)
	docService := services.NewDocumentationService(docRepo, logger)
	docCtrl := controllers.NewDocumentationController(docService, logger)

	secureGroup.GET("/docs", docCtrl.Get,
		authMW.Require(authz.ResourceDocumentation, authz.ActionRead))
	secureGroup.POST("/docs", docCtrl.Save,
		authMW.Require(authz.ResourceDocumentation, authz.ActionCreate))
}
