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

func runRegulationRouter(
	secureGroup *echo.Group,
	dbConn *pgxpool.Pool,
	cacheRepo repositories.CacheRepositoryInterface,
	authMW *middleware.AuthMiddleware,
	logger *zap.Logger,
) {
	regulationRepo := repositories.NewRegulationRepository(dbConn, logger)
	regulationService := services.NewRegulationService(regulationRepo, logger)
	regulationCtrl := controllers.NewRegulationController(regulationService, logger)

	groupRepo := repositories.NewRegulationGroupRepository(dbConn, logger)
	groupService := services.NewRegulationGroupService(groupRepo, cacheRepo, logger)
	groupCtrl := controllers.NewRegulationGroupController(groupService, logger)

	// Маршруты групп идут до /:id, чтобы "groups" не разбирался как ID.
	secureGroup.GET("/regulations/groups", groupCtrl.GetTree,
		authMW.Require(authz.ResourceRegulationGroups, authz.ActionRead))
	secureGroup.POST("/regulations/groups", groupCtrl.Create,
		authMW.Require(authz.ResourceRegulationGroups, authz.ActionCreate))
	secureGroup.PUT("/regulations/groups/:id", groupCtrl.Update,
		authMW.Require(authz.ResourceRegulationGroups, authz.ActionUpdate))
	secureGroup.DELETE("/regulations/groups/:id", groupCtrl.Delete,
		authMW.Require(authz.ResourceRegulationGroups, authz.ActionDelete))

	secureGroup.GET("/regulations", regulationCtrl.GetAll,
		authMW.Require(authz.ResourceRegulations, authz.ActionRead))
	secureGroup.GET("/regulations/:id", regulationCtrl.GetByID,
		authMW.Require(authz.ResourceRegulations, authz.ActionRead))
	secureGroup.POST("/regulations", regulationCtrl.Create,
		authMW.Require(authz.ResourceRegulations, authz.ActionCreate))
	secureGroup.PUT("/regulations/:id", regulationCtrl.Update,
		authMW.Require(authz.ResourceRegulations, authz.ActionUpdate))
	secureGroup.DELETE("/regulations/:id", regulationCtrl.Delete,
		authMW.Require(authz.ResourceRegulations, authz.ActionDelete))
}
