package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/authz"
	"intranet-portal/internal/controllers"
	"intranet-portal/internal/repositories"
	"intranet-portal/internal/services"
	"intranet-portal/pkg/filestorage"
	"intranet-portal/pkg/middleware"
)

func runUserRouter(
	secureGroup *echo.Group,
	dbConn *pgxpool.Pool,
	fileStorage filestorage.FileStorageInterface,
	authMW *middleware.AuthMiddleware,
	logger *zap.Logger,
) {
	userRepo := repositories.NewUserRepository(dbConn, logger)
	userService := services.NewUserService(dbConn, userRepo, fileStorage, logger)
	userCtrl := controllers.NewUserController(userService, logger)

	secureGroup.GET("/users", userCtrl.GetAll,
		authMW.Require(authz.ResourceUsers, authz.ActionRead))
	secureGroup.GET("/users/org-chart", userCtrl.GetOrgChart,
		authMW.Require(authz.ResourceUsers, authz.ActionRead))
	secureGroup.GET("/users/:id", userCtrl.GetByID,
		authMW.Require(authz.ResourceUsers, authz.ActionRead))

	// Админский CRUD вынесен под отдельный префикс, как на фронте.
	secureGroup.POST("/admin/users", userCtrl.Create,
		authMW.Require(authz.ResourceUsers, authz.ActionCreate))
	secureGroup.PUT("/admin/users/:id", userCtrl.Update,
		authMW.Require(authz.ResourceUsers, authz.ActionUpdate))
	secureGroup.DELETE("/admin/users/:id", userCtrl.Delete,
		authMW.Require(authz.ResourceUsers, authz.ActionDelete))
}
