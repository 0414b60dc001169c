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

func runPostRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	postRepo := repositories.NewPostRepository(dbConn, logger)
	commentRepo := repositories.NewCommentRepository(dbConn, logger)
	likeRepo := repositories.NewLikeRepository(dbConn, logger)
	eventRepo := repositories.NewEventRepository(dbConn, logger)
	postService := services.NewPostService(postRepo, commentRepo, likeRepo, eventRepo, logger)
	postCtrl := controllers.NewPostController(postService, logger)

	secureGroup.GET("/posts", postCtrl.GetAll,
		authMW.Require(authz.ResourcePosts, authz.ActionRead))
	secureGroup.GET("/posts/:id", postCtrl.GetByID,
		authMW.Require(authz.ResourcePosts, authz.ActionRead))
	secureGroup.POST("/posts", postCtrl.Create,
		authMW.Require(authz.ResourcePosts, authz.ActionCreate))
	secureGroup.PUT("/posts/:id", postCtrl.Update,
		authMW.Require(authz.ResourcePosts, authz.ActionUpdate))
	secureGroup.DELETE("/posts/:id", postCtrl.Delete,
		authMW.Require(authz.ResourcePosts, authz.ActionDelete))

	// Лайки и комментарии доступны любому авторизованному сотруднику.
	secureGroup.POST("/posts/:id/like", postCtrl.ToggleLike,
		authMW.Require(authz.ResourceLikes, authz.ActionCreate))
	secureGroup.POST("/posts/:id/comment", postCtrl.AddComment,
		authMW.Require(authz.ResourceComments, authz.ActionCreate))
}
