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

func runFeedbackRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	feedbackRepo := repositories.NewFeedbackRepository(dbConn, logger)
	feedbackService := services.NewFeedbackService(feedbackRepo, logger)
	feedbackCtrl := controllers.NewFeedbackController(feedbackService, logger)

	secureGroup.GET("/feedback", feedbackCtrl.GetMy,
		authMW.Require(authz.ResourceFeedback, authz.ActionRead))
	secureGroup.POST("/feedback", feedbackCtrl.Create,
		authMW.Require(authz.ResourceFeedback, authz.ActionCreate))
	secureGroup.POST("/feedback/:id/answer", feedbackCtrl.Answer,
		authMW.Require(authz.ResourceFeedbackAnswers, authz.ActionCreate))
}
