package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/services"
	apperrors "intranet-portal/pkg/errors"
	"intranet-portal/pkg/middleware"
	"intranet-portal/pkg/service"
	"intranet-portal/pkg/utils"
)

const refreshTokenCookie = "refreshToken"

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func sessionUser(user *entities.User) dto.SessionUserDTO {
	return dto.SessionUserDTO{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		Photo:    user.Photo,
		Telegram: user.Telegram,
		IsOwner:  user.IsOwner,
		Email1:   user.Email1,
		Email2:   user.Email2,
	}
}

func (ctrl *AuthController) setTokenCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (ctrl *AuthController) clearTokenCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (ctrl *AuthController) respondWithTokens(c echo.Context, user *entities.User, message string) error {
	profile := service.TokenProfile{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		IsOwner: user.IsOwner,
	}
	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(profile)
	if err != nil {
		ctrl.logger.Error("Не удалось сгенерировать токены", zap.Uint64("userID", user.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setTokenCookie(c, middleware.AccessTokenCookie, accessToken, ctrl.jwtSvc.GetAccessTokenTTL())
	ctrl.setTokenCookie(c, refreshTokenCookie, refreshToken, ctrl.jwtSvc.GetRefreshTokenTTL())

	return utils.SuccessResponse(c, dto.LoginResponseDTO{
		AccessToken: accessToken,
		User:        sessionUser(user),
	}, message, http.StatusOK)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных для входа"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return ctrl.respondWithTokens(c, user, "Авторизация прошла успешно")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	ctrl.clearTokenCookie(c, middleware.AccessTokenCookie)
	ctrl.clearTokenCookie(c, refreshTokenCookie)
	return utils.SuccessResponse(c, nil, "Вы успешно вышли из системы", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, sessionUser(user), "Профиль получен", http.StatusOK)
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie(refreshTokenCookie)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.NewHttpError(
			http.StatusUnauthorized,
			"Для обновления должен использоваться Refresh токен",
			nil,
			nil,
		))
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return ctrl.respondWithTokens(c, user, "Токены обновлены")
}
