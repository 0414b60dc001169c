package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
	"intranet-portal/pkg/config"
	apperrors "intranet-portal/pkg/errors"
	"intranet-portal/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cfg:       cfg,
	}
}

// Login проверяет пару email/пароль. Неверный пароль и несуществующий email
// дают одну и ту же ошибку, чтобы не раскрывать, какие адреса зарегистрированы.
// После MaxLoginAttempts неудачных попыток аккаунт блокируется на LockoutDuration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	logger := s.logger.With(zap.String("email", email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error("Ошибка при поиске пользователя", zap.Error(err))
		return nil, err
	}

	lockoutKey := fmt.Sprintf("lockout:%d", user.ID)
	if _, err := s.cacheRepo.Get(ctx, lockoutKey); err == nil {
		logger.Warn("Попытка входа в заблокированный аккаунт", zap.Uint64("userID", user.ID))
		return nil, apperrors.ErrAccountLocked
	}

	attemptsKey := fmt.Sprintf("login_attempts:%d", user.ID)
	if err := utils.ComparePasswords(user.Password, password); err != nil {
		attempts, incrErr := s.cacheRepo.Incr(ctx, attemptsKey)
		if incrErr != nil {
			logger.Error("Ошибка учёта попыток входа", zap.Error(incrErr))
			return nil, apperrors.ErrInvalidCredentials
		}
		if attempts == 1 {
			s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
		}
		if attempts >= int64(s.cfg.MaxLoginAttempts) {
			s.cacheRepo.Set(ctx, lockoutKey, strconv.FormatInt(attempts, 10), s.cfg.LockoutDuration)
			s.cacheRepo.Del(ctx, attemptsKey)
			logger.Warn("Аккаунт заблокирован из-за превышения числа попыток", zap.Uint64("userID", user.ID))
			return nil, apperrors.ErrAccountLocked
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	s.cacheRepo.Del(ctx, attemptsKey)
	logger.Info("Пользователь вошёл в систему", zap.Uint64("userID", user.ID))
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("Ошибка при поиске пользователя по ID", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}
