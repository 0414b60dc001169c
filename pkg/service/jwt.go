package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "intranet-portal/pkg/errors"
)

// JwtCustomClaim повторяет набор профильных полей, который кладётся в сессию:
// фронту этого достаточно, чтобы отрисовать шапку без запроса к /auth/me.
type JwtCustomClaim struct {
	UserID         uint64 `json:"userId"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	IsOwner        bool   `json:"isOwner"`
	IsRefreshToken bool   `json:"isRefresh"`
	jwt.RegisteredClaims
}

type TokenProfile struct {
	UserID  uint64
	Email   string
	Name    string
	Role    string
	IsOwner bool
}

type JWTService interface {
	GenerateTokens(profile TokenProfile) (accessToken string, refreshToken string, err error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type jwtService struct {
	secretKey       string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	logger          *zap.Logger
}

func NewJWTService(secretKey string, accessTokenExp, refreshTokenExp time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey:       secretKey,
		accessTokenExp:  accessTokenExp,
		refreshTokenExp: refreshTokenExp,
		logger:          logger,
	}
}

func (s *jwtService) buildClaims(profile TokenProfile, isRefresh bool, ttl time.Duration) *JwtCustomClaim {
	return &JwtCustomClaim{
		UserID:         profile.UserID,
		Email:          profile.Email,
		Name:           profile.Name,
		Role:           profile.Role,
		IsOwner:        profile.IsOwner,
		IsRefreshToken: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func (s *jwtService) GenerateTokens(profile TokenProfile) (string, string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS512, s.buildClaims(profile, false, s.accessTokenExp))
	accessTokenString, err := accessToken.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS512, s.buildClaims(profile, true, s.refreshTokenExp))
	refreshTokenString, err := refreshToken.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", "", err
	}

	return accessTokenString, refreshTokenString, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		s.logger.Debug("Ошибка парсинга или проверки подписи токена", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	return claims, nil
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.accessTokenExp
}

func (s *jwtService) GetRefreshTokenTTL() time.Duration {
	return s.refreshTokenExp
}
