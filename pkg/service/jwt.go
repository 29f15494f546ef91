package service

import (
	"errors"
	"time"

	apperrors "crm-dashboard/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JwtCustomClaim - то, что нам нужно из токена бэкенда. Остальные поля игнорируются.
type JwtCustomClaim struct {
	AdminID   uint64 `json:"adminId,omitempty"`
	AdminType string `json:"adminType,omitempty"`
	jwt.RegisteredClaims
}

// JWTService читает токены, которые выпускает бэкенд. Подписываем их не мы.
type JWTService interface {
	ParseClaims(tokenString string) (*JwtCustomClaim, error)
	// ExpiresAt - момент из claim exp; false, если его нет или токен не разбирается.
	ExpiresAt(tokenString string) (time.Time, bool)
}

type jwtService struct {
	secretKey string
	logger    *zap.Logger
}

// NewJWTService: при пустом secretKey подпись не проверяется, токен только читается.
func NewJWTService(secretKey string, logger *zap.Logger) JWTService {
	return &jwtService{secretKey: secretKey, logger: logger}
}

func (s *jwtService) ParseClaims(tokenString string) (*JwtCustomClaim, error) {
	claims := &JwtCustomClaim{}

	if s.secretKey == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			s.logger.Debug("Токен не удалось разобрать", zap.Error(err))
			return nil, apperrors.ErrInvalidToken
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidToken
		}
	})
	if err != nil {
		s.logger.Warn("Ошибка проверки подписи токена", zap.Error(err))
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *jwtService) ExpiresAt(tokenString string) (time.Time, bool) {
	if tokenString == "" {
		return time.Time{}, false
	}
	claims, err := s.ParseClaims(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
