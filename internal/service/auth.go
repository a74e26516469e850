package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/config"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "occurrence-reporting-system"

// UserRepository определяет контракт для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenRepository хранит отозванные токены до истечения их срока
type TokenRepository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Claims - содержимое JWT. ID (jti) используется для отзыва токена.
type Claims struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// AuthService определяет контракт аутентификации
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, claims *Claims) error
	ParseToken(ctx context.Context, tokenString string) (*Claims, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type authService struct {
	users  UserRepository
	tokens TokenRepository
	audit  AuditRecorder
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewAuthService(users UserRepository, tokens TokenRepository, audit AuditRecorder, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		audit:  audit,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// HashPassword возвращает bcrypt-хеш пароля
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login проверяет пароль и выдает токен. Неизвестный email и неверный пароль неразличимы.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})

	if email == "" || password == "" {
		var missing []string
		if email == "" {
			missing = append(missing, "email")
		}
		if password == "" {
			missing = append(missing, "password")
		}
		return nil, NewMissingFieldsError(missing)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load user by email")
		return nil, fmt.Errorf("service: could not login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.WithField("user_id", user.ID).Warn("Login attempt with invalid password")
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.JWTTTL)
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return nil, fmt.Errorf("service: could not sign token: %w", err)
	}

	err = s.audit.LogAction(ctx, AuditEntry{
		UserID:   user.ID,
		Action:   models.ActionLogin,
		Entity:   models.EntityUser,
		EntityID: &user.ID,
	})
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Logout отзывает токен до конца его срока действия
func (s *authService) Logout(ctx context.Context, claims *Claims) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Logout",
		"user_id": claims.UserID,
	})

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}
	if err := s.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		log.WithError(err).Error("Failed to revoke token")
		return fmt.Errorf("service: could not logout: %w", err)
	}

	err := s.audit.LogAction(ctx, AuditEntry{
		UserID:   claims.UserID,
		Action:   models.ActionLogout,
		Entity:   models.EntityUser,
		EntityID: &claims.UserID,
	})
	if err != nil {
		return err
	}

	log.Info("User logged out successfully")
	return nil
}

// ParseToken проверяет подпись, срок действия и отзыв токена
func (s *authService) ParseToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not check token: %w", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user", userID.String())
	}
	return user, nil
}
