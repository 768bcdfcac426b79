package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
	"github.com/kasozib/bar_pos_backend/internal/dto"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
	"github.com/kasozib/bar_pos_backend/internal/platform/config"
	"github.com/kasozib/bar_pos_backend/internal/utils"
)

// UserService manages staff accounts and authentication.
type UserService struct {
	userRepo portsrepo.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo portsrepo.UserRepository, cfg *config.Config) *UserService {
	return &UserService{userRepo: userRepo, cfg: cfg}
}

// Signup creates an account without requiring authentication. Self-registered
// users are cashiers; the very first account on a fresh install becomes the
// admin so the system can be bootstrapped without touching the database.
func (s *UserService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing user", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%w: username %q", apperrors.ErrDuplicate, req.Username)
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		logger.Error("Failed to count users for signup", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to list users: %w", err)
	}
	role := domain.RoleCashier
	if len(users) == 0 {
		role = domain.RoleAdmin
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, "", err
	}

	token, err := s.issueToken(&user)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		return nil, "", err
	}

	logger.Info("User signed up", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, token, nil
}

func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q", apperrors.ErrDuplicate, req.Username)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("role", req.Role))
	return &user, nil
}

// Authenticate verifies credentials and issues a signed JWT carrying the
// user's role. Deactivated users cannot sign in.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		logger.Error("Failed to find user for authentication", slog.String("error", err.Error()))
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("%w: user is deactivated", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		return nil, "", err
	}

	logger.Info("User authenticated", slog.String("user_id", user.UserID))
	return user, token, nil
}

// issueToken signs a JWT carrying the user's role.
func (s *UserService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := middleware.AccessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *UserService) DeactivateUser(ctx context.Context, userID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == updaterUserID {
		return fmt.Errorf("%w: cannot deactivate yourself", apperrors.ErrValidation)
	}

	if err := s.userRepo.DeactivateUser(ctx, userID, updaterUserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate user", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return err
	}

	logger.Info("User deactivated", slog.String("user_id", userID))
	return nil
}
