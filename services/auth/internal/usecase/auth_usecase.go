package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"affiliate-blog/pkg/jwt"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/auth/internal/entity"
	"affiliate-blog/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, email, name, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
	cost       int
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
		cost:       bcrypt.DefaultCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register always creates role user. Admins come from the seed command.
func (uc *authUseCase) Register(ctx context.Context, email, name, password string) (*entity.User, string, error) {
	email = normalizeEmail(email)

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", entity.ErrEmailTaken
	}
	if !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Error("Failed to look up user: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Name:     strings.TrimSpace(name),
		Password: string(hashedPassword),
		Role:     entity.RoleUser,
		IsActive: true,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			return nil, "", err
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Error("Failed to look up user: %v", err)
		}
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", entity.ErrAccountDisabled
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// EnsureAdmin creates the admin account, or promotes and re-keys an existing
// account with that email. Safe to run on every deploy.
func (uc *authUseCase) EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("admin email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		user = &entity.User{
			Email:    email,
			Name:     "Admin",
			Password: string(hashedPassword),
			Role:     entity.RoleAdmin,
			IsActive: true,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create admin: %w", err)
		}
		uc.logger.Info("Created admin %s", email)
	case err != nil:
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	default:
		user.Password = string(hashedPassword)
		user.Role = entity.RoleAdmin
		user.IsActive = true
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update admin: %w", err)
		}
		uc.logger.Info("Updated admin %s", email)
	}

	user.Password = ""
	return user, nil
}
