package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"platina/pkg/jwt"
	"platina/pkg/logger"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Me returns the user and, when one is linked, its author profile.
	Me(ctx context.Context, userID string) (*entity.User, *entity.Author, error)
	// EnsureAdmin creates the admin login if it does not exist yet.
	EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	store      ContentStore
	jwtService *jwt.Service
	logger     *logger.Logger
}

// NewAuthUseCase accepts nil repositories when the backend is not
// configured; every call then returns ErrBackendUnavailable.
func NewAuthUseCase(
	userRepo persistent.UserRepository,
	store ContentStore,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		store:      store,
		jwtService: jwtService,
		logger:     logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if uc.userRepo == nil {
		return nil, "", ErrBackendUnavailable
	}

	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, persistent.ErrNotFound) {
			uc.logger.Error("Failed to load user for login: %v", err)
		}
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (uc *authUseCase) Me(ctx context.Context, userID string) (*entity.User, *entity.Author, error) {
	if uc.userRepo == nil {
		return nil, nil, ErrBackendUnavailable
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	user.PasswordHash = ""

	if uc.store == nil {
		return user, nil, nil
	}
	author, err := uc.store.GetAuthorByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, persistent.ErrNotFound) {
			uc.logger.Warn("Failed to load author profile of user %s: %v", userID, err)
		}
		return user, nil, nil
	}
	return user, author, nil
}

func (uc *authUseCase) EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	if uc.userRepo == nil {
		return nil, ErrBackendUnavailable
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("admin email and password are required")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		existing.PasswordHash = ""
		return existing, nil
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{Email: email, PasswordHash: string(hash), Role: entity.AuthorRoleAdmin}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create admin user: %v", err)
		return nil, fmt.Errorf("failed to create admin user")
	}

	uc.logger.Info("Admin user %s created", email)
	user.PasswordHash = ""
	return user, nil
}
