package usecase

import (
	"context"
	"errors"
	"strings"

	"platina/pkg/logger"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

// Credentials optionally give a new author a login.
type Credentials struct {
	Email    string
	Password string
}

type AuthorUseCase interface {
	CreateAuthor(ctx context.Context, author *entity.Author, login *Credentials) error
	UpdateAuthor(ctx context.Context, author *entity.Author) error
	// RemoveAuthor deletes the author and then the login linked to it.
	RemoveAuthor(ctx context.Context, id string) error
	// UpdateMyProfile edits the public fields of the author linked to userID.
	UpdateMyProfile(ctx context.Context, userID string, profile *entity.Author) (*entity.Author, error)
}

type authorUseCase struct {
	store    ContentStore
	userRepo persistent.UserRepository
	posts    AuthorPostCache
	logger   *logger.Logger
}

// NewAuthorUseCase builds the author use case. posts may be nil when no
// cache is wired in.
func NewAuthorUseCase(store ContentStore, userRepo persistent.UserRepository, posts AuthorPostCache, logger *logger.Logger) AuthorUseCase {
	return &authorUseCase{
		store:    store,
		userRepo: userRepo,
		posts:    posts,
		logger:   logger,
	}
}

func (uc *authorUseCase) invalidatePosts(ctx context.Context, authorID string) {
	if uc.posts != nil {
		uc.posts.InvalidateAuthor(ctx, authorID)
	}
}

func (uc *authorUseCase) CreateAuthor(ctx context.Context, author *entity.Author, login *Credentials) error {
	if uc.store == nil || uc.userRepo == nil {
		return ErrBackendUnavailable
	}
	author.Name = strings.TrimSpace(author.Name)
	if author.Name == "" {
		return userError("Nome é obrigatório", nil)
	}
	if author.Role == "" {
		author.Role = entity.AuthorRoleAuthor
	}
	author.ID = ""

	if login != nil && login.Email != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(login.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return userError("Erro ao criar autor", err)
		}
		user := &entity.User{
			Email:        normalizeEmail(login.Email),
			PasswordHash: string(hash),
			Role:         author.Role,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			uc.logger.Error("Failed to create login for author %q: %v", author.Name, err)
			return userError("Erro ao criar usuário do autor", err)
		}
		author.UserID = &user.ID
	}

	if err := uc.store.SaveAuthor(ctx, author); err != nil {
		uc.logger.Error("Failed to save author %q: %v", author.Name, err)
		if author.UserID != nil {
			if delErr := uc.userRepo.Delete(ctx, *author.UserID); delErr != nil {
				uc.logger.Error("Failed to roll back user %s of author %q: %v", *author.UserID, author.Name, delErr)
			}
			author.UserID = nil
		}
		return userError("Erro ao salvar autor", err)
	}
	return nil
}

func (uc *authorUseCase) UpdateAuthor(ctx context.Context, author *entity.Author) error {
	if uc.store == nil {
		return ErrBackendUnavailable
	}
	current, err := uc.store.GetAuthorByID(ctx, author.ID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		return userError("Erro ao salvar autor", err)
	}

	if author.Role == "" {
		author.Role = current.Role
	}
	if author.UserID == nil {
		author.UserID = current.UserID
	}
	if err := uc.store.SaveAuthor(ctx, author); err != nil {
		uc.logger.Error("Failed to save author %s: %v", author.ID, err)
		return userError("Erro ao salvar autor", err)
	}
	uc.invalidatePosts(ctx, author.ID)
	return nil
}

func (uc *authorUseCase) RemoveAuthor(ctx context.Context, id string) error {
	if uc.store == nil || uc.userRepo == nil {
		return ErrBackendUnavailable
	}

	userID, err := uc.store.DeleteAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return userError("Autor não encontrado para exclusão.", ErrNotFound)
		}
		uc.logger.Error("Failed to delete author %s: %v", id, err)
		return userError("Erro ao excluir autor", err)
	}
	uc.invalidatePosts(ctx, id)

	if userID == nil {
		return nil
	}
	if err := uc.userRepo.Delete(ctx, *userID); err != nil && !errors.Is(err, persistent.ErrNotFound) {
		// The profile is already gone at this point.
		uc.logger.Error("Author %s deleted but its user %s was not: %v", id, *userID, err)
		return userError("Erro ao deletar usuário de autenticação: "+err.Error(), err)
	}
	return nil
}

func (uc *authorUseCase) UpdateMyProfile(ctx context.Context, userID string, profile *entity.Author) (*entity.Author, error) {
	if uc.store == nil {
		return nil, ErrBackendUnavailable
	}

	current, err := uc.store.GetAuthorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, userError("Perfil de autor não encontrado para o usuário logado.", ErrNotFound)
		}
		return nil, userError("Erro ao salvar perfil", err)
	}
	if current.UserID == nil || *current.UserID != userID {
		return nil, ErrForbidden
	}

	current.Name = strings.TrimSpace(profile.Name)
	if current.Name == "" {
		return nil, userError("Nome é obrigatório", nil)
	}
	current.Avatar = profile.Avatar
	current.PsnID = profile.PsnID
	current.Instagram = profile.Instagram
	current.Twitter = profile.Twitter
	current.Bio = profile.Bio

	if err := uc.store.SaveAuthor(ctx, current); err != nil {
		uc.logger.Error("Failed to update profile of user %s: %v", userID, err)
		return nil, userError("Erro ao salvar perfil", err)
	}
	uc.invalidatePosts(ctx, current.ID)
	return current, nil
}
