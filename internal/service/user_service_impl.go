package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo repository.UserRepository, tokens TokenService) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", domain.NewConflictError("user with email " + input.Email)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	if _, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, "", domain.NewConflictError("user with username " + input.Username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(ctx, *update.Email); err == nil {
			return nil, domain.NewConflictError("user with email " + *update.Email)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = *update.Email
	}
	if update.Username != nil && *update.Username != user.Username {
		if _, err := s.userRepo.GetByUsername(ctx, *update.Username); err == nil {
			return nil, domain.NewConflictError("user with username " + *update.Username)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Username = *update.Username
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	return s.userRepo.List(ctx, actor.ID)
}

func (s *userService) DeleteUser(ctx context.Context, actor *domain.User, userID int64) error {
	if !actor.IsSuperuser && actor.ID != userID {
		return domain.ErrUnauthorized
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
