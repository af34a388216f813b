package service

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gecos_backend/internal/models"
	"gecos_backend/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	log      *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, log *slog.Logger) *UserService {
	return &UserService{userRepo: userRepo, log: log}
}

func (s *UserService) CreateUser(user *models.User) error {
	if err := s.userRepo.Create(user); err != nil {
		return err
	}
	s.log.Info("user created", slog.Uint64("id", uint64(user.ID)), slog.String("role", string(user.Role)))
	return nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// Authenticate checks the credentials and returns the account on success.
// Unknown usernames, deactivated accounts and wrong passwords all collapse
// into ErrInvalidCredentials so the response never reveals which one failed.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

func (s *UserService) UpdateUser(user *models.User) error {
	return s.userRepo.Update(user)
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
