package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	tokenIssuer    ports.TokenIssuer
	bcryptCost     int
}

func NewAuthService(userRepository ports.UserRepository, tokenIssuer ports.TokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		bcryptCost:     bcryptCost,
	}
}

func (s *AuthService) Signup(ctx context.Context, username, password string) (domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.userRepository.CreateUser(ctx, username, string(hash))
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokenIssuer.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		// An unknown username reads the same as a wrong password.
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

var _ ports.AuthService = (*AuthService)(nil)
