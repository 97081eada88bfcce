package service

import (
	"context"
	"strings"
	"time"

	"notely-be/internal/dto"
	"notely-be/internal/entity"
	"notely-be/internal/pkg/password"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/pkg/token"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *token.Manager
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens *token.Manager) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Uniqueness check before any write. An email collision is reported
	// over a username collision when both exist.
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmailOrUsername{
		Email:    email,
		Username: username,
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return nil, serverutils.BadRequest("Email already registered")
		}
		return nil, serverutils.BadRequest("Username already taken")
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Id:                uuid.New(),
		Username:          username,
		Email:             email,
		PasswordHash:      hash,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		DateJoined:        now,
		LastProfileUpdate: now,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := s.tokens.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: toUserDTO(user), Token: signed}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByIdentifier{
		Value: strings.TrimSpace(req.EmailOrUsername),
	})
	if err != nil {
		return nil, err
	}
	// Same rejection for unknown user and bad password.
	if user == nil {
		return nil, serverutils.Unauthorized("Invalid credentials")
	}

	ok, err := password.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, serverutils.Unauthorized("Invalid credentials")
	}

	signed, err := s.tokens.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: toUserDTO(user), Token: signed}, nil
}
