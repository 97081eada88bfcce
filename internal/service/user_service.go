package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/logger"
	"notely-be/internal/pkg/password"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"
	"notely-be/pkg/storage"

	"github.com/google/uuid"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	UploadAvatar(ctx context.Context, userId uuid.UUID, data []byte, contentType string) (*dto.UserDTO, error)
	UpdatePassword(ctx context.Context, userId uuid.UUID, req *dto.UpdatePasswordRequest) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	avatars    storage.AvatarStorage
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, avatars storage.AvatarStorage, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		avatars:    avatars,
		log:        log,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	res := toUserDTO(user)
	return &res, nil
}

func validateName(value, label string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) < 2 {
		return "", serverutils.BadRequest(label + " must be at least 2 characters long")
	}
	if !nameRegex.MatchString(trimmed) {
		return "", serverutils.BadRequest(label + " can only contain letters and spaces")
	}
	return trimmed, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	var firstName, lastName string
	var err error
	if req.FirstName != nil {
		if firstName, err = validateName(*req.FirstName, "First name"); err != nil {
			return nil, err
		}
	}
	if req.LastName != nil {
		if lastName, err = validateName(*req.LastName, "Last name"); err != nil {
			return nil, err
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	if req.Username != nil || req.Email != nil {
		var username, email string
		if req.Username != nil {
			username = strings.TrimSpace(*req.Username)
		}
		if req.Email != nil {
			email = strings.TrimSpace(*req.Email)
		}

		// Check-then-write: the window between this lookup and the save
		// below is an accepted race, not eliminated here.
		conflict, err := repo.FindOne(ctx,
			specification.ExcludingID{ID: userId},
			specification.ByEmailOrUsername{Email: email, Username: username},
		)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			if email != "" && conflict.Email == email {
				return nil, serverutils.BadRequest("Email already exists")
			}
			return nil, serverutils.BadRequest("Username already exists")
		}

		if req.Username != nil {
			user.Username = username
		}
		if req.Email != nil {
			user.Email = email
		}
	}

	if req.FirstName != nil {
		user.FirstName = firstName
	}
	if req.LastName != nil {
		user.LastName = lastName
	}
	if req.Avatar != nil {
		// A blank avatar is an explicit clear, stored as NULL.
		if trimmed := strings.TrimSpace(*req.Avatar); trimmed != "" {
			user.Avatar = &trimmed
		} else {
			user.Avatar = nil
		}
	}

	// Refreshed on every call, even an empty patch.
	user.LastProfileUpdate = time.Now()

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	res := toUserDTO(user)
	return &res, nil
}

func (s *userService) UploadAvatar(ctx context.Context, userId uuid.UUID, data []byte, contentType string) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	url, err := s.avatars.Upload(ctx, userId, data, contentType)
	if err != nil {
		return nil, err
	}

	previous := user.Avatar
	user.Avatar = &url
	user.LastProfileUpdate = time.Now()
	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Best-effort cleanup of the replaced asset. A failure here leaves an
	// orphaned object in the media store, never a broken profile.
	if previous != nil {
		if err := s.avatars.Remove(ctx, *previous); err != nil {
			s.log.Warn("user", "failed to delete previous avatar", map[string]interface{}{
				"user_id": userId,
				"url":     *previous,
				"error":   err.Error(),
			})
		}
	}

	res := toUserDTO(user)
	return &res, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userId uuid.UUID, req *dto.UpdatePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NotFound("User not found")
	}

	ok, err := password.Verify(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	// Reported as a bad request, not a 401: the caller is authenticated,
	// the credential proof just failed.
	if !ok {
		return serverutils.BadRequest("Current password is incorrect")
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.LastProfileUpdate = time.Now()
	return repo.Update(ctx, user)
}
