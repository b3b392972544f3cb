package service

import (
	"context"
	"errors"

	"bloghub/internal/api/dto"
	"bloghub/internal/api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context, page, limit int) (*dto.PaginatedUsersResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetByID returns the redacted record. A malformed id is reported the same
// way as a missing user.
func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) List(ctx context.Context, page, limit int) (*dto.PaginatedUsersResponse, error) {
	users, total, err := s.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.FromModelToUserResponse(&users[i]))
	}

	return &dto.PaginatedUsersResponse{
		Data:        responses,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		TotalItems:  total,
	}, nil
}

// Update applies a no-clobber merge: only fields present in the patch are
// written, everything else keeps its stored value.
func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.UpdateFields(ctx, id, req.Fields())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrUserNotFound
	}

	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

// totalPages is ceil(total/limit) shared by every paginated listing.
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
