package usecase

import (
	"context"
	"fmt"
	"strings"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/dto/response"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[entity.User], error)
	UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

// GetAllUsers pages and filters locally; the upstream list is unpaginated.
func (us *userService) GetAllUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[entity.User], error) {
	// Set defaults
	if req.Page < 1 {
		req.Page = 1
	}
	req.PerPage = req.Limit()
	if err := validate(req); err != nil {
		return nil, err
	}

	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Filter role & search (username/email)
	search := strings.ToLower(strings.TrimSpace(req.Search))
	filtered := make([]entity.User, 0, len(users))
	for _, u := range users {
		if req.Role != "" && string(u.Role) != req.Role {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Username), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		filtered = append(filtered, u)
	}

	total := int64(len(filtered))
	page := utils.PageSlice(filtered, req.Page, req.PerPage)

	us.log.Debug("Users retrieved",
		zap.Int("count", len(page)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(page, req.Page, req.PerPage, total), nil
}

func (us *userService) UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) error {
	if userID <= 0 {
		return invalid("invalid user ID")
	}
	if err := validate(req); err != nil {
		return err
	}

	err := us.userRepo.Update(ctx, userID, entity.UserUpdate{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return err
	}

	us.log.Info("User updated", zap.Int64("user_id", userID), zap.String("role", req.Role))
	return nil
}

// DeleteUser refuses to delete the account the admin is logged in with.
func (us *userService) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return invalid("invalid user ID")
	}

	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	var target *entity.User
	for i := range users {
		if users[i].ID == userID {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if session, ok := utils.GetSessionFromContext(ctx); ok && session.Profile != nil &&
		strings.EqualFold(session.Profile.Email, target.Email) {
		return invalid("You cannot delete your own account")
	}

	if err := us.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	us.log.Info("User deleted", zap.Int64("user_id", userID), zap.String("email", target.Email))
	return nil
}
