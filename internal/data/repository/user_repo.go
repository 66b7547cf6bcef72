package repository

import (
	"context"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/upstream"

	"go.uber.org/zap"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id int64, update entity.UserUpdate) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	api *upstream.Client
	log *zap.Logger
}

func NewUserRepository(api *upstream.Client, log *zap.Logger) UserRepository {
	return &userRepository{
		api: api,
		log: log.With(zap.String("repository", "user")),
	}
}

// FindAll returns every account; the upstream does not paginate this list
func (ur *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := ur.api.Get(ctx, "/api/user/list/", nil, &users); err != nil {
		logUpstreamError(ur.log, "Failed to list users", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}

// Update overwrites username, email and role of one account
func (ur *userRepository) Update(ctx context.Context, id int64, update entity.UserUpdate) error {
	path := fmt.Sprintf("/api/user/%d/update/", id)

	body := struct {
		ID int64 `json:"id"`
		entity.UserUpdate
	}{ID: id, UserUpdate: update}

	if err := ur.api.Put(ctx, path, body, nil); err != nil {
		logUpstreamError(ur.log, "Failed to update user", err,
			zap.Int64("user_id", id),
			zap.String("role", string(update.Role)),
		)
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

// Delete removes the account
func (ur *userRepository) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/user/%d/delete/", id)
	if err := ur.api.Delete(ctx, path, nil); err != nil {
		logUpstreamError(ur.log, "Failed to delete user", err, zap.Int64("user_id", id))
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
