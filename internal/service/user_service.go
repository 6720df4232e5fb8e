package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
	"artisticdb/internal/repository"
)

// UserService exposes user registration, role lookups and promotions.
type UserService interface {
	Register(ctx context.Context, user *model.User) (result model.UpdateResult, created bool, err error)
	List(ctx context.Context) ([]model.User, error)
	RoleOf(ctx context.Context, email string) (model.Role, error)
	HasRole(ctx context.Context, email string, role model.Role) (bool, error)
	Promote(ctx context.Context, id string, role model.Role) (model.UpdateResult, error)
}

// Cache is the byte cache role lookups are kept in. *cache.Client
// satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type userService struct {
	repo    repository.UserRepository
	cache   Cache
	roleTTL time.Duration
	log     *zap.Logger
}

// NewUserService builds a UserService with repository and role cache.
func NewUserService(repo repository.UserRepository, cache Cache, roleTTL time.Duration, log *zap.Logger) UserService {
	return &userService{repo: repo, cache: cache, roleTTL: roleTTL, log: log}
}

func (s *userService) roleKey(email string) string {
	return fmt.Sprintf("user:role:%s", email)
}

// Register stores user unless the email is already registered. The role
// supplied by the client is ignored; every new account starts as a user.
func (s *userService) Register(ctx context.Context, user *model.User) (model.UpdateResult, bool, error) {
	user.Email = model.NormalizeEmail(user.Email)
	user.Role = model.RoleUser
	user.CreatedAt = time.Now().UTC()

	res, err := s.repo.CreateIfAbsent(ctx, user)
	if err != nil {
		s.log.Error("register user", zap.String("email", user.Email), zap.Error(err))
		return model.UpdateResult{}, false, fmt.Errorf("register user: %w", err)
	}
	return res, res.UpsertedCount > 0, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// RoleOf returns the stored role for email, consulting the cache first.
func (s *userService) RoleOf(ctx context.Context, email string) (model.Role, error) {
	email = model.NormalizeEmail(email)
	if data, _ := s.cache.Get(ctx, s.roleKey(email)); data != nil {
		if role, ok := model.ParseRole(string(data)); ok {
			return role, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", errors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user %s: %w", email, err)
	}

	role, ok := model.ParseRole(string(user.Role))
	if !ok {
		role = model.RoleUser
	}
	_ = s.cache.Set(ctx, s.roleKey(email), []byte(role), s.roleTTL)
	return role, nil
}

// HasRole reports whether email is registered with role. Unknown users hold
// no role.
func (s *userService) HasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	got, err := s.RoleOf(ctx, email)
	if errors.Is(err, errors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return got == role, nil
}

// Promote raises the role of the user with id. Demotions and no-op
// promotions are rejected without writing.
func (s *userService) Promote(ctx context.Context, id string, role model.Role) (model.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	user, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.UpdateResult{}, errors.ErrUserNotFound
		}
		return model.UpdateResult{}, fmt.Errorf("find user %s: %w", id, err)
	}
	if !user.Role.CanPromoteTo(role) {
		return model.UpdateResult{}, fmt.Errorf("%w: %s to %s", errors.ErrInvalidRoleTransition, user.Role, role)
	}

	res, err := s.repo.UpdateRole(ctx, oid, role)
	if err != nil {
		s.log.Error("promote user", zap.String("id", id), zap.String("role", string(role)), zap.Error(err))
		return model.UpdateResult{}, fmt.Errorf("update role: %w", err)
	}
	_ = s.cache.Delete(ctx, s.roleKey(model.NormalizeEmail(user.Email)))

	s.log.Info("user promoted", zap.String("id", id), zap.String("from", string(user.Role)), zap.String("to", string(role)))
	return res, nil
}
