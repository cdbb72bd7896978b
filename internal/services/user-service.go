package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

type userList struct {
	Items []entities.User
	Total uint64
}

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	repo   repositories.UserRepositoryInterface
	store  *cache.Store
	logger *zap.Logger
}

func NewUserService(repo repositories.UserRepositoryInterface, store *cache.Store, logger *zap.Logger) UserServiceInterface {
	return &UserService{repo: repo, store: store, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	key := cache.ListKey("users", filter)
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagUser}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.GetUsers(ctx, filter)
		if err != nil {
			return nil, err
		}
		return userList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(userList)
	return list.Items, list.Total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	key := cache.Key("users", map[string]string{"id": fmt.Sprintf("%d", id)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagUser}, func(ctx context.Context) (interface{}, error) {
		return s.repo.FindUser(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.User), nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	if existing, err := s.repo.FindUserByEmail(ctx, payload.Email); err == nil && existing != nil {
		return nil, apperrors.ErrConflict
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("не удалось захешировать пароль: %w", err)
	}

	var newID uint64
	err = s.store.Write(ctx, []cache.Tag{cache.TagUser}, func(ctx context.Context) error {
		id, err := s.repo.CreateUser(ctx, entities.User{
			Fio:         payload.Fio,
			Email:       payload.Email,
			PhoneNumber: payload.PhoneNumber,
			Password:    hashed,
			Role:        payload.Role,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Пользователь создан", zap.Uint64("id", newID), zap.String("role", payload.Role))
	return s.repo.FindUser(ctx, newID)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error) {
	current, err := s.repo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Fio != nil {
		current.Fio = *payload.Fio
	}
	if payload.Email != nil {
		current.Email = *payload.Email
	}
	if payload.PhoneNumber != nil {
		current.PhoneNumber = payload.PhoneNumber
	}
	if payload.Role != nil {
		current.Role = *payload.Role
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagUser}, func(ctx context.Context) error {
		if err := s.repo.UpdateUser(ctx, id, *current); err != nil {
			return err
		}
		if payload.Password != nil {
			hashed, err := utils.HashPassword(*payload.Password)
			if err != nil {
				return fmt.Errorf("не удалось захешировать пароль: %w", err)
			}
			return s.repo.UpdatePassword(ctx, id, hashed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindUser(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.store.Write(ctx, []cache.Tag{cache.TagUser}, func(ctx context.Context) error {
		return s.repo.DeleteUser(ctx, id)
	})
}
