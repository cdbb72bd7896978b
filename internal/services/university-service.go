package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type universityList struct {
	Items []entities.University
	Total uint64
}

type UniversityServiceInterface interface {
	GetUniversities(ctx context.Context, filter types.Filter) ([]entities.University, uint64, error)
	FindUniversity(ctx context.Context, id uint64) (*entities.University, error)
	CreateUniversity(ctx context.Context, payload dto.CreateUniversityDTO) (*entities.University, error)
	UpdateUniversity(ctx context.Context, id uint64, payload dto.UpdateUniversityDTO) (*entities.University, error)
	DeleteUniversity(ctx context.Context, id uint64) error
}

type UniversityService struct {
	repo   repositories.UniversityRepositoryInterface
	store  *cache.Store
	logger *zap.Logger
}

func NewUniversityService(repo repositories.UniversityRepositoryInterface, store *cache.Store, logger *zap.Logger) UniversityServiceInterface {
	return &UniversityService{repo: repo, store: store, logger: logger}
}

func (s *UniversityService) GetUniversities(ctx context.Context, filter types.Filter) ([]entities.University, uint64, error) {
	key := cache.ListKey("universities", filter)
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagUniversity}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.GetUniversities(ctx, filter)
		if err != nil {
			return nil, err
		}
		return universityList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(universityList)
	return list.Items, list.Total, nil
}

func (s *UniversityService) FindUniversity(ctx context.Context, id uint64) (*entities.University, error) {
	key := cache.Key("universities", map[string]string{"id": fmt.Sprintf("%d", id)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagUniversity}, func(ctx context.Context) (interface{}, error) {
		return s.repo.FindUniversity(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.University), nil
}

func (s *UniversityService) CreateUniversity(ctx context.Context, payload dto.CreateUniversityDTO) (*entities.University, error) {
	var newID uint64
	err := s.store.Write(ctx, []cache.Tag{cache.TagUniversity}, func(ctx context.Context) error {
		id, err := s.repo.CreateUniversity(ctx, entities.University{
			Name:    payload.Name,
			Address: payload.Address,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Университет создан", zap.Uint64("id", newID))
	return s.repo.FindUniversity(ctx, newID)
}

func (s *UniversityService) UpdateUniversity(ctx context.Context, id uint64, payload dto.UpdateUniversityDTO) (*entities.University, error) {
	current, err := s.repo.FindUniversity(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.Address != nil {
		current.Address = payload.Address
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagUniversity}, func(ctx context.Context) error {
		return s.repo.UpdateUniversity(ctx, id, *current)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindUniversity(ctx, id)
}

func (s *UniversityService) DeleteUniversity(ctx context.Context, id uint64) error {
	return s.store.Write(ctx, []cache.Tag{cache.TagUniversity, cache.TagBuilding}, func(ctx context.Context) error {
		return s.repo.DeleteUniversity(ctx, id)
	})
}
