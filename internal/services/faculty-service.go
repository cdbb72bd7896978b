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

type facultyList struct {
	Items []entities.Faculty
	Total uint64
}

type FacultyServiceInterface interface {
	GetFaculties(ctx context.Context, filter types.Filter) ([]entities.Faculty, uint64, error)
	FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error)
	CreateFaculty(ctx context.Context, payload dto.CreateFacultyDTO) (*entities.Faculty, error)
	UpdateFaculty(ctx context.Context, id uint64, payload dto.UpdateFacultyDTO) (*entities.Faculty, error)
	DeleteFaculty(ctx context.Context, id uint64) error
}

type FacultyService struct {
	repo         repositories.FacultyRepositoryInterface
	buildingRepo repositories.BuildingRepositoryInterface
	store        *cache.Store
	logger       *zap.Logger
}

func NewFacultyService(
	repo repositories.FacultyRepositoryInterface,
	buildingRepo repositories.BuildingRepositoryInterface,
	store *cache.Store,
	logger *zap.Logger,
) FacultyServiceInterface {
	return &FacultyService{repo: repo, buildingRepo: buildingRepo, store: store, logger: logger}
}

func (s *FacultyService) GetFaculties(ctx context.Context, filter types.Filter) ([]entities.Faculty, uint64, error) {
	key := cache.ListKey("faculties", filter)
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagFaculty}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.GetFaculties(ctx, filter)
		if err != nil {
			return nil, err
		}
		return facultyList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(facultyList)
	return list.Items, list.Total, nil
}

func (s *FacultyService) FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error) {
	key := cache.Key("faculties", map[string]string{"id": fmt.Sprintf("%d", id)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagFaculty}, func(ctx context.Context) (interface{}, error) {
		return s.repo.FindFaculty(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Faculty), nil
}

func (s *FacultyService) CreateFaculty(ctx context.Context, payload dto.CreateFacultyDTO) (*entities.Faculty, error) {
	if _, err := s.buildingRepo.FindBuilding(ctx, payload.BuildingID); err != nil {
		return nil, err
	}

	var newID uint64
	err := s.store.Write(ctx, []cache.Tag{cache.TagFaculty}, func(ctx context.Context) error {
		id, err := s.repo.CreateFaculty(ctx, entities.Faculty{
			BuildingID: payload.BuildingID,
			Name:       payload.Name,
			DeanFio:    payload.DeanFio,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Факультет создан", zap.Uint64("id", newID))
	return s.repo.FindFaculty(ctx, newID)
}

func (s *FacultyService) UpdateFaculty(ctx context.Context, id uint64, payload dto.UpdateFacultyDTO) (*entities.Faculty, error) {
	current, err := s.repo.FindFaculty(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.BuildingID != nil {
		if _, err := s.buildingRepo.FindBuilding(ctx, *payload.BuildingID); err != nil {
			return nil, err
		}
		current.BuildingID = *payload.BuildingID
	}
	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.DeanFio != nil {
		current.DeanFio = payload.DeanFio
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagFaculty}, func(ctx context.Context) error {
		return s.repo.UpdateFaculty(ctx, id, *current)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindFaculty(ctx, id)
}

func (s *FacultyService) DeleteFaculty(ctx context.Context, id uint64) error {
	return s.store.Write(ctx, []cache.Tag{cache.TagFaculty}, func(ctx context.Context) error {
		return s.repo.DeleteFaculty(ctx, id)
	})
}
