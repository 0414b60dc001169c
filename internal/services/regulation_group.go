package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
)

const (
	regulationTreeCacheKey = "regulation_groups:tree"
	regulationTreeCacheTTL = 10 * time.Minute
)

type RegulationGroupServiceInterface interface {
	GetTree(ctx context.Context) ([]*entities.RegulationGroup, error)
	CreateGroup(ctx context.Context, payload dto.CreateRegulationGroupDTO) (*entities.RegulationGroup, error)
	UpdateGroup(ctx context.Context, id uint64, payload dto.UpdateRegulationGroupDTO) error
	DeleteGroup(ctx context.Context, id uint64) error
}

type RegulationGroupService struct {
	groupRepo repositories.RegulationGroupRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewRegulationGroupService(
	groupRepo repositories.RegulationGroupRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) RegulationGroupServiceInterface {
	return &RegulationGroupService{
		groupRepo: groupRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetTree отдаёт дерево групп из кеша, при промахе читает из БД и кеширует.
// Ошибки кеша не фатальны: при недоступном Redis дерево читается напрямую.
func (s *RegulationGroupService) GetTree(ctx context.Context) ([]*entities.RegulationGroup, error) {
	if cached, err := s.cacheRepo.Get(ctx, regulationTreeCacheKey); err == nil {
		var tree []*entities.RegulationGroup
		if err := json.Unmarshal([]byte(cached), &tree); err == nil {
			return tree, nil
		}
		s.logger.Warn("Повреждённый кеш дерева групп, читаем из БД")
	}

	tree, err := s.groupRepo.GetTree(ctx)
	if err != nil {
		s.logger.Error("Ошибка при загрузке дерева групп", zap.Error(err))
		return nil, err
	}

	if raw, err := json.Marshal(tree); err == nil {
		if err := s.cacheRepo.Set(ctx, regulationTreeCacheKey, string(raw), regulationTreeCacheTTL); err != nil {
			s.logger.Warn("Не удалось закешировать дерево групп", zap.Error(err))
		}
	}
	return tree, nil
}

func (s *RegulationGroupService) invalidateTree(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, regulationTreeCacheKey); err != nil {
		s.logger.Warn("Не удалось сбросить кеш дерева групп", zap.Error(err))
	}
}

func (s *RegulationGroupService) CreateGroup(ctx context.Context, payload dto.CreateRegulationGroupDTO) (*entities.RegulationGroup, error) {
	group := entities.RegulationGroup{Name: payload.Name}
	if payload.Description.Valid {
		group.Description = &payload.Description.String
	}
	if payload.ParentID.Valid {
		group.ParentID = &payload.ParentID.Uint64
	}

	newID, err := s.groupRepo.Create(ctx, group)
	if err != nil {
		s.logger.Error("Ошибка при создании группы регламентов", zap.Error(err))
		return nil, err
	}

	s.invalidateTree(ctx)
	s.logger.Info("Группа регламентов создана", zap.Uint64("id", newID), zap.String("name", group.Name))
	return s.groupRepo.FindByID(ctx, newID)
}

func (s *RegulationGroupService) UpdateGroup(ctx context.Context, id uint64, payload dto.UpdateRegulationGroupDTO) error {
	current, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	group := *current
	if payload.Name != nil {
		group.Name = *payload.Name
	}
	if payload.Description.Valid {
		group.Description = &payload.Description.String
	}
	if payload.ParentID.Valid {
		group.ParentID = &payload.ParentID.Uint64
	}

	if err := s.groupRepo.Update(ctx, id, group); err != nil {
		s.logger.Error("Ошибка при обновлении группы регламентов", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.invalidateTree(ctx)
	return nil
}

func (s *RegulationGroupService) DeleteGroup(ctx context.Context, id uint64) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateTree(ctx)
	return nil
}
