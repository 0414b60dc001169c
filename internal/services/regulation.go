package services

import (
	"context"

	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
)

type RegulationServiceInterface interface {
	GetRegulations(ctx context.Context, filter dto.RegulationFilterDTO) ([]*entities.Regulation, error)
	FindRegulation(ctx context.Context, id uint64) (*entities.Regulation, error)
	CreateRegulation(ctx context.Context, payload dto.CreateRegulationDTO) (*entities.Regulation, error)
	UpdateRegulation(ctx context.Context, id uint64, payload dto.UpdateRegulationDTO) error
	DeleteRegulation(ctx context.Context, id uint64) error
}

type RegulationService struct {
	regulationRepo repositories.RegulationRepositoryInterface
	logger         *zap.Logger
}

func NewRegulationService(
	regulationRepo repositories.RegulationRepositoryInterface,
	logger *zap.Logger,
) RegulationServiceInterface {
	return &RegulationService{
		regulationRepo: regulationRepo,
		logger:         logger,
	}
}

func (s *RegulationService) GetRegulations(ctx context.Context, filter dto.RegulationFilterDTO) ([]*entities.Regulation, error) {
	return s.regulationRepo.GetAll(ctx, filter)
}

func (s *RegulationService) FindRegulation(ctx context.Context, id uint64) (*entities.Regulation, error) {
	data, err := s.regulationRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске регламента", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (s *RegulationService) CreateRegulation(ctx context.Context, payload dto.CreateRegulationDTO) (*entities.Regulation, error) {
	regulation := entities.Regulation{
		Title:    payload.Title,
		Content:  payload.Content,
		Keywords: payload.Keywords,
		GroupID:  payload.GroupID,
	}
	if regulation.Keywords == nil {
		regulation.Keywords = make([]string, 0)
	}

	created, err := s.regulationRepo.Create(ctx, regulation)
	if err != nil {
		s.logger.Error("Ошибка при создании регламента", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Регламент создан", zap.Uint64("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (s *RegulationService) UpdateRegulation(ctx context.Context, id uint64, payload dto.UpdateRegulationDTO) error {
	current, err := s.regulationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	regulation := *current
	if payload.Title != nil {
		regulation.Title = *payload.Title
	}
	if payload.Content != nil {
		regulation.Content = *payload.Content
	}
	if payload.Keywords != nil {
		regulation.Keywords = payload.Keywords
	}
	if payload.GroupID != nil {
		regulation.GroupID = *payload.GroupID
	}

	if err := s.regulationRepo.Update(ctx, id, regulation); err != nil {
		s.logger.Error("Ошибка при обновлении регламента", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *RegulationService) DeleteRegulation(ctx context.Context, id uint64) error {
	return s.regulationRepo.Delete(ctx, id)
}
