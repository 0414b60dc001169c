package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
)

type PositionServiceInterface interface {
	GetPositions(ctx context.Context) ([]*entities.Position, error)
	FindPosition(ctx context.Context, id uint64) (*entities.Position, error)
	CreatePosition(ctx context.Context, payload dto.CreatePositionDTO) (*entities.Position, error)
	UpdatePosition(ctx context.Context, id uint64, payload dto.UpdatePositionDTO) error
	DeletePosition(ctx context.Context, id uint64) error
}

type PositionService struct {
	storage      *pgxpool.Pool
	positionRepo repositories.PositionRepositoryInterface
	logger       *zap.Logger
}

func NewPositionService(
	storage *pgxpool.Pool,
	positionRepo repositories.PositionRepositoryInterface,
	logger *zap.Logger,
) PositionServiceInterface {
	return &PositionService{
		storage:      storage,
		positionRepo: positionRepo,
		logger:       logger,
	}
}

func (s *PositionService) GetPositions(ctx context.Context) ([]*entities.Position, error) {
	return s.positionRepo.GetAll(ctx)
}

func (s *PositionService) FindPosition(ctx context.Context, id uint64) (*entities.Position, error) {
	data, err := s.positionRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске должности", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (s *PositionService) CreatePosition(ctx context.Context, payload dto.CreatePositionDTO) (*entities.Position, error) {
	position := entities.Position{
		Title:       payload.Title,
		Description: payload.Description,
	}

	var newID uint64
	err := repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		var txErr error
		newID, txErr = s.positionRepo.Create(ctx, tx, position, payload.Regulations)
		return txErr
	})
	if err != nil {
		s.logger.Error("Ошибка при создании должности", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Должность создана", zap.Uint64("id", newID), zap.String("title", position.Title))
	return s.positionRepo.FindByID(ctx, newID)
}

func (s *PositionService) UpdatePosition(ctx context.Context, id uint64, payload dto.UpdatePositionDTO) error {
	current, err := s.positionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	position := *current
	if payload.Title != nil {
		position.Title = *payload.Title
	}
	if payload.Description != nil {
		position.Description = *payload.Description
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		return s.positionRepo.Update(ctx, tx, id, position, payload.Regulations)
	})
	if err != nil {
		s.logger.Error("Ошибка при обновлении должности", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}

func (s *PositionService) DeletePosition(ctx context.Context, id uint64) error {
	return s.positionRepo.Delete(ctx, id)
}
