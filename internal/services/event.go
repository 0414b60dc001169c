package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
	apperrors "intranet-portal/pkg/errors"
)

type EventServiceInterface interface {
	GetEvents(ctx context.Context) ([]entities.Event, error)
	FindEvent(ctx context.Context, id uint64) (*entities.Event, error)
	CreateEvent(ctx context.Context, payload dto.CreateEventDTO) (*entities.Event, error)
	UpdateEvent(ctx context.Context, id uint64, payload dto.UpdateEventDTO) error
	DeleteEvent(ctx context.Context, id uint64) error
}

type EventService struct {
	eventRepo repositories.EventRepositoryInterface
	logger    *zap.Logger
}

func NewEventService(eventRepo repositories.EventRepositoryInterface, logger *zap.Logger) EventServiceInterface {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *EventService) GetEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

func (s *EventService) FindEvent(ctx context.Context, id uint64) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске события", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, payload dto.CreateEventDTO) (*entities.Event, error) {
	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Некорректная дата события")
	}

	event := entities.Event{
		Title: payload.Title,
		Type:  payload.Type,
		Date:  date,
	}
	if payload.UserID.Valid {
		event.UserID = &payload.UserID.Uint64
	}

	newID, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error("Ошибка при создании события", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Событие создано", zap.Uint64("id", newID), zap.String("title", event.Title))
	return s.eventRepo.FindByID(ctx, newID)
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint64, payload dto.UpdateEventDTO) error {
	current, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	event := *current
	if payload.Title != nil {
		event.Title = *payload.Title
	}
	if payload.Type != nil {
		event.Type = *payload.Type
	}
	if payload.Date != nil {
		date, err := time.Parse("2006-01-02", *payload.Date)
		if err != nil {
			return apperrors.NewBadRequestError("Некорректная дата события")
		}
		event.Date = date
	}

	if err := s.eventRepo.Update(ctx, id, event); err != nil {
		s.logger.Error("Ошибка при обновлении события", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint64) error {
	return s.eventRepo.Delete(ctx, id)
}
