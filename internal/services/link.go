package services

import (
	"context"

	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
)

type LinkServiceInterface interface {
	GetLinks(ctx context.Context) ([]entities.Link, error)
	FindLink(ctx context.Context, id uint64) (*entities.Link, error)
	CreateLink(ctx context.Context, payload dto.CreateLinkDTO) (*entities.Link, error)
	UpdateLink(ctx context.Context, id uint64, payload dto.UpdateLinkDTO) error
	DeleteLink(ctx context.Context, id uint64) error
}

type LinkService struct {
	linkRepo repositories.LinkRepositoryInterface
	logger   *zap.Logger
}

func NewLinkService(linkRepo repositories.LinkRepositoryInterface, logger *zap.Logger) LinkServiceInterface {
	return &LinkService{
		linkRepo: linkRepo,
		logger:   logger,
	}
}

func (s *LinkService) GetLinks(ctx context.Context) ([]entities.Link, error) {
	return s.linkRepo.GetAll(ctx)
}

func (s *LinkService) FindLink(ctx context.Context, id uint64) (*entities.Link, error) {
	link, err := s.linkRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске ссылки", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return link, nil
}

func (s *LinkService) CreateLink(ctx context.Context, payload dto.CreateLinkDTO) (*entities.Link, error) {
	link := entities.Link{Title: payload.Title, URL: payload.URL}

	newID, err := s.linkRepo.Create(ctx, link)
	if err != nil {
		s.logger.Error("Ошибка при создании ссылки", zap.Error(err))
		return nil, err
	}
	return s.linkRepo.FindByID(ctx, newID)
}

func (s *LinkService) UpdateLink(ctx context.Context, id uint64, payload dto.UpdateLinkDTO) error {
	current, err := s.linkRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	link := *current
	if payload.Title != nil {
		link.Title = *payload.Title
	}
	if payload.URL != nil {
		link.URL = *payload.URL
	}

	if err := s.linkRepo.Update(ctx, id, link); err != nil {
		s.logger.Error("Ошибка при обновлении ссылки", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *LinkService) DeleteLink(ctx context.Context, id uint64) error {
	return s.linkRepo.Delete(ctx, id)
}
