package services

import (
	"context"

	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
)

type DocumentationServiceInterface interface {
	GetDocumentation(ctx context.Context) (*entities.Documentation, error)
	SaveDocumentation(ctx context.Context, payload dto.CreateDocumentationDTO) (*entities.Documentation, error)
}

type DocumentationService struct {
	docRepo repositories.DocumentationRepositoryInterface
	logger  *zap.Logger
}

func NewDocumentationService(docRepo repositories.DocumentationRepositoryInterface, logger *zap.Logger) DocumentationServiceInterface {
	return &DocumentationService{
		docRepo: docRepo,
		logger:  logger,
	}
}

// GetDocumentation возвращает самый свежий снимок документации.
// Если её ещё не сохраняли, возвращается пустой документ, а не ошибка.
func (s *DocumentationService) GetDocumentation(ctx context.Context) (*entities.Documentation, error) {
	doc, err := s.docRepo.GetLatest(ctx)
	if err != nil {
		s.logger.Error("Ошибка при загрузке документации", zap.Error(err))
		return nil, err
	}
	if doc == nil {
		return &entities.Documentation{Content: ""}, nil
	}
	return doc, nil
}

// SaveDocumentation пишет новый снимок. История не редактируется,
// каждое сохранение добавляет запись.
func (s *DocumentationService) SaveDocumentation(ctx context.Context, payload dto.CreateDocumentationDTO) (*entities.Documentation, error) {
	if _, err := s.docRepo.Create(ctx, entities.Documentation{Content: payload.Content}); err != nil {
		s.logger.Error("Ошибка при сохранении документации", zap.Error(err))
		return nil, err
	}
	return s.docRepo.GetLatest(ctx)
}
