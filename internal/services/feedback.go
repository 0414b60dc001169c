package services

import (
	"context"

	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
)

type FeedbackServiceInterface interface {
	GetMyFeedback(ctx context.Context, userID uint64) ([]entities.Feedback, error)
	CreateFeedback(ctx context.Context, userID uint64, payload dto.CreateFeedbackDTO) (*entities.Feedback, error)
	AnswerFeedback(ctx context.Context, feedbackID, adminID uint64, payload dto.CreateFeedbackAnswerDTO) (*entities.Feedback, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, logger *zap.Logger) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// GetMyFeedback возвращает только обращения самого пользователя.
// Чужие обращения недоступны даже по прямому ID.
func (s *FeedbackService) GetMyFeedback(ctx context.Context, userID uint64) ([]entities.Feedback, error) {
	return s.feedbackRepo.ListByUser(ctx, userID)
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, userID uint64, payload dto.CreateFeedbackDTO) (*entities.Feedback, error) {
	feedback := entities.Feedback{
		Content: payload.Content,
		UserID:  userID,
	}

	newID, err := s.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		s.logger.Error("Ошибка при создании обращения", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Обращение создано", zap.Uint64("id", newID), zap.Uint64("userID", userID))
	return s.feedbackRepo.FindByID(ctx, newID)
}

func (s *FeedbackService) AnswerFeedback(ctx context.Context, feedbackID, adminID uint64, payload dto.CreateFeedbackAnswerDTO) (*entities.Feedback, error) {
	if _, err := s.feedbackRepo.FindByID(ctx, feedbackID); err != nil {
		return nil, err
	}

	answer := entities.FeedbackAnswer{
		FeedbackID: feedbackID,
		AdminID:    adminID,
		Content:    payload.Content,
	}
	if _, err := s.feedbackRepo.CreateAnswer(ctx, answer); err != nil {
		s.logger.Error("Ошибка при создании ответа на обращение", zap.Uint64("feedbackID", feedbackID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Ответ на обращение создан", zap.Uint64("feedbackID", feedbackID), zap.Uint64("adminID", adminID))
	return s.feedbackRepo.FindByID(ctx, feedbackID)
}
