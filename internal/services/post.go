package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
	"intranet-portal/pkg/constants"
	apperrors "intranet-portal/pkg/errors"
)

type PostServiceInterface interface {
	GetPosts(ctx context.Context, postType string) ([]entities.Post, error)
	FindPost(ctx context.Context, id uint64) (*entities.Post, error)
	CreateSubmission(ctx context.Context, payload dto.CreatePostDTO, authorID uint64) (interface{}, error)
	UpdatePost(ctx context.Context, id uint64, payload dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, id uint64) error
	ToggleLike(ctx context.Context, postID, userID uint64) ([]entities.Like, error)
	AddComment(ctx context.Context, postID, userID uint64, payload dto.CreateCommentDTO) ([]entities.Comment, error)
}

type PostService struct {
	postRepo    repositories.PostRepositoryInterface
	commentRepo repositories.CommentRepositoryInterface
	likeRepo    repositories.LikeRepositoryInterface
	eventRepo   repositories.EventRepositoryInterface
	logger      *zap.Logger
}

func NewPostService(
	postRepo repositories.PostRepositoryInterface,
	commentRepo repositories.CommentRepositoryInterface,
	likeRepo repositories.LikeRepositoryInterface,
	eventRepo repositories.EventRepositoryInterface,
	logger *zap.Logger,
) PostServiceInterface {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}

func (s *PostService) GetPosts(ctx context.Context, postType string) ([]entities.Post, error) {
	// Фронт шлёт type=all как "без фильтра".
	if postType == "all" {
		postType = ""
	}
	return s.postRepo.GetAll(ctx, postType)
}

func (s *PostService) FindPost(ctx context.Context, id uint64) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске поста", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return post, nil
}

// CreateSubmission создаёт запись по явному дискриминатору kind:
// kind=event пишет в календарь событий, kind=post — в ленту постов.
func (s *PostService) CreateSubmission(ctx context.Context, payload dto.CreatePostDTO, authorID uint64) (interface{}, error) {
	if payload.Kind == dto.SubmissionKindEvent {
		date, err := time.Parse("2006-01-02", *payload.EventDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Некорректная дата события")
		}
		event := entities.Event{
			Title:  payload.Title,
			Type:   payload.Type,
			Date:   date,
			UserID: &authorID,
		}
		newID, err := s.eventRepo.Create(ctx, event)
		if err != nil {
			s.logger.Error("Ошибка при создании события из ленты", zap.Error(err))
			return nil, err
		}
		s.logger.Info("Событие создано из ленты", zap.Uint64("id", newID))
		return s.eventRepo.FindByID(ctx, newID)
	}

	post := entities.Post{
		Title:    payload.Title,
		Content:  payload.Content,
		Type:     payload.Type,
		AuthorID: authorID,
	}
	if post.Type == constants.PostTypePlan {
		post.Status = payload.Status
		if post.Status == nil {
			pending := constants.PlanStatusPending
			post.Status = &pending
		}
		if payload.DueDate != nil {
			due, err := time.Parse("2006-01-02", *payload.DueDate)
			if err != nil {
				return nil, apperrors.NewBadRequestError("Некорректный срок выполнения")
			}
			post.DueDate = &due
		}
	}

	newID, err := s.postRepo.Create(ctx, post)
	if err != nil {
		s.logger.Error("Ошибка при создании поста", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Пост создан", zap.Uint64("id", newID), zap.String("type", post.Type))
	return s.postRepo.FindByID(ctx, newID)
}

// UpdatePost обновляет запись по тому же дискриминатору kind, что и создание:
// kind=event правит строку календаря, kind=post — строку ленты.
func (s *PostService) UpdatePost(ctx context.Context, id uint64, payload dto.UpdatePostDTO) error {
	if payload.Kind == dto.SubmissionKindEvent {
		return s.updateEvent(ctx, id, payload)
	}

	current, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	post := *current
	if payload.Title != nil {
		post.Title = *payload.Title
	}
	if payload.Type != nil {
		post.Type = *payload.Type
	}
	if payload.Content != nil {
		post.Content = *payload.Content
	}
	if payload.Status != nil {
		post.Status = payload.Status
	}
	if payload.DueDate != nil {
		due, err := time.Parse("2006-01-02", *payload.DueDate)
		if err != nil {
			return apperrors.NewBadRequestError("Некорректный срок выполнения")
		}
		post.DueDate = &due
	}

	if err := s.postRepo.Update(ctx, id, post); err != nil {
		s.logger.Error("Ошибка при обновлении поста", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *PostService) updateEvent(ctx context.Context, id uint64, payload dto.UpdatePostDTO) error {
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
	if payload.EventDate != nil {
		date, err := time.Parse("2006-01-02", *payload.EventDate)
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

func (s *PostService) DeletePost(ctx context.Context, id uint64) error {
	return s.postRepo.Delete(ctx, id)
}

// ToggleLike снимает лайк, если он уже стоит, и ставит, если его нет.
// Пара вызовов одного пользователя возвращает пост в исходное состояние.
// Возвращается актуальный список лайков поста.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint64) ([]entities.Like, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.FindByUserAndPost(ctx, userID, postID)
	switch {
	case err == nil:
		if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
			s.logger.Error("Ошибка при снятии лайка", zap.Uint64("postID", postID), zap.Error(err))
			return nil, err
		}
	case errors.Is(err, apperrors.ErrNotFound):
		if _, err := s.likeRepo.Create(ctx, entities.Like{PostID: postID, UserID: userID}); err != nil {
			// Проигравший гонку за уникальность считается поставившим лайк.
			if !errors.Is(err, apperrors.ErrConflict) {
				s.logger.Error("Ошибка при постановке лайка", zap.Uint64("postID", postID), zap.Error(err))
				return nil, err
			}
		}
	default:
		return nil, err
	}

	return s.likeRepo.ListByPost(ctx, postID)
}

// AddComment добавляет комментарий и возвращает полный список комментариев
// поста, свежие первыми.
func (s *PostService) AddComment(ctx context.Context, postID, userID uint64, payload dto.CreateCommentDTO) ([]entities.Comment, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := entities.Comment{
		Content: payload.Content,
		PostID:  postID,
		UserID:  userID,
	}
	if _, err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Ошибка при создании комментария", zap.Uint64("postID", postID), zap.Error(err))
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, postID)
}
