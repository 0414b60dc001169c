package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const (
	feedbackTable       = "feedback"
	feedbackAnswerTable = "feedback_answers"
)

type FeedbackRepositoryInterface interface {
	ListByUser(ctx context.Context, userID uint64) ([]entities.Feedback, error)
	FindByID(ctx context.Context, id uint64) (*entities.Feedback, error)
	Create(ctx context.Context, f entities.Feedback) (uint64, error)
	CreateAnswer(ctx context.Context, a entities.FeedbackAnswer) (uint64, error)
}

type feedbackRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewFeedbackRepository(storage *pgxpool.Pool, logger *zap.Logger) FeedbackRepositoryInterface {
	return &feedbackRepository{storage: storage, logger: logger}
}

func (r *feedbackRepository) baseSelect() sq.SelectBuilder {
	return psql.Select(`f.id, f.content, f.user_id, f.created_at,
		a.id, a.feedback_id, a.admin_id, a.content, a.created_at, u.name`).
		From(feedbackTable + " AS f").
		LeftJoin(feedbackAnswerTable + " AS a ON a.feedback_id = f.id").
		LeftJoin(userTable + " AS u ON u.id = a.admin_id")
}

func (r *feedbackRepository) scanRow(row pgx.Row) (*entities.Feedback, error) {
	var f entities.Feedback
	var aID, aFeedbackID, aAdminID *uint64
	var aContent, adminName *string
	var aCreatedAt *time.Time
	err := row.Scan(&f.ID, &f.Content, &f.UserID, &f.CreatedAt,
		&aID, &aFeedbackID, &aAdminID, &aContent, &aCreatedAt, &adminName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования feedback: %w", err)
	}
	if aID != nil {
		f.Answer = &entities.FeedbackAnswer{
			ID:         *aID,
			FeedbackID: *aFeedbackID,
			AdminID:    *aAdminID,
			AdminName:  *adminName,
			Content:    *aContent,
			CreatedAt:  *aCreatedAt,
		}
	}
	return &f, nil
}

// ListByUser возвращает обращения пользователя, свежие первыми, вместе с
// ответом администратора, если он есть.
func (r *feedbackRepository) ListByUser(ctx context.Context, userID uint64) ([]entities.Feedback, error) {
	query, args, err := r.baseSelect().
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для ListByUser: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса feedback: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Feedback, 0)
	for rows.Next() {
		f, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uint64) (*entities.Feedback, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"f.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *feedbackRepository) Create(ctx context.Context, f entities.Feedback) (uint64, error) {
	query, args, err := psql.Insert(feedbackTable).
		Columns("content", "user_id").
		Values(f.Content, f.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания feedback: %w", err)
	}
	return newID, nil
}

// CreateAnswer добавляет ответ администратора. Повторный ответ на то же
// обращение упирается в UNIQUE (feedback_id).
func (r *feedbackRepository) CreateAnswer(ctx context.Context, a entities.FeedbackAnswer) (uint64, error) {
	query, args, err := psql.Insert(feedbackAnswerTable).
		Columns("feedback_id", "admin_id", "content").
		Values(a.FeedbackID, a.AdminID, a.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса CreateAnswer: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("ошибка создания feedback_answers: %w", err)
	}
	return newID, nil
}
