package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const likeTable = "likes"

type LikeRepositoryInterface interface {
	FindByUserAndPost(ctx context.Context, userID, postID uint64) (*entities.Like, error)
	Create(ctx context.Context, l entities.Like) (uint64, error)
	Delete(ctx context.Context, id uint64) error
	ListByPost(ctx context.Context, postID uint64) ([]entities.Like, error)
}

type likeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLikeRepository(storage *pgxpool.Pool, logger *zap.Logger) LikeRepositoryInterface {
	return &likeRepository{storage: storage, logger: logger}
}

func (r *likeRepository) FindByUserAndPost(ctx context.Context, userID, postID uint64) (*entities.Like, error) {
	query, args, err := psql.Select("id, post_id, user_id").
		From(likeTable).
		Where(sq.Eq{"user_id": userID, "post_id": postID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByUserAndPost: %w", err)
	}

	var l entities.Like
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&l.ID, &l.PostID, &l.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования likes: %w", err)
	}
	return &l, nil
}

func (r *likeRepository) Create(ctx context.Context, l entities.Like) (uint64, error) {
	query, args, err := psql.Insert(likeTable).
		Columns("post_id", "user_id").
		Values(l.PostID, l.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		// Гонка двух одновременных лайков упирается в UNIQUE (post_id, user_id).
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("ошибка создания likes: %w", err)
	}
	return newID, nil
}

func (r *likeRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(likeTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка удаления likes: %w", err)
	}
	return nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uint64) ([]entities.Like, error) {
	query, args, err := psql.Select("id, post_id, user_id").
		From(likeTable).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для ListByPost: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса likes: %w", err)
	}
	defer rows.Close()

	likes := make([]entities.Like, 0)
	for rows.Next() {
		var l entities.Like
		if err := rows.Scan(&l.ID, &l.PostID, &l.UserID); err != nil {
			return nil, fmt.Errorf("ошибка сканирования лайка: %w", err)
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}
