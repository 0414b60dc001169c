package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
)

const commentTable = "comments"

type CommentRepositoryInterface interface {
	Create(ctx context.Context, c entities.Comment) (uint64, error)
	ListByPost(ctx context.Context, postID uint64) ([]entities.Comment, error)
	Delete(ctx context.Context, id uint64) error
}

type commentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCommentRepository(storage *pgxpool.Pool, logger *zap.Logger) CommentRepositoryInterface {
	return &commentRepository{storage: storage, logger: logger}
}

func (r *commentRepository) Create(ctx context.Context, c entities.Comment) (uint64, error) {
	query, args, err := psql.Insert(commentTable).
		Columns("content", "post_id", "user_id").
		Values(c.Content, c.PostID, c.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания comments: %w", err)
	}
	return newID, nil
}

// ListByPost возвращает комментарии поста с авторами, свежие первыми.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint64) ([]entities.Comment, error) {
	query, args, err := psql.
		Select("c.id, c.content, c.post_id, c.user_id, c.created_at, u.id, u.name, u.role, u.photo").
		From(commentTable + " AS c").
		Join(userTable + " AS u ON u.id = c.user_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для ListByPost: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		var u entities.UserShort
		err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.UserID, &c.CreatedAt,
			&u.ID, &u.Name, &u.Role, &u.Photo)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования комментария: %w", err)
		}
		c.User = &u
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(commentTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка удаления comments: %w", err)
	}
	return nil
}
