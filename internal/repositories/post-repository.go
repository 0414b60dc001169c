package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const (
	postTable  = "posts"
	postFields = `id, title, content, type, status, due_date, author_id, created_at, updated_at`
)

type PostRepositoryInterface interface {
	GetAll(ctx context.Context, postType string) ([]entities.Post, error)
	FindByID(ctx context.Context, id uint64) (*entities.Post, error)
	Create(ctx context.Context, p entities.Post) (uint64, error)
	Update(ctx context.Context, id uint64, p entities.Post) error
	Delete(ctx context.Context, id uint64) error
}

type postRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPostRepository(storage *pgxpool.Pool, logger *zap.Logger) PostRepositoryInterface {
	return &postRepository{storage: storage, logger: logger}
}

func (r *postRepository) scanRow(row pgx.Row) (*entities.Post, error) {
	var p entities.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Type, &p.Status, &p.DueDate,
		&p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования posts: %w", err)
	}
	p.Likes = make([]entities.Like, 0)
	p.Comments = make([]entities.Comment, 0)
	return &p, nil
}

func (r *postRepository) GetAll(ctx context.Context, postType string) ([]entities.Post, error) {
	builder := psql.Select(postFields).From(postTable).OrderBy("created_at DESC")
	if postType != "" {
		builder = builder.Where(sq.Eq{"type": postType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для GetAll: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса posts: %w", err)
	}
	defer rows.Close()

	posts := make([]entities.Post, 0)
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindByID(ctx context.Context, id uint64) (*entities.Post, error) {
	query, args, err := psql.Select(postFields).From(postTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID: %w", err)
	}

	p, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	posts := []entities.Post{*p}
	if err := r.loadRelations(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// loadRelations дозагружает авторов, лайки и комментарии одним запросом
// на каждую связь вместо запроса на каждый пост.
func (r *postRepository) loadRelations(ctx context.Context, posts []entities.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]uint64, 0, len(posts))
	authorIDs := make([]uint64, 0, len(posts))
	byID := make(map[uint64]*entities.Post, len(posts))
	for i := range posts {
		postIDs = append(postIDs, posts[i].ID)
		authorIDs = append(authorIDs, posts[i].AuthorID)
		byID[posts[i].ID] = &posts[i]
	}

	authors, err := r.fetchUsersShort(ctx, authorIDs)
	if err != nil {
		return err
	}
	for i := range posts {
		if a, ok := authors[posts[i].AuthorID]; ok {
			posts[i].Author = a
		}
	}

	if err := r.loadLikes(ctx, postIDs, byID); err != nil {
		return err
	}
	return r.loadComments(ctx, postIDs, byID)
}

func (r *postRepository) fetchUsersShort(ctx context.Context, ids []uint64) (map[uint64]*entities.UserShort, error) {
	query, args, err := psql.Select("id, name, role, photo").From(userTable).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для авторов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса авторов: %w", err)
	}
	defer rows.Close()

	users := make(map[uint64]*entities.UserShort)
	for rows.Next() {
		var u entities.UserShort
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &u.Photo); err != nil {
			return nil, fmt.Errorf("ошибка сканирования автора: %w", err)
		}
		users[u.ID] = &u
	}
	return users, rows.Err()
}

func (r *postRepository) loadLikes(ctx context.Context, postIDs []uint64, byID map[uint64]*entities.Post) error {
	query, args, err := psql.Select("id, post_id, user_id").From(likeTable).Where(sq.Eq{"post_id": postIDs}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL для лайков: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса лайков: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entities.Like
		if err := rows.Scan(&l.ID, &l.PostID, &l.UserID); err != nil {
			return fmt.Errorf("ошибка сканирования лайка: %w", err)
		}
		byID[l.PostID].Likes = append(byID[l.PostID].Likes, l)
	}
	return rows.Err()
}

func (r *postRepository) loadComments(ctx context.Context, postIDs []uint64, byID map[uint64]*entities.Post) error {
	query, args, err := psql.
		Select("c.id, c.content, c.post_id, c.user_id, c.created_at, u.id, u.name, u.role, u.photo").
		From(commentTable + " AS c").
		Join(userTable + " AS u ON u.id = c.user_id").
		Where(sq.Eq{"c.post_id": postIDs}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL для комментариев: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса комментариев: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c entities.Comment
		var u entities.UserShort
		err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.UserID, &c.CreatedAt,
			&u.ID, &u.Name, &u.Role, &u.Photo)
		if err != nil {
			return fmt.Errorf("ошибка сканирования комментария: %w", err)
		}
		c.User = &u
		byID[c.PostID].Comments = append(byID[c.PostID].Comments, c)
	}
	return rows.Err()
}

func (r *postRepository) Create(ctx context.Context, p entities.Post) (uint64, error) {
	query, args, err := psql.Insert(postTable).
		Columns("title", "content", "type", "status", "due_date", "author_id").
		Values(p.Title, p.Content, p.Type, p.Status, p.DueDate, p.AuthorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания posts: %w", err)
	}
	return newID, nil
}

func (r *postRepository) Update(ctx context.Context, id uint64, p entities.Post) error {
	query, args, err := psql.Update(postTable).
		Set("title", p.Title).
		Set("content", p.Content).
		Set("type", p.Type).
		Set("status", p.Status).
		Set("due_date", p.DueDate).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления posts: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(postTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления posts: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
