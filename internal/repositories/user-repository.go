package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const (
	userTable  = "users"
	userFields = `id, email, password, name, photo, telegram, role, group_number, email1, email2, birth_date, employment_date, is_owner, created_at, updated_at`
)

type UserRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*entities.User, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, tx pgx.Tx, u entities.User, positionIDs []uint64) (uint64, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, u entities.User, positionIDs []uint64) error
	Delete(ctx context.Context, id uint64) error
}

type userRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &userRepository{storage: storage, logger: logger}
}

func (r *userRepository) scanRow(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.Photo, &u.Telegram, &u.Role,
		&u.GroupNumber, &u.Email1, &u.Email2, &u.BirthDate, &u.EmploymentDate,
		&u.IsOwner, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования users: %w", err)
	}
	return &u, nil
}

func (r *userRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := psql.Select(userFields).From(userTable).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для поиска пользователя: %w", err)
	}
	user, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	positionsByUser, err := r.loadPositions(ctx, []uint64{user.ID})
	if err != nil {
		return nil, err
	}
	user.Positions = positionsByUser[user.ID]
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r *userRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	query, args, err := psql.Select(userFields).From(userTable).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для списка пользователей: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	ids := make([]uint64, 0)
	for rows.Next() {
		u, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
		ids = append(ids, u.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации rows: %w", err)
	}

	positionsByUser, err := r.loadPositions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Positions = positionsByUser[u.ID]
	}
	return users, nil
}

// loadPositions подгружает должности для набора пользователей одним запросом.
func (r *userRepository) loadPositions(ctx context.Context, userIDs []uint64) (map[uint64][]entities.Position, error) {
	result := make(map[uint64][]entities.Position, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select("up.user_id", "p.id", "p.title", "p.description").
		From("user_positions up").
		Join("positions p ON p.id = up.position_id").
		Where(sq.Eq{"up.user_id": userIDs}).
		OrderBy("p.title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для user_positions: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса user_positions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID uint64
		var p entities.Position
		if err := rows.Scan(&userID, &p.ID, &p.Title, &p.Description); err != nil {
			return nil, fmt.Errorf("ошибка сканирования user_positions: %w", err)
		}
		result[userID] = append(result[userID], p)
	}
	return result, rows.Err()
}

func (r *userRepository) Create(ctx context.Context, tx pgx.Tx, u entities.User, positionIDs []uint64) (uint64, error) {
	query, args, err := psql.Insert(userTable).
		Columns("email", "password", "name", "photo", "telegram", "role", "group_number",
			"email1", "email2", "birth_date", "employment_date", "is_owner", "created_at", "updated_at").
		Values(u.Email, u.Password, u.Name, u.Photo, u.Telegram, u.Role, u.GroupNumber,
			u.Email1, u.Email2, u.BirthDate, u.EmploymentDate, u.IsOwner, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := tx.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, fmt.Errorf("пользователь с таким email уже существует: %w", apperrors.ErrConflict)
		}
		return 0, fmt.Errorf("ошибка создания users: %w", err)
	}

	if err := r.replacePositions(ctx, tx, newID, positionIDs, false); err != nil {
		return 0, err
	}
	return newID, nil
}

func (r *userRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, u entities.User, positionIDs []uint64) error {
	query, args, err := psql.Update(userTable).
		Set("email", u.Email).
		Set("password", u.Password).
		Set("name", u.Name).
		Set("photo", u.Photo).
		Set("telegram", u.Telegram).
		Set("role", u.Role).
		Set("group_number", u.GroupNumber).
		Set("email1", u.Email1).
		Set("email2", u.Email2).
		Set("birth_date", u.BirthDate).
		Set("employment_date", u.EmploymentDate).
		Set("is_owner", u.IsOwner).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("пользователь с таким email уже существует: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("ошибка обновления users: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if positionIDs != nil {
		if err := r.replacePositions(ctx, tx, id, positionIDs, true); err != nil {
			return err
		}
	}
	return nil
}

func (r *userRepository) replacePositions(ctx context.Context, tx pgx.Tx, userID uint64, positionIDs []uint64, clearFirst bool) error {
	if clearFirst {
		delQuery, delArgs, err := psql.Delete("user_positions").Where(sq.Eq{"user_id": userID}).ToSql()
		if err != nil {
			return fmt.Errorf("ошибка сборки запроса очистки user_positions: %w", err)
		}
		if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
			return fmt.Errorf("ошибка очистки user_positions: %w", err)
		}
	}
	if len(positionIDs) == 0 {
		return nil
	}

	builder := psql.Insert("user_positions").Columns("user_id", "position_id")
	for _, pid := range positionIDs {
		builder = builder.Values(userID, pid)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса user_positions: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка привязки должностей: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(userTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewHttpError(http.StatusBadRequest, "Пользователь не может быть удалён, так как на него есть ссылки", err, nil)
		}
		return fmt.Errorf("ошибка удаления users: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
