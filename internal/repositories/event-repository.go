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
	eventTable  = "events"
	eventFields = `e.id, e.title, e.type, e.date, e.user_id, e.created_at`
)

type EventRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.Event, error)
	FindByID(ctx context.Context, id uint64) (*entities.Event, error)
	Create(ctx context.Context, e entities.Event) (uint64, error)
	Update(ctx context.Context, id uint64, e entities.Event) error
	Delete(ctx context.Context, id uint64) error
}

type eventRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEventRepository(storage *pgxpool.Pool, logger *zap.Logger) EventRepositoryInterface {
	return &eventRepository{storage: storage, logger: logger}
}

func (r *eventRepository) baseSelect() sq.SelectBuilder {
	return psql.Select(eventFields + ", u.id, u.name, u.role, u.photo").
		From(eventTable + " AS e").
		LeftJoin(userTable + " AS u ON u.id = e.user_id")
}

func (r *eventRepository) scanRow(row pgx.Row) (*entities.Event, error) {
	var e entities.Event
	var uID *uint64
	var uName, uRole, uPhoto *string
	err := row.Scan(&e.ID, &e.Title, &e.Type, &e.Date, &e.UserID, &e.CreatedAt,
		&uID, &uName, &uRole, &uPhoto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования events: %w", err)
	}
	if uID != nil {
		e.User = &entities.UserShort{ID: *uID, Name: *uName, Role: *uRole, Photo: *uPhoto}
	}
	return &e, nil
}

// GetAll возвращает все события по возрастанию даты.
func (r *eventRepository) GetAll(ctx context.Context) ([]entities.Event, error) {
	query, args, err := r.baseSelect().OrderBy("e.date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для GetAll: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса events: %w", err)
	}
	defer rows.Close()

	events := make([]entities.Event, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepository) FindByID(ctx context.Context, id uint64) (*entities.Event, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *eventRepository) Create(ctx context.Context, e entities.Event) (uint64, error) {
	query, args, err := psql.Insert(eventTable).
		Columns("title", "type", "date", "user_id").
		Values(e.Title, e.Type, e.Date, e.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания events: %w", err)
	}
	return newID, nil
}

func (r *eventRepository) Update(ctx context.Context, id uint64, e entities.Event) error {
	query, args, err := psql.Update(eventTable).
		Set("title", e.Title).
		Set("type", e.Type).
		Set("date", e.Date).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления events: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(eventTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления events: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
