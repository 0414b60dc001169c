package repositories

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	"intranet-portal/migrations"
	apperrors "intranet-portal/pkg/errors"
)

var testPool *pgxpool.Pool

// TestMain подключается к тестовой БД из TEST_DATABASE_URL и накатывает
// миграции. Без заданной переменной интеграционные тесты пропускаются.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
	}

	applyMigrations(testPool)

	code := m.Run()
	testPool.Close()
	os.Exit(code)
}

func applyMigrations(pool *pgxpool.Pool) {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Не удалось выбрать диалект goose: %v", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("Не удалось применить миграции к тестовой БД: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Fatalf("Не удалось закрыть миграционное соединение: %v", err)
	}
}

func requireTestPool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL не задан, интеграционный тест пропущен")
	}
}

// cleanupTables очищает таблицы для изоляции тестов.
func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE likes, comments, posts, users RESTART IDENTITY CASCADE;`)
	require.NoError(t, err, "Не удалось очистить таблицы")
}

// seedAuthor создаёт пользователя, от имени которого публикуются посты.
func seedAuthor(t *testing.T, pool *pgxpool.Pool, email string) uint64 {
	t.Helper()
	var id uint64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password, name, birth_date, employment_date)
		 VALUES ($1, 'x', 'Тестовый Автор', '1990-01-01', '2020-01-01') RETURNING id`, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPostRepository_Integration_CreateAndFind(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	authorID := seedAuthor(t, testPool, "author@portal.local")
	repo := NewPostRepository(testPool, zap.NewNop())

	newID, err := repo.Create(context.Background(), entities.Post{
		Title:    "Интеграционный пост",
		Content:  "Содержимое поста",
		Type:     "announcement",
		AuthorID: authorID,
	})
	require.NoError(t, err)
	require.True(t, newID > 0)

	t.Run("success find", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), newID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Интеграционный пост", found.Title)
		assert.Equal(t, authorID, found.AuthorID)
		require.NotNil(t, found.Author)
		assert.Equal(t, "Тестовый Автор", found.Author.Name)
		assert.Empty(t, found.Likes)
		assert.Empty(t, found.Comments)
	})

	t.Run("not found", func(t *testing.T) {
		post, err := repo.FindByID(context.Background(), 99999)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, post)
	})
}

func TestPostRepository_Integration_GetAllFiltersByType(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	authorID := seedAuthor(t, testPool, "author@portal.local")
	repo := NewPostRepository(testPool, zap.NewNop())

	for _, postType := range []string{"announcement", "announcement", "achievement"} {
		_, err := repo.Create(context.Background(), entities.Post{
			Title: "Пост " + postType, Content: "...", Type: postType, AuthorID: authorID,
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	all, err := repo.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	announcements, err := repo.GetAll(context.Background(), "announcement")
	require.NoError(t, err)
	assert.Len(t, announcements, 2)

	// Свежие посты идут первыми.
	require.True(t, len(all) == 3)
	assert.Equal(t, "Пост achievement", all[0].Title)
}

func TestPostRepository_Integration_UpdateChangesType(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	authorID := seedAuthor(t, testPool, "author@portal.local")
	repo := NewPostRepository(testPool, zap.NewNop())

	status := "pending"
	postID, err := repo.Create(context.Background(), entities.Post{
		Title: "Был планом", Content: "...", Type: "plan", Status: &status, AuthorID: authorID,
	})
	require.NoError(t, err)

	current, err := repo.FindByID(context.Background(), postID)
	require.NoError(t, err)

	updated := *current
	updated.Type = "announcement"
	updated.Status = nil
	require.NoError(t, repo.Update(context.Background(), postID, updated))

	found, err := repo.FindByID(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, "announcement", found.Type)
	assert.Nil(t, found.Status)
}

func TestLikeRepository_Integration_UniquePerUser(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	authorID := seedAuthor(t, testPool, "author@portal.local")
	postRepo := NewPostRepository(testPool, zap.NewNop())
	likeRepo := NewLikeRepository(testPool, zap.NewNop())

	postID, err := postRepo.Create(context.Background(), entities.Post{
		Title: "Пост с лайками", Content: "...", Type: "announcement", AuthorID: authorID,
	})
	require.NoError(t, err)

	likeID, err := likeRepo.Create(context.Background(), entities.Like{PostID: postID, UserID: authorID})
	require.NoError(t, err)
	require.True(t, likeID > 0)

	_, err = likeRepo.Create(context.Background(), entities.Like{PostID: postID, UserID: authorID})
	assert.ErrorIs(t, err, apperrors.ErrConflict, "Повторный лайк того же пользователя должен упираться в уникальность")

	likes, err := likeRepo.ListByPost(context.Background(), postID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	found, err := likeRepo.FindByUserAndPost(context.Background(), authorID, postID)
	require.NoError(t, err)
	require.NoError(t, likeRepo.Delete(context.Background(), found.ID))

	_, err = likeRepo.FindByUserAndPost(context.Background(), authorID, postID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCommentRepository_Integration_NewestFirst(t *testing.T) {
	requireTestPool(t)
	cleanupTables(t, testPool)
	authorID := seedAuthor(t, testPool, "author@portal.local")
	postRepo := NewPostRepository(testPool, zap.NewNop())
	commentRepo := NewCommentRepository(testPool, zap.NewNop())

	postID, err := postRepo.Create(context.Background(), entities.Post{
		Title: "Пост с комментариями", Content: "...", Type: "announcement", AuthorID: authorID,
	})
	require.NoError(t, err)

	for _, content := range []string{"первый", "второй"} {
		_, err := commentRepo.Create(context.Background(), entities.Comment{
			Content: content, PostID: postID, UserID: authorID,
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	comments, err := commentRepo.ListByPost(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "второй", comments[0].Content)
	assert.Equal(t, "первый", comments[1].Content)
	require.NotNil(t, comments[0].User)
	assert.Equal(t, "Тестовый Автор", comments[0].User.Name)
}
