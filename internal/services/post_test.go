package services

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

type fakePostRepo struct {
	nextID uint64
	posts  map[uint64]entities.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, posts: make(map[uint64]entities.Post)}
}

func (r *fakePostRepo) GetAll(ctx context.Context, postType string) ([]entities.Post, error) {
	out := make([]entities.Post, 0)
	for _, p := range r.posts {
		if postType == "" || p.Type == postType {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id uint64) (*entities.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r *fakePostRepo) Create(ctx context.Context, p entities.Post) (uint64, error) {
	p.ID = r.nextID
	r.nextID++
	r.posts[p.ID] = p
	return p.ID, nil
}

func (r *fakePostRepo) Update(ctx context.Context, id uint64, p entities.Post) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	p.ID = id
	r.posts[id] = p
	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

type fakeCommentRepo struct {
	nextID   uint64
	comments []entities.Comment
}

func (r *fakeCommentRepo) Create(ctx context.Context, c entities.Comment) (uint64, error) {
	r.nextID++
	c.ID = r.nextID
	r.comments = append(r.comments, c)
	return c.ID, nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID uint64) ([]entities.Comment, error) {
	out := make([]entities.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id uint64) error { return nil }

type fakeLikeRepo struct {
	nextID uint64
	likes  map[uint64]entities.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[uint64]entities.Like)}
}

func (r *fakeLikeRepo) FindByUserAndPost(ctx context.Context, userID, postID uint64) (*entities.Like, error) {
	for _, l := range r.likes {
		if l.UserID == userID && l.PostID == postID {
			out := l
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeLikeRepo) Create(ctx context.Context, l entities.Like) (uint64, error) {
	if _, err := r.FindByUserAndPost(ctx, l.UserID, l.PostID); err == nil {
		return 0, apperrors.ErrConflict
	}
	r.nextID++
	l.ID = r.nextID
	r.likes[l.ID] = l
	return l.ID, nil
}

func (r *fakeLikeRepo) Delete(ctx context.Context, id uint64) error {
	delete(r.likes, id)
	return nil
}

func (r *fakeLikeRepo) ListByPost(ctx context.Context, postID uint64) ([]entities.Like, error) {
	out := make([]entities.Like, 0)
	for _, l := range r.likes {
		if l.PostID == postID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	nextID uint64
	events map[uint64]entities.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uint64]entities.Event)}
}

func (r *fakeEventRepo) GetAll(ctx context.Context) ([]entities.Event, error) {
	out := make([]entities.Event, 0)
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEventRepo) FindByID(ctx context.Context, id uint64) (*entities.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEventRepo) Create(ctx context.Context, e entities.Event) (uint64, error) {
	r.nextID++
	e.ID = r.nextID
	r.events[e.ID] = e
	return e.ID, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, id uint64, e entities.Event) error {
	if _, ok := r.events[id]; !ok {
		return apperrors.ErrNotFound
	}
	e.ID = id
	r.events[id] = e
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id uint64) error {
	delete(r.events, id)
	return nil
}

func newTestPostService() (*PostService, *fakePostRepo, *fakeCommentRepo, *fakeLikeRepo, *fakeEventRepo) {
	postRepo := newFakePostRepo()
	commentRepo := &fakeCommentRepo{}
	likeRepo := newFakeLikeRepo()
	eventRepo := newFakeEventRepo()
	svc := NewPostService(postRepo, commentRepo, likeRepo, eventRepo, zap.NewNop()).(*PostService)
	return svc, postRepo, commentRepo, likeRepo, eventRepo
}

func strPtr(s string) *string { return &s }

func TestCreateSubmission_KindPost(t *testing.T) {
	svc, postRepo, _, _, eventRepo := newTestPostService()

	result, err := svc.CreateSubmission(context.Background(), dto.CreatePostDTO{
		Kind:    dto.SubmissionKindPost,
		Title:   "Итоги квартала",
		Type:    "announcement",
		Content: "Квартал закрыт с ростом.",
	}, 7)
	require.NoError(t, err)

	post, ok := result.(*entities.Post)
	require.True(t, ok)
	assert.Equal(t, "Итоги квартала", post.Title)
	assert.Equal(t, uint64(7), post.AuthorID)
	assert.Len(t, postRepo.posts, 1)
	assert.Empty(t, eventRepo.events)
}

func TestCreateSubmission_KindEvent(t *testing.T) {
	svc, postRepo, _, _, eventRepo := newTestPostService()

	result, err := svc.CreateSubmission(context.Background(), dto.CreatePostDTO{
		Kind:      dto.SubmissionKindEvent,
		Title:     "Корпоратив",
		Type:      "event",
		EventDate: strPtr("2026-12-20"),
	}, 7)
	require.NoError(t, err)

	event, ok := result.(*entities.Event)
	require.True(t, ok)
	assert.Equal(t, "Корпоратив", event.Title)
	require.NotNil(t, event.UserID)
	assert.Equal(t, uint64(7), *event.UserID)
	assert.Equal(t, "2026-12-20", event.Date.Format("2006-01-02"))

	// Лента постов не затрагивается.
	assert.Empty(t, postRepo.posts)
	assert.Len(t, eventRepo.events, 1)
}

func TestCreateSubmission_PlanDefaultsToPending(t *testing.T) {
	svc, _, _, _, _ := newTestPostService()

	result, err := svc.CreateSubmission(context.Background(), dto.CreatePostDTO{
		Kind:    dto.SubmissionKindPost,
		Title:   "План на месяц",
		Type:    "plan",
		Content: "Выйти на 500 заказов.",
		DueDate: strPtr("2026-09-30"),
	}, 1)
	require.NoError(t, err)

	post := result.(*entities.Post)
	require.NotNil(t, post.Status)
	assert.Equal(t, "pending", *post.Status)
	require.NotNil(t, post.DueDate)
}

func TestGetPosts_TypeAllMeansNoFilter(t *testing.T) {
	svc, postRepo, _, _, _ := newTestPostService()
	_, err := postRepo.Create(context.Background(), entities.Post{Title: "Анонс", Type: "announcement"})
	require.NoError(t, err)
	_, err = postRepo.Create(context.Background(), entities.Post{Title: "Достижение", Type: "achievement"})
	require.NoError(t, err)

	posts, err := svc.GetPosts(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = svc.GetPosts(context.Background(), "achievement")
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestUpdatePost_KindEventUpdatesCalendar(t *testing.T) {
	svc, postRepo, _, _, eventRepo := newTestPostService()
	userID := uint64(3)
	eventID, err := eventRepo.Create(context.Background(), entities.Event{
		Title: "Планёрка", Type: "event", UserID: &userID,
	})
	require.NoError(t, err)

	err = svc.UpdatePost(context.Background(), eventID, dto.UpdatePostDTO{
		Kind:      dto.SubmissionKindEvent,
		Title:     strPtr("Квартальная планёрка"),
		EventDate: strPtr("2026-10-05"),
	})
	require.NoError(t, err)

	updated, err := eventRepo.FindByID(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, "Квартальная планёрка", updated.Title)
	assert.Equal(t, "2026-10-05", updated.Date.Format("2006-01-02"))
	assert.Empty(t, postRepo.posts)
}

func TestUpdatePost_KindEventMissing(t *testing.T) {
	svc, _, _, _, _ := newTestPostService()

	err := svc.UpdatePost(context.Background(), 999, dto.UpdatePostDTO{
		Kind:  dto.SubmissionKindEvent,
		Title: strPtr("Нет такого события"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdatePost_TypeChangeApplied(t *testing.T) {
	svc, postRepo, _, _, _ := newTestPostService()
	postID, err := postRepo.Create(context.Background(), entities.Post{
		Title: "План", Content: "...", Type: "plan", AuthorID: 1,
	})
	require.NoError(t, err)

	err = svc.UpdatePost(context.Background(), postID, dto.UpdatePostDTO{
		Kind: dto.SubmissionKindPost,
		Type: strPtr("announcement"),
	})
	require.NoError(t, err)

	assert.Equal(t, "announcement", postRepo.posts[postID].Type)
	assert.Equal(t, "План", postRepo.posts[postID].Title)
}

func TestToggleLike_PairReturnsToZero(t *testing.T) {
	svc, postRepo, _, _, _ := newTestPostService()
	postID, err := postRepo.Create(context.Background(), entities.Post{Title: "Пост", Type: "announcement"})
	require.NoError(t, err)

	likes, err := svc.ToggleLike(context.Background(), postID, 5)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
	assert.Equal(t, uint64(5), likes[0].UserID)

	likes, err = svc.ToggleLike(context.Background(), postID, 5)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestToggleLike_TwoUsersIndependent(t *testing.T) {
	svc, postRepo, _, _, _ := newTestPostService()
	postID, err := postRepo.Create(context.Background(), entities.Post{Title: "Пост", Type: "announcement"})
	require.NoError(t, err)

	_, err = svc.ToggleLike(context.Background(), postID, 1)
	require.NoError(t, err)
	likes, err := svc.ToggleLike(context.Background(), postID, 2)
	require.NoError(t, err)
	assert.Len(t, likes, 2)

	likes, err = svc.ToggleLike(context.Background(), postID, 1)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
	assert.Equal(t, uint64(2), likes[0].UserID)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestPostService()

	_, err := svc.ToggleLike(context.Background(), 999, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddComment_ReturnsNewestFirst(t *testing.T) {
	svc, postRepo, _, _, _ := newTestPostService()
	postID, err := postRepo.Create(context.Background(), entities.Post{Title: "Пост", Type: "announcement"})
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), postID, 1, dto.CreateCommentDTO{Content: "первый"})
	require.NoError(t, err)
	comments, err := svc.AddComment(context.Background(), postID, 2, dto.CreateCommentDTO{Content: "второй"})
	require.NoError(t, err)

	require.Len(t, comments, 2)
	assert.Equal(t, "второй", comments[0].Content)
	assert.Equal(t, "первый", comments[1].Content)
}

func TestAddComment_PostNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestPostService()

	_, err := svc.AddComment(context.Background(), 999, 1, dto.CreateCommentDTO{Content: "текст"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
