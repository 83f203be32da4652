package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
)

func newPostService(t *testing.T) *PostService {
	return NewPostService(newRepo(t, PostCollection()), zap.NewNop())
}

func TestPostService_CreatePicksImage(t *testing.T) {
	ctx := context.Background()
	svc := newPostService(t)

	post, err := svc.Create(ctx, models.Post{Title: "غذای سگ", Content: "..."})
	require.NoError(t, err)
	assert.Equal(t, "https://source.unsplash.com/800x600/?dog,animal", post.Image)
	assert.False(t, post.Published)

	withImage, err := svc.Create(ctx, models.Post{Title: "غذای سگ", Content: "...", Image: "/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "/a.png", withImage.Image)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, withImage.ID, all[0].ID)
	assert.Equal(t, "1", all[2].ID)
}

func TestPostService_Published(t *testing.T) {
	ctx := context.Background()
	svc := newPostService(t)

	_, err := svc.Create(ctx, models.Post{Title: "draft", Content: "..."})
	require.NoError(t, err)
	live, err := svc.Create(ctx, models.Post{Title: "live", Content: "...", Published: true})
	require.NoError(t, err)

	published, err := svc.Published(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, live.ID, published[0].ID)
	assert.Equal(t, "1", published[1].ID)
}

func TestPostService_UpdateKeepsImageWhenOmitted(t *testing.T) {
	ctx := context.Background()
	svc := newPostService(t)
	published := false

	updated, err := svc.Update(ctx, "1", models.PostPatch{
		Title:     strPtr("new title"),
		Content:   strPtr("new content"),
		Published: &published,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "https://source.unsplash.com/800x600/?pet,cat", updated.Image)
	assert.False(t, updated.Published)

	_, err = svc.Update(ctx, "missing", models.PostPatch{Title: strPtr("x")})
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newPostService(t)

	require.NoError(t, svc.Delete(ctx, "1"))
	err := svc.Delete(ctx, "1")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
	assert.Equal(t, "پست یافت نشد", apperrors.MessageOf(err, ""))
}
