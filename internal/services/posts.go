package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/storage"
)

const msgPostNotFound = "پست یافت نشد"

func PostCollection() storage.Collection[models.Post] {
	return storage.Collection[models.Post]{Name: "posts", Prefix: "post", Seed: defaultPosts}
}

type PostService struct {
	repo *storage.Repository[models.Post]
	log  *zap.Logger
}

func NewPostService(repo *storage.Repository[models.Post], log *zap.Logger) *PostService {
	return &PostService{repo: repo, log: log.Named("posts")}
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	res, err := s.repo.List(ctx, storage.Query[models.Post]{Less: newestFirst[models.Post], Reverse: true})
	return unwrap(s.log, "list", res, err)
}

func (s *PostService) Published(ctx context.Context) ([]models.Post, error) {
	res, err := s.repo.List(ctx, storage.Query[models.Post]{
		Match:   func(p models.Post) bool { return p.Published },
		Less:    newestFirst[models.Post],
		Reverse: true,
	})
	return unwrap(s.log, "list published", res, err)
}

func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	res, err := s.repo.Get(ctx, id)
	post, err := unwrap(s.log, "get", res, err)
	if err != nil {
		return models.Post{}, err
	}
	if post == nil {
		return models.Post{}, apperrors.NotFound(msgPostNotFound)
	}
	return *post, nil
}

// Create stores the post. Without an image one is picked from the title.
func (s *PostService) Create(ctx context.Context, post models.Post) (models.Post, error) {
	if post.Image == "" {
		post.Image = PostImageFor(post.Title)
	}
	res, err := s.repo.Create(ctx, post)
	created, err := unwrap(s.log, "create", res, err)
	if err != nil {
		return models.Post{}, err
	}
	s.log.Info("Post created", zap.String("id", created.ID), zap.Bool("published", created.Published))
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id string, patch models.PostPatch) (models.Post, error) {
	res, err := s.repo.Update(ctx, id, patch.Apply)
	updated, err := unwrap(s.log, "update", res, err)
	if err != nil {
		return models.Post{}, err
	}
	if updated == nil {
		return models.Post{}, apperrors.NotFound(msgPostNotFound)
	}
	return *updated, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	res, err := s.repo.Delete(ctx, id)
	deleted, err := unwrap(s.log, "delete", res, err)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound(msgPostNotFound)
	}
	return nil
}
