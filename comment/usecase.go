package comment

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	AddComment(ctx context.Context, c Comment) (int64, error)
	ListComments(ctx context.Context, f Filter) ([]Comment, error)
	UpdateComment(ctx context.Context, id int64, p Patch) (Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// Repository persists comments.
// CreateComment returns ErrMovieNotFound when the parent movie does not exist;
// UpdateComment and DeleteComment return ErrCommentNotFound for an unknown id.
type Repository interface {
	CreateComment(ctx context.Context, c Comment) (int64, error)
	FindComments(ctx context.Context, f Filter) ([]Comment, error)
	UpdateComment(ctx context.Context, id int64, p Patch) (Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddComment(ctx context.Context, c Comment) (int64, error) {
	c.ID = 0
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreateComment(ctx, c)
}

func (uc *Usecase) ListComments(ctx context.Context, f Filter) ([]Comment, error) {
	f.Comment = strings.TrimSpace(f.Comment)
	return uc.r.FindComments(ctx, f)
}

func (uc *Usecase) UpdateComment(ctx context.Context, id int64, p Patch) (Comment, error) {
	if id <= 0 {
		return Comment{}, ErrCommentNotFound
	}
	if err := p.Validate(); err != nil {
		return Comment{}, err
	}
	return uc.r.UpdateComment(ctx, id, p)
}

func (uc *Usecase) DeleteComment(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrCommentDetailNotFound
	}
	err := uc.r.DeleteComment(ctx, id)
	if errors.Is(err, ErrCommentNotFound) {
		return ErrCommentDetailNotFound
	}
	return err
}
