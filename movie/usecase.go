package movie

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	AddMovie(ctx context.Context, title string) (int64, error)
	ListMovies(ctx context.Context, f Filter) ([]Movie, error)
	UpdateMovie(ctx context.Context, id int64, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// Repository persists movies. Implementations return ErrMovieNotFound when
// no row matches the given id.
type Repository interface {
	CreateMovie(ctx context.Context, m Movie) (int64, error)
	FindMovies(ctx context.Context, f Filter) ([]Movie, error)
	UpdateMovie(ctx context.Context, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// MetadataProvider resolves a free-text title to canonical metadata.
// It returns ErrMovieNotFound when the title is unknown; any other error is
// a transport or payload failure.
type MetadataProvider interface {
	LookupByTitle(ctx context.Context, title string) (Metadata, error)
}

type Usecase struct {
	r        Repository
	metadata MetadataProvider
}

func NewUsecase(r Repository, p MetadataProvider) *Usecase {
	return &Usecase{
		r:        r,
		metadata: p,
	}
}

// AddMovie stores the provider's canonical record for title, not title itself.
func (uc *Usecase) AddMovie(ctx context.Context, title string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, ErrInvalidTitle
	}

	md, err := uc.metadata.LookupByTitle(ctx, title)
	if err != nil {
		return 0, err
	}

	m := md.ToMovie()
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreateMovie(ctx, m)
}

func (uc *Usecase) ListMovies(ctx context.Context, f Filter) ([]Movie, error) {
	f.Genre = strings.TrimSpace(f.Genre)
	return uc.r.FindMovies(ctx, f)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, m Movie) (Movie, error) {
	if id <= 0 {
		return Movie{}, ErrMovieNotFound
	}
	m.ID = id
	m.Title = strings.TrimSpace(m.Title)
	m.Genre = strings.TrimSpace(m.Genre)
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateMovie(ctx, m)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrMovieDetailNotFound
	}
	err := uc.r.DeleteMovie(ctx, id)
	if errors.Is(err, ErrMovieNotFound) {
		return ErrMovieDetailNotFound
	}
	return err
}
