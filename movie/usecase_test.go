// nolint: funlen
package movie_test

import (
	"context"
	"errors"
	"testing"

	"movieapi/errs"
	"movieapi/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) CreateMovie(ctx context.Context, mv movie.Movie) (int64, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovieRepository) FindMovies(ctx context.Context, f movie.Filter) ([]movie.Movie, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) UpdateMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMetadataProvider struct {
	mock.Mock
}

func (m *MockMetadataProvider) LookupByTitle(ctx context.Context, title string) (movie.Metadata, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(movie.Metadata), args.Error(1)
}

func TestAddMovie(t *testing.T) {
	t.Run("should store canonical metadata and return new id", func(t *testing.T) {
		r := new(MockMovieRepository)
		p := new(MockMetadataProvider)
		uc := movie.NewUsecase(r, p)
		md := movie.Metadata{Title: "Inception", Genre: "Action, Adventure, Sci-Fi", Year: 2010}
		p.On("LookupByTitle", mock.Anything, "inception").Return(md, nil).Once()
		r.On("CreateMovie", mock.Anything, movie.Movie{Title: "Inception", Genre: "Action, Adventure, Sci-Fi", Year: 2010}).
			Return(int64(7), nil).Once()

		id, err := uc.AddMovie(context.Background(), "  inception ")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		r.AssertExpectations(t)
		p.AssertExpectations(t)
	})

	t.Run("should not write when title is unknown", func(t *testing.T) {
		r := new(MockMovieRepository)
		p := new(MockMetadataProvider)
		uc := movie.NewUsecase(r, p)
		p.On("LookupByTitle", mock.Anything, "NonExistingMovie").Return(movie.Metadata{}, movie.ErrMovieNotFound).Once()

		_, err := uc.AddMovie(context.Background(), "NonExistingMovie")

		assert.Equal(t, movie.ErrMovieNotFound, err)
		assert.True(t, errs.IsNotFound(err))
		r.AssertNotCalled(t, "CreateMovie")
	})

	t.Run("should surface provider transport errors", func(t *testing.T) {
		r := new(MockMovieRepository)
		p := new(MockMetadataProvider)
		uc := movie.NewUsecase(r, p)
		boom := errors.New("omdb: dial tcp: connection refused")
		p.On("LookupByTitle", mock.Anything, "Inception").Return(movie.Metadata{}, boom).Once()

		_, err := uc.AddMovie(context.Background(), "Inception")

		assert.ErrorIs(t, err, boom)
		assert.False(t, errs.IsNotFound(err))
		r.AssertNotCalled(t, "CreateMovie")
	})

	t.Run("should reject blank title without calling provider", func(t *testing.T) {
		r := new(MockMovieRepository)
		p := new(MockMetadataProvider)
		uc := movie.NewUsecase(r, p)

		_, err := uc.AddMovie(context.Background(), "   ")

		assert.Equal(t, movie.ErrInvalidTitle, err)
		p.AssertNotCalled(t, "LookupByTitle")
	})
}

func TestListMovies(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r, new(MockMetadataProvider))

	t.Run("should pass trimmed filter to repository", func(t *testing.T) {
		movies := []movie.Movie{{ID: 1, Title: "Inception", Genre: "Sci-Fi", Year: 2010}}
		r.On("FindMovies", mock.Anything, movie.Filter{Genre: "Sci-Fi", Year: 2010}).Return(movies, nil).Once()

		result, err := uc.ListMovies(context.Background(), movie.Filter{Genre: " Sci-Fi ", Year: 2010})

		assert.NoError(t, err)
		assert.Equal(t, movies, result)
		r.AssertExpectations(t)
	})

	t.Run("should pass negative year through as an exact match", func(t *testing.T) {
		r.On("FindMovies", mock.Anything, movie.Filter{Year: -1}).Return([]movie.Movie{}, nil).Once()

		result, err := uc.ListMovies(context.Background(), movie.Filter{Year: -1})

		assert.NoError(t, err)
		assert.Empty(t, result)
		r.AssertExpectations(t)
	})
}

func TestUpdateMovie(t *testing.T) {
	t.Run("should replace all fields", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r, new(MockMetadataProvider))
		updated := movie.Movie{ID: 3, Title: "Interstellar", Genre: "Sci-Fi", Year: 2014}
		r.On("UpdateMovie", mock.Anything, updated).Return(updated, nil).Once()

		result, err := uc.UpdateMovie(context.Background(), 3, movie.Movie{Title: "Interstellar", Genre: "Sci-Fi", Year: 2014})

		assert.NoError(t, err)
		assert.Equal(t, updated, result)
		r.AssertExpectations(t)
	})

	t.Run("should return not found from repository", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r, new(MockMetadataProvider))
		r.On("UpdateMovie", mock.Anything, mock.Anything).Return(movie.Movie{}, movie.ErrMovieNotFound).Once()

		_, err := uc.UpdateMovie(context.Background(), 99, movie.Movie{Title: "Interstellar"})

		assert.Equal(t, movie.ErrMovieNotFound, err)
	})

	t.Run("should reject empty title", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r, new(MockMetadataProvider))

		_, err := uc.UpdateMovie(context.Background(), 3, movie.Movie{Genre: "Drama"})

		assert.Equal(t, movie.ErrInvalidTitle, err)
		r.AssertNotCalled(t, "UpdateMovie")
	})

	t.Run("should treat non-positive id as not found", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r, new(MockMetadataProvider))

		_, err := uc.UpdateMovie(context.Background(), 0, movie.Movie{Title: "Interstellar"})

		assert.Equal(t, movie.ErrMovieNotFound, err)
		r.AssertNotCalled(t, "UpdateMovie")
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Run("should delete existing movie", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r, new(MockMetadataProvider))
		r.On("DeleteMovie", mock.Anything, int64(5)).Return(nil).Once()

		err := uc.DeleteMovie(context.Background(), 5)

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("should report missing movie as detail not found", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r, new(MockMetadataProvider))
		r.On("DeleteMovie", mock.Anything, int64(404)).Return(movie.ErrMovieNotFound).Once()

		err := uc.DeleteMovie(context.Background(), 404)

		assert.Equal(t, movie.ErrMovieDetailNotFound, err)
	})

	t.Run("should pass through unexpected errors", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r, new(MockMetadataProvider))
		boom := errors.New("connection reset")
		r.On("DeleteMovie", mock.Anything, int64(5)).Return(boom).Once()

		err := uc.DeleteMovie(context.Background(), 5)

		assert.Equal(t, boom, err)
	})
}
