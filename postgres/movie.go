package postgres

import (
	"context"
	"errors"

	"movieapi/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
// Deleting a movie removes its comments through the ON DELETE CASCADE foreign key.
type MovieModel struct {
	ID       int64   `gorm:"primaryKey"`
	Title    string  `gorm:"size:255;not null"`
	Genre    *string `gorm:"size:100"`
	Year     *int
	Comments []CommentModel `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// CreateMovie inserts m and returns the assigned id.
func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (int64, error) {
	model := toModelMovie(m)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, err
	}
	return model.ID, nil
}

func (r *MovieRepository) FindMovies(ctx context.Context, f movie.Filter) ([]movie.Movie, error) {
	q := r.db.WithContext(ctx).Model(&MovieModel{})
	if f.Genre != "" {
		q = q.Where("genre ILIKE ?", "%"+f.Genre+"%")
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}

	var models []MovieModel
	if err := q.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toDomainMovie(model)
	}
	return movies, nil
}

// UpdateMovie overwrites title, genre and year of the movie with id m.ID.
func (r *MovieRepository) UpdateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	var updated movie.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model MovieModel
		if err := tx.First(&model, m.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return movie.ErrMovieNotFound
			}
			return err
		}

		replacement := toModelMovie(m)
		model.Title = replacement.Title
		model.Genre = replacement.Genre
		model.Year = replacement.Year
		if err := tx.Save(&model).Error; err != nil {
			return err
		}

		updated = toDomainMovie(model)
		return nil
	})
	if err != nil {
		return movie.Movie{}, err
	}
	return updated, nil
}

// DeleteMovie removes the movie and, through the foreign key, its comments.
func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&MovieModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func toModelMovie(m movie.Movie) MovieModel {
	model := MovieModel{
		ID:    m.ID,
		Title: m.Title,
	}
	if m.Genre != "" {
		genre := m.Genre
		model.Genre = &genre
	}
	if m.Year != 0 {
		year := m.Year
		model.Year = &year
	}
	return model
}

func toDomainMovie(model MovieModel) movie.Movie {
	m := movie.Movie{
		ID:    model.ID,
		Title: model.Title,
	}
	if model.Genre != nil {
		m.Genre = *model.Genre
	}
	if model.Year != nil {
		m.Year = *model.Year
	}
	return m
}
