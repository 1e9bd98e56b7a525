package postgres

import (
	"context"
	"errors"

	"movieapi/comment"

	"gorm.io/gorm"
)

// CommentModel represents the database model for comments
type CommentModel struct {
	ID      int64  `gorm:"primaryKey"`
	MovieID int64  `gorm:"not null;index"`
	Comment string `gorm:"size:500;not null"`

	// Movie is a navigation back-reference, left nil unless preloaded.
	Movie *MovieModel `gorm:"foreignKey:MovieID"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// CommentRepository implements comment.Repository interface
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateComment inserts c after checking, in the same transaction, that its
// movie exists. A concurrent delete of the movie is still caught by the
// foreign key.
func (r *CommentRepository) CreateComment(ctx context.Context, c comment.Comment) (int64, error) {
	model := CommentModel{
		MovieID: c.MovieID,
		Comment: c.Comment,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&MovieModel{}).Where("id = ?", c.MovieID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return comment.ErrMovieNotFound
		}

		if err := tx.Create(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return comment.ErrMovieNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return model.ID, nil
}

func (r *CommentRepository) FindComments(ctx context.Context, f comment.Filter) ([]comment.Comment, error) {
	q := r.db.WithContext(ctx).Model(&CommentModel{})
	if f.Comment != "" {
		q = q.Where("comment ILIKE ?", "%"+f.Comment+"%")
	}
	if f.MovieID != 0 {
		q = q.Where("movie_id = ?", f.MovieID)
	}

	var models []CommentModel
	if err := q.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	comments := make([]comment.Comment, len(models))
	for i, model := range models {
		comments[i] = toDomainComment(model)
	}
	return comments, nil
}

// UpdateComment applies p to the comment with the given id.
func (r *CommentRepository) UpdateComment(ctx context.Context, id int64, p comment.Patch) (comment.Comment, error) {
	var updated comment.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model CommentModel
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return comment.ErrCommentNotFound
			}
			return err
		}

		patched := p.Apply(toDomainComment(model))
		if p.Comment != nil {
			if err := tx.Model(&model).Update("comment", patched.Comment).Error; err != nil {
				return err
			}
		}

		updated = patched
		return nil
	})
	if err != nil {
		return comment.Comment{}, err
	}
	return updated, nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&CommentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func toDomainComment(model CommentModel) comment.Comment {
	return comment.Comment{
		ID:      model.ID,
		Comment: model.Comment,
		MovieID: model.MovieID,
	}
}
