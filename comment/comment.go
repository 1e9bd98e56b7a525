package comment

import (
	"strings"

	"movieapi/errs"
)

var (
	ErrCommentNotFound       = errs.Errorf(errs.ENOTFOUND, "Comment not found")
	ErrCommentDetailNotFound = errs.Errorf(errs.ENOTFOUND, "comment detail not found")
	ErrMovieNotFound         = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrInvalidComment        = errs.Errorf(errs.EINVALID, "comment: invalid comment")
	ErrInvalidMovieID        = errs.Errorf(errs.EINVALID, "comment: invalid movie id")
)

type Comment struct {
	ID      int64  `json:"id"`
	Comment string `json:"comment"`
	MovieID int64  `json:"movie_id"`
}

func (c Comment) Validate() error {
	if strings.TrimSpace(c.Comment) == "" {
		return ErrInvalidComment
	}
	if c.MovieID <= 0 {
		return ErrInvalidMovieID
	}
	return nil
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Comment *string
}

func (p Patch) Validate() error {
	if p.Comment != nil && strings.TrimSpace(*p.Comment) == "" {
		return ErrInvalidComment
	}
	return nil
}

// Apply overwrites the supplied fields of c. MovieID is never changed.
func (p Patch) Apply(c Comment) Comment {
	if p.Comment != nil {
		c.Comment = *p.Comment
	}
	return c
}

// Filter narrows List. Comment is a case-insensitive substring match, MovieID is exact.
type Filter struct {
	Comment string
	MovieID int64
}
