package httpserver

import (
	"movieapi/comment"
	"movieapi/movie"
)

type AddMovieRequest struct {
	Title string `query:"movie_title" json:"movie_title" validate:"required,notblank,max=255"`
}

type ListMoviesRequest struct {
	Genre string `query:"genre" json:"genre" validate:"max=100"`
	Year  int    `query:"year" json:"year"`
}

func (r ListMoviesRequest) ToFilter() movie.Filter {
	return movie.Filter{Genre: r.Genre, Year: r.Year}
}

// UpdateMovieRequest replaces every field; omitted genre and year are cleared.
type UpdateMovieRequest struct {
	ID    int64  `param:"id" json:"-"`
	Title string `json:"title" validate:"required,notblank,max=255"`
	Genre string `json:"genre" validate:"max=100"`
	Year  int    `json:"year" validate:"gte=0"`
}

func (r UpdateMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		ID:    r.ID,
		Title: r.Title,
		Genre: r.Genre,
		Year:  r.Year,
	}
}

type IDRequest struct {
	ID int64 `param:"id" json:"-"`
}

type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required,notblank,max=500"`
	MovieID int64  `json:"movie_id" validate:"required,gt=0"`
}

func (r AddCommentRequest) ToComment() comment.Comment {
	return comment.Comment{
		Comment: r.Comment,
		MovieID: r.MovieID,
	}
}

type ListCommentsRequest struct {
	Comment string `query:"comment" json:"comment" validate:"max=500"`
	MovieID int64  `query:"movie_id" json:"movie_id"`
}

func (r ListCommentsRequest) ToFilter() comment.Filter {
	return comment.Filter{Comment: r.Comment, MovieID: r.MovieID}
}

// UpdateCommentRequest only changes the fields present in the body.
type UpdateCommentRequest struct {
	ID      int64   `param:"id" json:"-"`
	Comment *string `json:"comment" validate:"omitempty,notblank,max=500"`
}

func (r UpdateCommentRequest) ToPatch() comment.Patch {
	return comment.Patch{Comment: r.Comment}
}
