package movie

import (
	"strings"

	"movieapi/errs"
)

var (
	ErrMovieNotFound       = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrMovieDetailNotFound = errs.Errorf(errs.ENOTFOUND, "Movie detail not found")
	ErrInvalidTitle        = errs.Errorf(errs.EINVALID, "movie: invalid title")
	ErrInvalidYear         = errs.Errorf(errs.EINVALID, "movie: invalid year")
)

// Movie is a stored movie. An empty Genre and a zero Year mean the value is unknown.
type Movie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  int    `json:"year"`
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	if m.Year < 0 {
		return ErrInvalidYear
	}
	return nil
}

// Metadata is the canonical description of a title returned by a MetadataProvider.
// Genre is a comma-joined list of genre names.
type Metadata struct {
	Title string
	Genre string
	Year  int
}

func (md Metadata) ToMovie() Movie {
	return Movie{
		Title: md.Title,
		Genre: md.Genre,
		Year:  md.Year,
	}
}

// Filter narrows List. Genre is a case-insensitive substring match, Year is exact.
// Zero values disable the corresponding condition.
type Filter struct {
	Genre string
	Year  int
}
