package httpserver

import (
	"github.com/labstack/echo/v4"

	"movieapi/errs"
)

const (
	msgMovieAdded   = "Added movie successfully !!"
	msgMoviesListed = "Get movies list successfully!"
	msgMovieUpdated = "Update movie detail successfully!"
	msgMovieDeleted = "Delete movie detail successfully !!"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.POST("", s.handleAddMovie)
	g.GET("", s.handleListMovies)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleAddMovie godoc
// @Summary Add Movie
// @Description Look up a title on OMDb and store the canonical title, genre and year
// @Tags movies
// @Produce json
// @Param movie_title query string true "Title to look up"
// @Success 200 {object} APIResponse{data=IDResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req AddMovieRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.MovieService.AddMovie(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}

	return writeSuccess(c, msgMovieAdded, IDResult{ID: id})
}

// handleListMovies godoc
// @Summary List Movies
// @Description List movies, optionally filtered by genre substring and exact year
// @Tags movies
// @Produce json
// @Param genre query string false "Case-insensitive genre substring"
// @Param year query int false "Release year"
// @Success 200 {object} APIResponse{data=[]movie.Movie}
// @Failure 400 {object} APIResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req ListMoviesRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context(), req.ToFilter())
	if err != nil {
		return err
	}

	return writeSuccess(c, msgMoviesListed, movies)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Replace title, genre and year of a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Movie fields"
// @Success 200 {object} APIResponse{data=movie.Movie}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.MovieService.UpdateMovie(c.Request().Context(), req.ID, req.ToMovie())
	if err != nil {
		return err
	}

	return writeSuccess(c, msgMovieUpdated, updated)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Delete a movie and all of its comments
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req IDRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), req.ID); err != nil {
		return err
	}

	return writeSuccess(c, msgMovieDeleted, nil)
}
