package httpserver

import (
	"github.com/labstack/echo/v4"

	"movieapi/errs"
)

const (
	msgCommentAdded   = "Added movie comment successfully !!"
	msgCommentsListed = "Get comments list successfully!"
	msgCommentUpdated = "Update comment successfully!"
	msgCommentDeleted = "Delete comment detail successfully !!"
)

func (s *Server) RegisterCommentRoutes(g *echo.Group) {
	g.POST("", s.handleAddComment)
	g.GET("", s.handleListComments)
	g.PUT("/:id", s.handleUpdateComment)
	g.DELETE("/:id", s.handleDeleteComment)
}

// handleAddComment godoc
// @Summary Add Comment
// @Description Add a comment to an existing movie
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body AddCommentRequest true "Comment"
// @Success 200 {object} APIResponse{data=IDResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /comments [post]
func (s *Server) handleAddComment(c echo.Context) error {
	if s.CommentService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "comment service not configured")
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.CommentService.AddComment(c.Request().Context(), req.ToComment())
	if err != nil {
		return err
	}

	return writeSuccess(c, msgCommentAdded, IDResult{ID: id})
}

// handleListComments godoc
// @Summary List Comments
// @Description List comments, optionally filtered by text substring and movie
// @Tags comments
// @Produce json
// @Param comment query string false "Case-insensitive text substring"
// @Param movie_id query int false "Movie ID"
// @Success 200 {object} APIResponse{data=[]comment.Comment}
// @Failure 400 {object} APIResponse
// @Router /comments [get]
func (s *Server) handleListComments(c echo.Context) error {
	if s.CommentService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "comment service not configured")
	}

	var req ListCommentsRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comments, err := s.CommentService.ListComments(c.Request().Context(), req.ToFilter())
	if err != nil {
		return err
	}

	return writeSuccess(c, msgCommentsListed, comments)
}

// handleUpdateComment godoc
// @Summary Update Comment
// @Description Change the text of a comment. Omitted fields are left as they are.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body UpdateCommentRequest true "Fields to change"
// @Success 200 {object} APIResponse{data=comment.Comment}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /comments/{id} [put]
func (s *Server) handleUpdateComment(c echo.Context) error {
	if s.CommentService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "comment service not configured")
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.CommentService.UpdateComment(c.Request().Context(), req.ID, req.ToPatch())
	if err != nil {
		return err
	}

	return writeSuccess(c, msgCommentUpdated, updated)
}

// handleDeleteComment godoc
// @Summary Delete Comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /comments/{id} [delete]
func (s *Server) handleDeleteComment(c echo.Context) error {
	if s.CommentService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "comment service not configured")
	}

	var req IDRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := s.CommentService.DeleteComment(c.Request().Context(), req.ID); err != nil {
		return err
	}

	return writeSuccess(c, msgCommentDeleted, nil)
}
