package httpserver

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"movieapi/comment"
	"movieapi/movie"
	"movieapi/pkg/config"
)

type Options func(s *Server) error

// WithConfig sets the listen address, CORS origins and rate limit from cfg.
func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg == nil {
			return fmt.Errorf("httpserver: nil config")
		}
		s.Config = cfg
		if cfg.Port != 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		if cfg.AllowOrigins != "" {
			s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
		}
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return fmt.Errorf("httpserver: nil logger")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithCommentService(svc comment.Service) Options {
	return func(s *Server) error {
		s.CommentService = svc
		return nil
	}
}
