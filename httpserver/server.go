package httpserver

import (
	"context"
	"fmt"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"movieapi/comment"
	"movieapi/errs"
	"movieapi/movie"
	"movieapi/pkg/config"
	"movieapi/pkg/logger"
	"movieapi/pkg/metrics"
	"movieapi/pkg/sentry"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Config *config.Config
	Logger *zap.SugaredLogger

	MovieService   movie.Service
	CommentService comment.Service
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		Config:       config.Empty,
		Logger:       logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.HTTPErrorHandler = s.httpErrorHandler
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterMetricsRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterMovieRoutes(s.Router.Group("/movies"))
	s.RegisterCommentRoutes(s.Router.Group("/comments"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	if s.Config.RateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStore(rate.Limit(s.Config.RateLimit))
		s.Router.Use(middleware.RateLimiter(store))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}

	s.Router.Use(metrics.Middleware())
}

func (s *Server) RegisterMetricsRoutes() {
	s.Router.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// httpErrorHandler writes every failure in the response envelope. Not-found
// outcomes are 404; any other application or storage error is 400 with the
// error text as message. Errors raised by echo itself keep their status.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code     int
		message  string
		expected bool
	)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = httpErrorMessage(he)
		expected = code < http.StatusInternalServerError
		if he.Internal != nil {
			err = he.Internal
		}
	} else if errs.IsNotFound(err) {
		code = http.StatusNotFound
		message = errs.ErrorMessage(err)
	} else {
		code = http.StatusBadRequest
		message = errs.Detail(err)
		expected = errs.ErrorCode(err) == errs.EINVALID
	}

	s.logError(c, err, code, expected)

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = writeFail(c, code, message)
	}
	if err != nil {
		s.Logger.Errorw("cannot write error response", "error", err)
	}
}

// logError reports unexpected failures to Sentry. Expected client errors are
// only logged.
func (s *Server) logError(c echo.Context, err error, code int, expected bool) {
	requestID := s.requestID(c)
	fields := []interface{}{
		"request_id", requestID,
		"method", c.Request().Method,
		"path", c.Path(),
		"status", code,
	}

	switch {
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed || code == http.StatusTooManyRequests:
		s.Logger.Debugw(err.Error(), fields...)
	case expected:
		s.Logger.Infow(err.Error(), fields...)
	default:
		s.Logger.Errorw(err.Error(), fields...)
		sentry.WithContext(c).
			WithTags(map[string]string{"request_id": requestID}).
			WithExtras(map[string]interface{}{"status": code}).
			Error(err)
	}
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func httpErrorMessage(he *echo.HTTPError) string {
	if m, ok := he.Message.(string); ok {
		return m
	}
	return fmt.Sprint(he.Message)
}
