// Package sentry is a thin builder over sentry-go that reports events only
// when a DSN is configured and the service is not running locally.
package sentry

import (
	"fmt"
	"sync/atomic"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long Fatal waits for buffered events.
var FlushTime = 2 * time.Second

var reporting atomic.Bool

// Init configures the global sentry client. Reporting stays off when appEnv
// is "local" or dsn is empty.
func Init(appEnv, dsn string) error {
	err := sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              dsn,
		Environment:      appEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	reporting.Store(appEnv != "local" && dsn != "")
	return nil
}

// Flush waits up to FlushTime for buffered events.
func Flush() {
	sentrygo.Flush(FlushTime)
}

type Sentry struct {
	context echo.Context
	error   error
	level   sentrygo.Level
	extras  map[string]interface{}
	tags    map[string]string
}

func WithContext(c echo.Context) *Sentry {
	return new(Sentry).WithContext(c)
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

func (s *Sentry) Error(err error) {
	s.send(err, sentrygo.LevelError)
}

// Fatal reports err and waits up to FlushTime for delivery. It does not exit.
func (s *Sentry) Fatal(err error) {
	s.send(err, sentrygo.LevelFatal)
	Flush()
}

func Fatal(err error) { new(Sentry).Fatal(err) }

func enabled() bool {
	return reporting.Load()
}

func (s *Sentry) getHub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func (s *Sentry) configScope(scope *sentrygo.Scope) {
	scope.SetLevel(s.level)
	if len(s.extras) > 0 {
		scope.SetExtras(s.extras)
	}
	if len(s.tags) > 0 {
		scope.SetTags(s.tags)
	}
	if s.context != nil && s.context.Request() != nil {
		scope.SetRequest(s.context.Request())
	}
}

func (s *Sentry) send(err error, level sentrygo.Level) {
	if !enabled() || err == nil {
		return
	}
	s.error = err
	s.level = level
	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureException(s.error)
	})
}
