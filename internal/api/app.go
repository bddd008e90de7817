// Package api serves the dashboard page and the JSON entry endpoints over gin.
package api

import (
	"time"

	"github.com/xolan/worklog/internal/logger"
	"github.com/xolan/worklog/internal/service"
)

// App is what the handlers need from the running application.
type App interface {
	Logger() logger.Logger
	Services() *service.Services
	Now() time.Time
}

// Server is the default App.
type Server struct {
	log      logger.Logger
	services *service.Services
	clock    func() time.Time
}

func NewServer(services *service.Services, log logger.Logger) *Server {
	return &Server{log: log, services: services, clock: time.Now}
}

// WithClock replaces the time source used for "today".
func (s *Server) WithClock(clock func() time.Time) *Server {
	s.clock = clock
	return s
}

func (s *Server) Logger() logger.Logger       { return s.log }
func (s *Server) Services() *service.Services { return s.services }
func (s *Server) Now() time.Time              { return s.clock() }
