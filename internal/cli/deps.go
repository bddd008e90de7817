package cli

import (
	"io"
	"os"
	"time"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	Now    func() time.Time

	Services *service.Services
	Config   config.Config
}

// NewDeps creates a new Deps with the given services, writing to the process streams
func NewDeps(services *service.Services, cfg config.Config) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Now:      time.Now,
		Services: services,
		Config:   cfg,
	}
}
