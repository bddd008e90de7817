package api

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xolan/worklog/internal/worktime"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ShutdownTimeout bounds how long in-flight requests may run after a stop signal.
const ShutdownTimeout = 5 * time.Second

var templateFuncs = template.FuncMap{
	"deviation": worktime.FormatDeviation,
	"hours":     func(h float64) string { return fmt.Sprintf("%.2f", h) },
	"clock":     worktime.FormatMinutes,
	"over":      func(dev int) bool { return dev >= 0 },
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), LoggingMiddleware(app.Logger()))
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", GetIndex(app))
	r.GET("/api/summary", GetSummary(app))
	r.GET("/healthz", GetHealth())
	r.POST("/add_entry", PostAddEntry(app))
	r.POST("/update_entry/:date", PostUpdateEntry(app))
	r.POST("/delete_entry/:date", PostDeleteEntry(app))

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, app App) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger().Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.Logger().Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
