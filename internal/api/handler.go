package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/timeutil"
)

// GetIndex renders the dashboard for today.
func GetIndex(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := app.Services().Summary.Dashboard(c.Request.Context(), app.Now())
		if err != nil {
			app.Logger().Errorf("[request_id=%s] failed to build dashboard: %v", c.GetString(requestIDKey), err)
			c.String(http.StatusInternalServerError, "Failed to load dashboard: %v", err)
			return
		}
		c.HTML(http.StatusOK, "index.html", d)
	}
}

// GetSummary returns the dashboard as JSON for ?date=YYYY-MM-DD (default today).
func GetSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		day := app.Now()
		if raw := c.Query("date"); raw != "" {
			parsed, err := timeutil.ParseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: service.KindInvalidFormat})
				return
			}
			day = parsed
		}

		d, err := app.Services().Summary.Dashboard(c.Request.Context(), day)
		if err != nil {
			HandleError(c, app.Logger(), err, "summary")
			return
		}
		HandleSuccess(c, app.Logger(), d)
	}
}

func PostAddEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.AddRequest
		if err := c.ShouldBind(&body); err != nil {
			// unreadable bodies fall through to the required-field check
			app.Logger().Debugf("[request_id=%s] bind add_entry: %v", c.GetString(requestIDKey), err)
		}

		e, err := app.Services().Entry.Add(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "add entry")
			return
		}
		app.Logger().Infof("[request_id=%s] added entry %s", c.GetString(requestIDKey), e.Date)
		HandleSuccess(c, app.Logger(), EntrySuccess("Entry added successfully", e))
	}
}

func PostUpdateEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")

		var body service.UpdateRequest
		if err := c.ShouldBind(&body); err != nil {
			app.Logger().Debugf("[request_id=%s] bind update_entry: %v", c.GetString(requestIDKey), err)
		}

		e, err := app.Services().Entry.Update(c.Request.Context(), date, body)
		if err != nil {
			HandleError(c, app.Logger(), err, "update entry")
			return
		}
		app.Logger().Infof("[request_id=%s] updated entry %s", c.GetString(requestIDKey), date)
		HandleSuccess(c, app.Logger(), EntrySuccess("Entry updated successfully", e))
	}
}

func PostDeleteEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")

		if err := app.Services().Entry.Delete(c.Request.Context(), date); err != nil {
			HandleError(c, app.Logger(), err, "delete entry")
			return
		}
		app.Logger().Infof("[request_id=%s] deleted entry %s", c.GetString(requestIDKey), date)
		HandleSuccess(c, app.Logger(), MessageResponse{Success: true, Message: "Entry deleted successfully"})
	}
}

func GetHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
