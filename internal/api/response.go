package api

import (
	"net/http"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/service"
)

// EntryResponse is returned by successful add and update calls.
type EntryResponse struct {
	Success          bool    `json:"success"`
	Message          string  `json:"message"`
	TotalHours       float64 `json:"total_hours"`
	DeviationMinutes int     `json:"deviation_minutes"`
}

// MessageResponse is returned by successful delete calls.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is returned by every failed mutation.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Kind    service.Kind `json:"kind"`
}

func EntrySuccess(msg string, e *entry.TimeEntry) EntryResponse {
	return EntryResponse{Success: true, Message: msg, TotalHours: e.TotalHours, DeviationMinutes: e.DeviationMinutes}
}

func Failure(err error) ErrorResponse {
	return ErrorResponse{Success: false, Error: service.Message(err), Kind: service.KindOf(err)}
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind service.Kind) int {
	switch {
	case kind.IsValidation(), kind == service.KindDuplicateKey:
		return http.StatusBadRequest
	case kind == service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
