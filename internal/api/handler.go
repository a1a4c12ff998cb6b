// Package api exposes the STT search over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/search"
	"github.com/gin-gonic/gin"
)

// Query parameter names.
const (
	ParamOrigin      = "Kota_Asal"
	ParamDestination = "Kota_Tujuan"
)

// Messages returned in response bodies.
const (
	MsgHealthy          = "API berjalan dengan baik!"
	MsgMissingParams    = "Kota_Asal dan Kota_Tujuan harus diisi"
	MsgSourceFailed     = "Gagal mengambil data dari Google Sheets"
	MsgEmptyDataset     = "Data tidak ditemukan di Google Sheet"
	MsgNoResults        = "Tidak ada data untuk kota asal dan tujuan yang diminta"
	MsgRouteNotFound    = "not found"
	MsgMethodNotAllowed = "method not allowed"
)

// Searcher runs one search request.
type Searcher interface {
	Search(ctx context.Context, origin, destination string) (*search.Response, error)
}

// Handler serves the search endpoints.
type Handler struct {
	searcher Searcher
	logger   *slog.Logger
}

// NewHandler creates a handler backed by searcher.
func NewHandler(searcher Searcher, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{searcher: searcher, logger: logger}
}

// RegisterRoutes attaches the endpoints to r.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.home)
	r.GET("/search_all_months", h.searchAllMonths)
}

func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": MsgHealthy})
}

func (h *Handler) searchAllMonths(c *gin.Context) {
	origin := c.Query(ParamOrigin)
	destination := c.Query(ParamDestination)

	resp, err := h.searcher.Search(c.Request.Context(), origin, destination)
	if err != nil {
		status, msg := errorResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("search failed", "origin", origin, "destination", destination, "error", err)
		} else {
			h.logger.Info("search returned no result", "origin", origin, "destination", destination, "status", status, "reason", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// errorResponse maps the search error taxonomy onto a status and message.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, MsgMissingParams
	case errors.Is(err, common.ErrEmptyDataset):
		return http.StatusNotFound, MsgEmptyDataset
	case errors.Is(err, common.ErrNoMatch):
		return http.StatusNotFound, MsgNoResults
	default:
		return http.StatusInternalServerError, MsgSourceFailed
	}
}
