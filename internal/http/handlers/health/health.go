// Package health реализует проверку доступности сервиса.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Response ответ GET /health.
type Response struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2025-01-02T03:04:05.000Z"`
	Version   string `json:"version" example:"1.1.0"`
}

type Handler struct {
	log     *slog.Logger
	version string
	now     func() time.Time
}

func New(log *slog.Logger, version string) *Handler {
	return &Handler{
		log:     log,
		version: version,
		now:     time.Now,
	}
}

// ServeHTTP godoc
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} health.Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Response{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Version:   h.version,
	})
}
