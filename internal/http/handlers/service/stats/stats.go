// Package stats реализует HTTP-обработчик агрегатов по услугам.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jayden648/shoesclean/internal/http/response"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Stats(ctx context.Context) (*models.ServiceStats, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика услуг
// @Description Количество услуг, средняя, минимальная и максимальная цена. Для пустого каталога все значения 0.
// @Tags Services
// @Produce json
// @Success 200 {object} response.ServiceStats
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/services/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("failed to fetch stats", sl.Err(err))
		response.WriteError(w, r, err, "Failed to fetch stats")
		return
	}

	render.JSON(w, r, response.ServiceStats{
		Success: true,
		Stats:   *stats,
	})
}
