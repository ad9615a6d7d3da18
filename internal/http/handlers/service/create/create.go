// Package create реализует HTTP-обработчик добавления услуги.
//
// Тело запроса проверяется и нормализуется пакетом validation: имя и описание
// обрезаются, некорректная длительность отбрасывается. Любая ошибка, включая
// отказ хранилища, возвращается клиенту как 400.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jayden648/shoesclean/internal/http/response"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

// Handler обрабатывает POST /api/services.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику создания услуги.
type Service interface {
	Create(ctx context.Context, rec models.ServiceRecord) (*models.Service, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Добавить услугу
// @Tags Services
// @Accept json
// @Produce json
// @Param request body models.ServiceRecord true "Данные услуги"
// @Success 201 {object} response.ServiceItem
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или хранилища"
// @Router /api/services [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rec, err := validation.DecodeService(r.Body)
	if err != nil {
		log.Info("invalid service payload", sl.Err(err))
		response.WriteError(w, r, err, "Invalid request body")
		return
	}

	svc, err := h.service.Create(r.Context(), rec)
	if err != nil {
		log.Error("failed to add service", sl.Err(err))
		response.WriteErrorStatus(w, r, http.StatusBadRequest, err, "Failed to add service")
		return
	}

	log.Info("service added", slog.Int("id", svc.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.ServiceItem{
		Success: true,
		Message: "Service added successfully",
		Service: svc,
	})
}
