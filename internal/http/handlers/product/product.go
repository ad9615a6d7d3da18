// Package product реализует HTTP-обработчики каталога товаров.
// Ответы повторяют формат услуг с ключами products, product и deletedProduct.
package product

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jayden648/shoesclean/internal/http/response"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

// Service описывает бизнес-логику товаров.
type Service interface {
	List(ctx context.Context, q models.ListQuery) (*models.ProductPage, error)
	Read(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, rec models.ProductRecord) (*models.Product, error)
	Update(ctx context.Context, id int, rec models.ProductRecord) (*models.Product, error)
	Remove(ctx context.Context, id int) (*models.Product, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *Handler) id(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int, bool) {
	id, err := validation.ValidateID(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("invalid id", slog.String("id", chi.URLParam(r, "id")))
		response.WriteError(w, r, err, "Invalid ID format")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary Список товаров
// @Tags Products
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (1..100)" default(10)
// @Param search query string false "Строка поиска"
// @Param sortBy query string false "Столбец сортировки" Enums(id, name, price, updated_at)
// @Param sortOrder query string false "Направление сортировки" Enums(asc, desc)
// @Success 200 {object} response.ProductList
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/products [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.product.List")

	q, err := validation.ParseList(r.URL.Query(), validation.ProductSort)
	if err != nil {
		log.Info("invalid list parameters", sl.Err(err))
		response.WriteError(w, r, err, "Invalid query parameters")
		return
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		response.WriteError(w, r, err, "Failed to fetch products")
		return
	}

	render.JSON(w, r, response.ProductList{
		Success:    true,
		Products:   page.Products,
		Pagination: page.Pagination,
		Search:     response.Search(q),
		Sort:       response.Sort(q),
	})
}

// Read godoc
// @Summary Получить товар
// @Tags Products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} response.ProductItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/products/{id} [get]
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.product.Read")

	id, ok := h.id(w, r, log)
	if !ok {
		return
	}

	p, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read product", slog.Int("id", id), sl.Err(err))
		response.WriteError(w, r, err, "Failed to fetch product")
		return
	}

	render.JSON(w, r, response.ProductItem{Success: true, Product: p})
}

// Create godoc
// @Summary Добавить товар
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.ProductRecord true "Данные товара"
// @Success 201 {object} response.ProductItem
// @Failure 400 {object} response.ErrorResponse
// @Router /api/products [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.product.Create")

	rec, err := validation.DecodeProduct(r.Body)
	if err != nil {
		log.Info("invalid product payload", sl.Err(err))
		response.WriteError(w, r, err, "Invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), rec)
	if err != nil {
		log.Error("failed to add product", sl.Err(err))
		response.WriteErrorStatus(w, r, http.StatusBadRequest, err, "Failed to add product")
		return
	}

	log.Info("product added", slog.Int("id", p.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.ProductItem{
		Success: true,
		Message: "Product added successfully",
		Product: p,
	})
}

// Update godoc
// @Summary Обновить товар
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "ID товара"
// @Param request body models.ProductRecord true "Новые данные товара"
// @Success 200 {object} response.ProductItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/products/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.product.Update")

	id, ok := h.id(w, r, log)
	if !ok {
		return
	}
	rec, err := validation.DecodeProduct(r.Body)
	if err != nil {
		log.Info("invalid product payload", sl.Err(err))
		response.WriteError(w, r, err, "Invalid request body")
		return
	}

	p, err := h.service.Update(r.Context(), id, rec)
	if err != nil {
		log.Error("failed to update product", slog.Int("id", id), sl.Err(err))
		response.WriteError(w, r, err, "Failed to update product")
		return
	}

	render.JSON(w, r, response.ProductItem{
		Success: true,
		Message: "Product updated successfully",
		Product: p,
	})
}

// Remove godoc
// @Summary Удалить товар
// @Tags Products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} response.ProductDeleted
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.product.Remove")

	id, ok := h.id(w, r, log)
	if !ok {
		return
	}

	p, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to delete product", slog.Int("id", id), sl.Err(err))
		response.WriteError(w, r, err, "Failed to delete product")
		return
	}

	render.JSON(w, r, response.ProductDeleted{
		Success:        true,
		Message:        "Product deleted successfully",
		DeletedProduct: p,
	})
}
