package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SortSpec белый список столбцов сортировки. Имена столбцов нельзя передать
// связанным параметром, поэтому в ORDER BY попадают только литералы отсюда.
type SortSpec struct {
	Columns []string
	Default string
}

var (
	ServiceSort = SortSpec{
		Columns: []string{"id", "name", "price", "duration_minutes", "created_at"},
		Default: "id",
	}
	ProductSort = SortSpec{
		Columns: []string{"id", "name", "price", "updated_at"},
		Default: "id",
	}
)

// Column возвращает литерал столбца из белого списка.
func (s SortSpec) Column(name string) (string, bool) {
	for _, c := range s.Columns {
		if c == name {
			return c, true
		}
	}
	return "", false
}

// ParseList проверяет page, limit, search, sortBy и sortOrder.
func ParseList(q url.Values, allowed SortSpec) (models.ListQuery, error) {
	page, ok := intParam(q, "page", DefaultPage)
	if !ok {
		return models.ListQuery{}, apperr.ErrInvalidPagination
	}
	limit, ok := intParam(q, "limit", DefaultLimit)
	if !ok {
		return models.ListQuery{}, apperr.ErrInvalidPagination
	}
	if page < 1 || limit < 1 || limit > MaxLimit {
		return models.ListQuery{}, apperr.ErrInvalidPagination
	}

	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = allowed.Default
	}
	column, ok := allowed.Column(sortBy)
	if !ok {
		return models.ListQuery{}, apperr.ErrInvalidSortColumn
	}

	var order string
	switch strings.ToLower(q.Get("sortOrder")) {
	case "", "asc":
		order = "ASC"
	case "desc":
		order = "DESC"
	default:
		return models.ListQuery{}, apperr.ErrInvalidSortOrder
	}

	return models.ListQuery{
		Page:      page,
		Limit:     limit,
		Offset:    (page - 1) * limit,
		Search:    strings.TrimSpace(q.Get("search")),
		SortBy:    column,
		SortOrder: order,
	}, nil
}

func intParam(q url.Values, key string, def int) (int, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewPagination считает метаданные страницы. Значения пересчитываются на каждый
// запрос, так как total меняется между запросами.
func NewPagination(page, limit int, total int64) models.Pagination {
	var totalPages int64
	if limit > 0 && total > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  int64(page) < totalPages,
		HasPrevPage:  page > 1,
	}
}
