package models

// ListQuery проверенные параметры списка. SortBy и SortOrder всегда
// литералы из белого списка, а не строки из запроса.
type ListQuery struct {
	Page      int
	Limit     int
	Offset    int
	Search    string
	SortBy    string
	SortOrder string // "ASC" или "DESC"
}

// Pattern возвращает шаблон LIKE для поиска.
func (q ListQuery) Pattern() string {
	return "%" + q.Search + "%"
}

// Pagination метаданные страницы в ответе списка.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// Sort параметры сортировки в ответе списка.
type Sort struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}
