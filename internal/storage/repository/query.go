package repository

import (
	"fmt"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

const (
	servicesTable  = "services"
	productsTable  = "products"
	serviceColumns = "id, name, description, price, duration_minutes, created_at"
	productColumns = "id, name, description, price, updated_at"
)

// searchClause строит условие поиска по имени и описанию. Один и тот же
// шаблон используется и в COUNT, и в выборке, поэтому total совпадает
// с содержимым страниц.
func searchClause(q models.ListQuery) (string, []any) {
	if q.Search == "" {
		return "", nil
	}
	return " WHERE name LIKE $1 OR description LIKE $1", []any{q.Pattern()}
}

func countStatement(table string, q models.ListQuery) (string, []any) {
	where, args := searchClause(q)
	return "SELECT COUNT(*) FROM " + table + where, args
}

// listStatement строит выборку страницы. Столбец сортировки ещё раз
// сверяется с белым списком: в текст запроса попадает только литерал.
func listStatement(table, columns string, allowed validation.SortSpec, q models.ListQuery) (string, []any, error) {
	column, ok := allowed.Column(q.SortBy)
	if !ok {
		return "", nil, apperr.ErrInvalidSortColumn
	}
	direction := "ASC"
	if q.SortOrder == "DESC" {
		direction = "DESC"
	}
	order := column + " " + direction
	if column != "id" {
		order += ", id " + direction
	}

	where, args := searchClause(q)
	n := len(args)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		columns, table, where, order, n+1, n+2)
	return query, append(args, q.Limit, q.Offset), nil
}
