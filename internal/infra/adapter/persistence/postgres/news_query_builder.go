package postgres

import (
	"fmt"
	"strings"

	"news-portal/internal/repository"
)

// NewsQueryBuilder builds the WHERE clause shared by the filtered
// listing and its COUNT query, so the two can never disagree on which
// rows match.
type NewsQueryBuilder struct{}

// NewNewsQueryBuilder creates a new query builder for news filters.
func NewNewsQueryBuilder() *NewsQueryBuilder {
	return &NewsQueryBuilder{}
}

// BuildWhereClause returns the WHERE clause (or "" when no filter is
// set) and the positional arguments for the given filters. tableAlias
// prefixes column references when the query joins other tables; pass ""
// for unaliased queries.
func (qb *NewsQueryBuilder) BuildWhereClause(filters repository.NewsFilters, tableAlias string) (string, []any) {
	prefix := ""
	if tableAlias != "" {
		prefix = tableAlias + "."
	}

	var conditions []string
	var args []any
	param := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("%sstatus = $%d", prefix, param))
		args = append(args, string(filters.Status))
		param++
	}

	if filters.CategoryID != 0 {
		conditions = append(conditions, fmt.Sprintf("%scategory_id = $%d", prefix, param))
		args = append(args, filters.CategoryID)
		param++
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(%stitle ILIKE $%d OR %ssummary ILIKE $%d)",
			prefix, param, prefix, param+1))
		pattern := "%" + filters.Search + "%"
		args = append(args, pattern, pattern)
		param += 2
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
