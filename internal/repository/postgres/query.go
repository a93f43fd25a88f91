package postgres

import (
	"fmt"
	"strings"

	"leadflow-crm/internal/entities"
)

// leadQuery is the SQL-side rendering of a normalized lead filter.
type leadQuery struct {
	where   string // empty or "WHERE ..."
	args    []any
	orderBy string
	limit   int
	offset  int
}

// buildLeadQuery translates a filter into WHERE/ORDER BY fragments with
// positional args. Pure function of its input. Every sort order ends with
// "id ASC" so rows with equal keys page deterministically.
func buildLeadQuery(f entities.LeadFilter) leadQuery {
	f = f.Normalized()

	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Source != "" {
		args = append(args, string(f.Source))
		conds = append(conds, fmt.Sprintf("source = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR company ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var orderBy string
	switch f.Sort {
	case entities.SortOldest:
		orderBy = "ORDER BY created_at ASC, id ASC"
	case entities.SortName:
		orderBy = "ORDER BY name ASC, id ASC"
	default:
		orderBy = "ORDER BY created_at DESC, id ASC"
	}

	return leadQuery{
		where:   where,
		args:    args,
		orderBy: orderBy,
		limit:   f.Limit,
		offset:  (f.Page - 1) * f.Limit,
	}
}

// escapeLike neutralizes LIKE metacharacters so search is a literal
// substring match.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
