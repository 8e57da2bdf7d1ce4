package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/domain/pagination"
)

type likeTerm struct {
	expr  string
	value string
}

// applySearch agrupa os termos não vazios em (a OR b OR c), comparando
// em minúsculas.
func applySearch(q, base *gorm.DB, terms ...likeTerm) *gorm.DB {
	var group *gorm.DB
	for _, t := range terms {
		v := strings.TrimSpace(t.value)
		if v == "" {
			continue
		}
		pattern := "%" + strings.ToLower(v) + "%"
		if group == nil {
			group = base.Where(t.expr, pattern)
		} else {
			group = group.Or(t.expr, pattern)
		}
	}
	if group == nil {
		return q
	}
	return q.Where(group)
}

func paginate(q *gorm.DB, p pagination.Params) *gorm.DB {
	p = p.Normalize()
	return q.Limit(p.PerPage).Offset(p.Offset())
}

// userColumnIn filtra por uma coluna de users via subconsulta,
// evitando ambiguidade de colunas em JOINs.
func userColumnIn(column string) string {
	return "user_id IN (SELECT id FROM users WHERE LOWER(" + column + ") LIKE ?)"
}
