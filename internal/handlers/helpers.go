package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/domain/pagination"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/validators"
)

// ======================================================
// REQUESTS COMUNS
// ======================================================

type idParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type PageQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"perPage" binding:"omitempty,min=1,max=100"`
}

func (q PageQuery) params() pagination.Params {
	return pagination.Params{Page: q.Page, PerPage: q.PerPage}.Normalize()
}

// ======================================================
// BINDING
// ======================================================

// Cada bind responde 400 com {"error":[{message, field}]} e devolve false
// quando a entrada é inválida.

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Validation(c, validators.Fields(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.Validation(c, validators.Fields(err))
		return false
	}
	return true
}

func bindID(c *gin.Context) (uuid.UUID, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		httperr.Validation(c, validators.Fields(err))
		return uuid.Nil, false
	}
	return uuid.MustParse(p.ID), true
}
