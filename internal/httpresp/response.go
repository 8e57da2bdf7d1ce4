package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/domain/pagination"
)

// Page é o envelope das listagens paginadas.
type Page[T any] struct {
	Data        []T   `json:"data"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, data)
}

func Paged[T any](c *gin.Context, p Page[T]) {
	if p.Data == nil {
		p.Data = []T{}
	}
	c.JSON(http.StatusOK, p)
}

// NewPage monta o envelope a partir do total e dos parâmetros usados na
// consulta.
func NewPage[T any](data []T, total int64, p pagination.Params) Page[T] {
	p = p.Normalize()
	return Page[T]{
		Data:        data,
		TotalItems:  total,
		TotalPages:  pagination.TotalPages(total, p.PerPage),
		CurrentPage: p.Page,
	}
}
