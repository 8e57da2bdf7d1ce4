package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/service"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	ucService "github.com/BruksfildServices01/agenda-api/internal/usecase/service"
)

type ServiceUseCases struct {
	Create *ucService.Create
	Update *ucService.Update
	Get    *ucService.Get
	List   *ucService.List
	Delete *ucService.Delete
}

type ServiceHandler struct {
	uc  ServiceUseCases
	log *logger.Logger
}

func NewServiceHandler(uc ServiceUseCases, log *logger.Logger) *ServiceHandler {
	return &ServiceHandler{uc: uc, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description" binding:"required,min=2"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	Price       int64  `json:"price" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Description *string `json:"description" binding:"omitempty,min=2"`
	Duration    *int    `json:"duration" binding:"omitempty,gt=0"`
	Price       *int64  `json:"price" binding:"omitempty,gt=0"`
}

type ListServicesQuery struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	PageQuery
}

// ======================================================
// CRUD
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.uc.Create.Execute(c.Request.Context(), ucService.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.uc.Update.Execute(c.Request.Context(), ucService.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	s, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) List(c *gin.Context) {
	var q ListServicesQuery
	if !bindQuery(c, &q) {
		return
	}

	params := q.params()
	list, total, err := h.uc.List.Execute(c.Request.Context(), domain.Filter{
		Name:        q.Name,
		Description: q.Description,
		Params:      params,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Paged(c, httpresp.NewPage(list, total, params))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
