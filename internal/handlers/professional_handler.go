package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/professional"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/validators"
	ucProfessional "github.com/BruksfildServices01/agenda-api/internal/usecase/professional"
)

// ======================================================
// HANDLER
// ======================================================

type ProfessionalUseCases struct {
	Create        *ucProfessional.Create
	Update        *ucProfessional.Update
	Get           *ucProfessional.Get
	List          *ucProfessional.List
	Delete        *ucProfessional.Delete
	ListServices  *ucProfessional.ListServices
	AddService    *ucProfessional.AddService
	RemoveService *ucProfessional.RemoveService
}

type ProfessionalHandler struct {
	uc  ProfessionalUseCases
	log *logger.Logger
}

func NewProfessionalHandler(uc ProfessionalUseCases, log *logger.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{uc: uc, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProfessionalRequest struct {
	UserID    string  `json:"id_user" binding:"required,uuid"`
	Specialty string  `json:"specialty" binding:"required,min=2"`
	Photo     *string `json:"photo" binding:"omitempty,imagedata|imageurl"`
}

type UpdateProfessionalRequest struct {
	Specialty *string `json:"specialty" binding:"omitempty,min=2"`
	Photo     *string `json:"photo" binding:"omitempty,imagedata|imageurl"`
}

type ListProfessionalsQuery struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	Specialty string `form:"specialty"`
	Services  bool   `form:"services"`
	PageQuery
}

type professionalServiceParams struct {
	ID        string `uri:"id" binding:"required,uuid"`
	ServiceID string `uri:"id_service" binding:"required,uuid"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.uc.Create.Execute(c.Request.Context(), ucProfessional.CreateInput{
		UserID:    uuid.MustParse(req.UserID),
		Specialty: req.Specialty,
		Photo:     req.Photo,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.uc.Update.Execute(c.Request.Context(), ucProfessional.UpdateInput{
		ID:        id,
		Specialty: req.Specialty,
		Photo:     req.Photo,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	p, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	var q ListProfessionalsQuery
	if !bindQuery(c, &q) {
		return
	}

	params := q.params()
	list, total, err := h.uc.List.Execute(c.Request.Context(), domain.Filter{
		Name:         q.Name,
		Email:        q.Email,
		Specialty:    q.Specialty,
		WithServices: q.Services,
		Params:       params,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Paged(c, httpresp.NewPage(list, total, params))
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
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

// ======================================================
// OFFERED SERVICES
// ======================================================

func (h *ProfessionalHandler) ListServices(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	list, err := h.uc.ListServices.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ProfessionalHandler) bindLink(c *gin.Context) (ucProfessional.LinkInput, bool) {
	var p professionalServiceParams
	if err := c.ShouldBindUri(&p); err != nil {
		httperr.Validation(c, validators.Fields(err))
		return ucProfessional.LinkInput{}, false
	}
	return ucProfessional.LinkInput{
		ProfessionalID: uuid.MustParse(p.ID),
		ServiceID:      uuid.MustParse(p.ServiceID),
	}, true
}

func (h *ProfessionalHandler) AddService(c *gin.Context) {
	in, ok := h.bindLink(c)
	if !ok {
		return
	}

	ps, err := h.uc.AddService.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, ps)
}

func (h *ProfessionalHandler) RemoveService(c *gin.Context) {
	in, ok := h.bindLink(c)
	if !ok {
		return
	}

	if err := h.uc.RemoveService.Execute(c.Request.Context(), in); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
