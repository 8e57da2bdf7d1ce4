package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	ucAppointment "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	Create *ucAppointment.Create
	Update *ucAppointment.Update
	Get    *ucAppointment.Get
	List   *ucAppointment.List
	Delete *ucAppointment.Delete
}

type AppointmentHandler struct {
	uc  AppointmentUseCases
	log *logger.Logger
}

func NewAppointmentHandler(uc AppointmentUseCases, log *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalServiceID string `json:"professionalServiceId" binding:"required,uuid"`
	ClientID              string `json:"clientId" binding:"required,uuid"`
	DateTime              string `json:"dateTime" binding:"required,datestring"`
	Observation           string `json:"observation" binding:"max=255"`
}

type UpdateAppointmentRequest struct {
	ProfessionalServiceID *string `json:"professionalServiceId" binding:"omitempty,uuid"`
	DateTime              *string `json:"dateTime" binding:"omitempty,datestring"`
	Status                *string `json:"status" binding:"omitempty,appointment_status"`
	Observation           *string `json:"observation" binding:"omitempty,max=255"`
}

type ListAppointmentsQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datestring"`
	EndDate   string `form:"end_date" binding:"omitempty,datestring"`
	Status    string `form:"status" binding:"omitempty,appointment_status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.Create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		ProfessionalServiceID: uuid.MustParse(req.ProfessionalServiceID),
		ClientID:              uuid.MustParse(req.ClientID),
		DateTime:              req.DateTime,
		Observation:           req.Observation,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	in := ucAppointment.UpdateInput{
		ID:          id,
		DateTime:    req.DateTime,
		Status:      req.Status,
		Observation: req.Observation,
	}
	if req.ProfessionalServiceID != nil {
		psID := uuid.MustParse(*req.ProfessionalServiceID)
		in.ProfessionalServiceID = &psID
	}

	ap, err := h.uc.Update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// LIST / GET / DELETE
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var q ListAppointmentsQuery
	if !bindQuery(c, &q) {
		return
	}

	list, err := h.uc.List.Execute(c.Request.Context(), ucAppointment.ListInput{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Status:    q.Status,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ap, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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
