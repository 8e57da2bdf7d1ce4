package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/client"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	ucClient "github.com/BruksfildServices01/agenda-api/internal/usecase/client"
)

type ClientUseCases struct {
	Create *ucClient.Create
	Update *ucClient.Update
	Get    *ucClient.Get
	List   *ucClient.List
	Delete *ucClient.Delete
}

type ClientHandler struct {
	uc  ClientUseCases
	log *logger.Logger
}

func NewClientHandler(uc ClientUseCases, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	UserID    string  `json:"id_user" binding:"required,uuid"`
	Phone     string  `json:"phone" binding:"required,min=10,max=11"`
	BirthDate string  `json:"birthDate" binding:"required,datestring"`
	Gender    string  `json:"gender" binding:"required,oneof=M F O"`
	Photo     *string `json:"photo" binding:"omitempty,imagedata|imageurl"`
}

type UpdateClientRequest struct {
	Phone     *string `json:"phone" binding:"omitempty,min=10,max=11"`
	BirthDate *string `json:"birthDate" binding:"omitempty,datestring"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=M F O"`
	Photo     *string `json:"photo" binding:"omitempty,imagedata|imageurl"`
}

type ListClientsQuery struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
	PageQuery
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.uc.Create.Execute(c.Request.Context(), ucClient.CreateInput{
		UserID:    uuid.MustParse(req.UserID),
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
		Photo:     req.Photo,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.uc.Update.Execute(c.Request.Context(), ucClient.UpdateInput{
		ID:        id,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
		Photo:     req.Photo,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	out, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ClientHandler) List(c *gin.Context) {
	var q ListClientsQuery
	if !bindQuery(c, &q) {
		return
	}

	params := q.params()
	list, total, err := h.uc.List.Execute(c.Request.Context(), domain.Filter{
		Name:   q.Name,
		Email:  q.Email,
		Phone:  q.Phone,
		Params: params,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Paged(c, httpresp.NewPage(list, total, params))
}

func (h *ClientHandler) Delete(c *gin.Context) {
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
