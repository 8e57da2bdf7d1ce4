package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
	log  *logger.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location, log *logger.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc, log: log}
}

type ListAuditLogsQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
	From   string `form:"from" binding:"omitempty,datestring"`
	To     string `form:"to" binding:"omitempty,datestring"`
	PageQuery
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var req ListAuditLogsQuery
	if !bindQuery(c, &req) {
		return
	}

	f, err := h.filter(req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Paged(c, httpresp.NewPage(logs, total, f.Params))
}

// filter converte a query em audit.Filter; "to" só com data cobre o dia.
func (h *AuditLogsHandler) filter(req ListAuditLogsQuery) (audit.Filter, error) {
	f := audit.Filter{
		Action: req.Action,
		Entity: req.Entity,
		Params: req.params(),
	}

	if req.UserID != "" {
		id := uuid.MustParse(req.UserID)
		f.UserID = &id
	}

	if req.From != "" {
		from, _, err := timezone.Parse(req.From, h.loc)
		if err != nil {
			return f, httperr.ErrInvalidDate
		}
		f.From = &from
	}

	if req.To != "" {
		to, dateOnly, err := timezone.Parse(req.To, h.loc)
		if err != nil {
			return f, httperr.ErrInvalidDate
		}
		if dateOnly {
			to = timezone.EndOfDay(to)
		}
		f.To = &to
	}

	return f, nil
}
