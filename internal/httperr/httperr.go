package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/logger"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

type ValidationResponse struct {
	Error []FieldError `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Validation(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusBadRequest, ValidationResponse{Error: fields})
}

func Unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{Code: code, Message: message})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond traduz qualquer erro em resposta HTTP. Erros de domínio usam a
// tabela Kind -> status; o resto vira 500 sem detalhes para o cliente.
func Respond(c *gin.Context, log *logger.Logger, err error) {
	if de, ok := As(err); ok && de.Kind != KindInternal {
		Write(c, de.Kind.Status(), de.Code, de.Message)
		return
	}

	if log != nil {
		log.Error("unexpected error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	Internal(c, "internal_error", "Ocorreu um erro inesperado")
}
