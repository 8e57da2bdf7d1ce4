package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

// DefaultMaxBodyBytes cobre uma foto em data URL com folga.
const DefaultMaxBodyBytes int64 = 8 << 20

// BodyLimit recusa corpos maiores que limit. Content-Length declarado acima do
// limite volta 413 na hora; corpos sem tamanho conhecido são cortados na
// leitura e o bind falha.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, httperr.HTTPError{
				Code:    "payload_too_large",
				Message: "Corpo da requisição excede o tamanho permitido",
			})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
