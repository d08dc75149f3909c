package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader es la cabecera estándar para propagar el id de petición.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey es la clave bajo la que se guarda en el contexto de gin.
	RequestIDKey = "request_id"
)

// RequestID garantiza que toda petición lleve un id de petición:
// reutiliza el de la cabecera entrante o genera un UUID nuevo, y lo
// devuelve también en la respuesta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
