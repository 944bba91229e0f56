package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope padrão de sucesso da API: {success, message, data?}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedEnvelope struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// OKNull devolve sucesso com data explicitamente nula (consulta sem
// resultado não é erro).
func OKNull(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    nil,
	})
}

func Paginated(c *gin.Context, message string, data any, p Pagination) {
	c.JSON(http.StatusOK, PaginatedEnvelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: p,
	})
}
