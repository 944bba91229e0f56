package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studioink/anamnese-api/internal/models"
	"github.com/studioink/anamnese-api/internal/token"
)

const ContextProfissionalID = "profissionalID"

// OptionalAuth decodifica o bearer token (ou o cookie profissional_token)
// e, se ele referenciar um profissional existente, guarda o id no contexto.
// Token ausente, malformado ou órfão nunca bloqueia a requisição: o fluxo
// segue como não autenticado.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := BearerToken(c)
		if raw == "" {
			c.Next()
			return
		}

		claims, err := token.Decode(raw)
		if err != nil {
			c.Next()
			return
		}

		var prof models.Profissional
		if err := db.First(&prof, claims.ID).Error; err != nil {
			c.Next()
			return
		}

		c.Set(ContextProfissionalID, prof.ID)
		c.Next()
	}
}

// BearerToken extrai o token bruto do header Authorization ou do cookie
// legado profissional_token.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie("profissional_token"); err == nil {
		return cookie
	}

	return ""
}

// AuthenticatedProfissionalID devolve o id autenticado, se houver.
func AuthenticatedProfissionalID(c *gin.Context) *uint {
	if v, ok := c.Get(ContextProfissionalID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
