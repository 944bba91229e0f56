package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/studioink/anamnese-api/internal/cache"
	"github.com/studioink/anamnese-api/internal/cpf"
	domain "github.com/studioink/anamnese-api/internal/domain/anamnese"
	"github.com/studioink/anamnese-api/internal/httperr"
	"github.com/studioink/anamnese-api/internal/httpresp"
	"github.com/studioink/anamnese-api/internal/middleware"
	"github.com/studioink/anamnese-api/internal/models"
	ucAnamnese "github.com/studioink/anamnese-api/internal/usecase/anamnese"
)

// ======================================================
// HANDLER
// ======================================================

type ClienteHandler struct {
	repo     domain.Repository
	cache    *cache.Cache
	listUC   *ucAnamnese.ListClientes
	searchUC *ucAnamnese.SearchClientes
}

func NewClienteHandler(
	repo domain.Repository,
	cc *cache.Cache,
	listUC *ucAnamnese.ListClientes,
	searchUC *ucAnamnese.SearchClientes,
) *ClienteHandler {
	return &ClienteHandler{
		repo:     repo,
		cache:    cc,
		listUC:   listUC,
		searchUC: searchUC,
	}
}

// ======================================================
// GET /api/clients
// ======================================================

// GetOrList despacha pela query string: cpf= ou id= viram consulta
// pontual; sem eles a rota é a listagem paginada.
func (h *ClienteHandler) GetOrList(c *gin.Context) {
	if cpfParam := c.Query("cpf"); cpfParam != "" {
		h.getByCPF(c, cpfParam)
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		h.getByID(c, idParam)
		return
	}

	h.list(c)
}

func (h *ClienteHandler) getByCPF(c *gin.Context, raw string) {
	cpfDigits := cpf.Normalize(raw)
	if cpfDigits == "" {
		httperr.BadRequest(c, "CPF é obrigatório")
		return
	}

	// Fichas são imutáveis: cache-aside simples, só TTL.
	cacheKey := "cliente:cpf:" + cpfDigits
	if cached, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
		var ficha models.FichaAnamnese
		if err := json.Unmarshal([]byte(cached), &ficha); err == nil {
			httpresp.OK(c, "Cliente encontrado com sucesso!", ficha)
			return
		}
	}

	ficha, err := h.repo.GetFichaByCPF(c.Request.Context(), cpfDigits)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.OKNull(c, "Cliente não encontrado")
			return
		}
		logrus.WithError(err).Error("erro ao buscar cliente por cpf")
		httperr.Internal(c, "Erro ao buscar cliente.")
		return
	}

	if b, err := json.Marshal(ficha); err == nil {
		h.cache.Set(c.Request.Context(), cacheKey, string(b), cache.DefaultTTL)
	}

	httpresp.OK(c, "Cliente encontrado com sucesso!", ficha)
}

func (h *ClienteHandler) getByID(c *gin.Context, raw string) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Id inválido")
		return
	}

	ficha, err := h.repo.GetFichaByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.OKNull(c, "Cliente não encontrado")
			return
		}
		logrus.WithError(err).Error("erro ao buscar cliente por id")
		httperr.Internal(c, "Erro ao buscar cliente.")
		return
	}

	httpresp.OK(c, "Cliente encontrado com sucesso!", ficha)
}

// ======================================================
// LISTAGEM PAGINADA
// ======================================================

func (h *ClienteHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	// Escopo: professionalId explícito na query ou o profissional
	// autenticado; sem nenhum dos dois a listagem é global.
	scope := middleware.AuthenticatedProfissionalID(c)
	if pidParam := c.Query("professionalId"); pidParam != "" {
		pid, err := strconv.ParseUint(pidParam, 10, 64)
		if err != nil || pid == 0 {
			httperr.BadRequest(c, "professionalId inválido")
			return
		}
		id := uint(pid)
		scope = &id
	}

	result, err := h.listUC.Execute(
		c.Request.Context(),
		ucAnamnese.ListClientesInput{
			Page:           page,
			Limit:          limit,
			ProfissionalID: scope,
		},
	)
	if err != nil {
		logrus.WithError(err).Error("erro ao listar clientes")
		httperr.Internal(c, "Erro ao listar clientes.")
		return
	}

	message := "Clientes listados com sucesso!"
	if result.Total == 0 {
		message = "Nenhum cliente cadastrado"
	}

	httpresp.Paginated(c, message, result.Items, httpresp.Pagination{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// ======================================================
// GET /api/clients/search (autocomplete)
// ======================================================

func (h *ClienteHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := h.searchUC.Execute(
		c.Request.Context(),
		ucAnamnese.SearchClientesInput{
			Query: c.Query("q"),
			Limit: limit,
		},
	)
	if err != nil {
		logrus.WithError(err).Error("erro na busca de clientes")
		httperr.Internal(c, "Erro ao buscar clientes.")
		return
	}

	message := "Clientes encontrados com sucesso!"
	if len(items) == 0 {
		message = "Nenhum cliente encontrado"
	}

	httpresp.OK(c, message, items)
}
