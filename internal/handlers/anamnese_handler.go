package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/studioink/anamnese-api/internal/config"
	domain "github.com/studioink/anamnese-api/internal/domain/anamnese"
	"github.com/studioink/anamnese-api/internal/httperr"
	"github.com/studioink/anamnese-api/internal/httpresp"
	"github.com/studioink/anamnese-api/internal/middleware"
	ucAnamnese "github.com/studioink/anamnese-api/internal/usecase/anamnese"
)

// ======================================================
// HANDLER
// ======================================================

type AnamneseHandler struct {
	submitUC *ucAnamnese.SubmitFicha
	config   *config.Config
}

func NewAnamneseHandler(
	submitUC *ucAnamnese.SubmitFicha,
	cfg *config.Config,
) *AnamneseHandler {
	return &AnamneseHandler{
		submitUC: submitUC,
		config:   cfg,
	}
}

// ======================================================
// SUBMIT
// ======================================================

func (h *AnamneseHandler) Submit(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	result, err := h.submitUC.Execute(
		c.Request.Context(),
		ucAnamnese.SubmitFichaInput{
			Submission:      sub,
			AuthenticatedID: middleware.AuthenticatedProfissionalID(c),
		},
	)

	if err != nil {
		h.mapSubmitError(c, err)
		return
	}

	httpresp.Created(c, "Ficha de anamnese salva com sucesso!", result)
}

func (h *AnamneseHandler) mapSubmitError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeMissingFields):
		httperr.BadRequest(c, "Nome e CPF são obrigatórios")

	case httperr.IsBusiness(err, httperr.CodeInvalidCPF):
		httperr.BadRequest(c, "CPF inválido")

	case httperr.IsBusiness(err, httperr.CodeUnknownProfessional):
		httperr.BadRequest(c, "Profissional não encontrado")

	case httperr.IsBusiness(err, httperr.CodeProfessionalMismatch):
		httperr.Forbidden(c, "Profissional informado não confere com o autenticado")

	case httperr.IsBusiness(err, httperr.CodeDuplicateCPF):
		httperr.BadRequest(c, "Já existe uma ficha de anamnese preenchida para este CPF")

	default:
		logrus.WithError(err).Error("erro ao salvar ficha de anamnese")

		msg := "Erro ao salvar a ficha. Tente novamente."
		if !h.config.IsProduction() {
			msg = msg + " (" + err.Error() + ")"
		}
		httperr.Internal(c, msg)
	}
}
