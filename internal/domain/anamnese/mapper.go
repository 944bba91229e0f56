package anamnese

import (
	"strings"

	"github.com/studioink/anamnese-api/internal/cpf"
	"github.com/studioink/anamnese-api/internal/models"
	"github.com/studioink/anamnese-api/internal/timezone"
)

// ======================================================
// MAPPER (payload plano → documento do banco)
// ======================================================

// MapToStorage monta a ficha no formato persistido: nome aparado, CPF só
// com dígitos, documentos aninhados sempre presentes e termos derivado.
// A data de preenchimento é sempre o "agora" do servidor, nunca vem do
// cliente.
func MapToStorage(sub Submission, professionalID *uint) models.FichaAnamnese {
	ficha := models.FichaAnamnese{
		Nome: strings.TrimSpace(sub.Nome),
		CPF:  cpf.Normalize(sub.CPF),

		DadosCliente: models.DadosCliente{
			Endereco:       sub.Endereco,
			RG:             sub.RG,
			DataNascimento: sub.DataNascimento,
			Idade:          sub.Idade,
			Telefone:       sub.Telefone,
			Celular:        sub.Celular,
			Email:          sub.Email,
		},
		Avaliacao: models.Avaliacao{
			OutroProblema: sub.OutroProblema,
			TipoSanguineo: sub.TipoSanguineo,
		},

		Termos:                 "N",
		DataPreenchimentoFicha: timezone.Now(),
		ProfissionalID:         professionalID,
	}

	if sub.ComoNosConheceu != nil {
		ficha.DadosCliente.ComoNosConheceu = *sub.ComoNosConheceu
	}
	if sub.AvaliacaoMedica != nil {
		ficha.Avaliacao.AvaliacaoMedica = *sub.AvaliacaoMedica
	}
	if sub.OutrasQuestoesMedicas != nil {
		ficha.Avaliacao.OutrasQuestoesMedicas = *sub.OutrasQuestoesMedicas
	}
	if sub.Procedimento != nil {
		ficha.InfoTattoo.Procedimento = *sub.Procedimento
	}
	if sub.Declaracoes != nil {
		ficha.InfoTattoo.Declaracoes = *sub.Declaracoes
	}

	if sub.TermsAccepted() {
		ficha.Termos = "S"
	}

	return ficha
}
