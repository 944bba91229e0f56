package anamnese

import "github.com/studioink/anamnese-api/internal/models"

// ======================================================
// SUBMISSION (payload plano vindo do formulário)
// ======================================================

// Submission é a fronteira única de parse do formulário de anamnese.
// Campos aninhados são ponteiros: ausentes no JSON viram nil e o mapper
// os materializa como documento vazio, nunca null no banco.
type Submission struct {
	Nome string `json:"nome"`
	CPF  string `json:"cpf"`

	Endereco        string                  `json:"endereco"`
	RG              string                  `json:"rg"`
	DataNascimento  string                  `json:"dataNascimento"`
	Idade           string                  `json:"idade"`
	ComoNosConheceu *models.ComoNosConheceu `json:"comoNosConheceu"`
	Telefone        string                  `json:"telefone"`
	Celular         string                  `json:"celular"`
	Email           string                  `json:"email"`

	AvaliacaoMedica       *models.AvaliacaoMedica       `json:"avaliacaoMedica"`
	OutrasQuestoesMedicas *models.OutrasQuestoesMedicas `json:"outrasQuestoesMedicas"`
	OutroProblema         string                        `json:"outroProblema"`
	TipoSanguineo         string                        `json:"tipoSanguineo"`

	Declaracoes  *models.Declaracoes `json:"declaracoes"`
	AceiteTermos bool                `json:"aceiteTermos"`

	Procedimento *models.Procedimento `json:"procedimento"`

	// Atribuição explícita no payload; valores não positivos são
	// tratados como ausentes pela coerção, não como erro.
	ProfessionalID *int64 `json:"professionalId"`
}

// PayloadProfessionalID coage o professionalId do payload: inteiro positivo
// ou nada.
func (s Submission) PayloadProfessionalID() *uint {
	if s.ProfessionalID == nil || *s.ProfessionalID <= 0 {
		return nil
	}
	id := uint(*s.ProfessionalID)
	return &id
}

// TermsAccepted decide o campo termos: "S" exige aceite geral E todas as
// quatro declarações marcadas.
func (s Submission) TermsAccepted() bool {
	if !s.AceiteTermos || s.Declaracoes == nil {
		return false
	}
	d := s.Declaracoes
	return d.VeracidadeInformacoes &&
		d.SeguirCuidados &&
		d.PermanenciaTatuagem &&
		d.CondicoesHigienicas
}
