package models

import "time"

// Documento aninhado dados_cliente (coluna jsonb).
type DadosCliente struct {
	Endereco        string          `json:"endereco"`
	RG              string          `json:"rg"`
	DataNascimento  string          `json:"dataNascimento"`
	Idade           string          `json:"idade"`
	ComoNosConheceu ComoNosConheceu `json:"comoNosConheceu"`
	Telefone        string          `json:"telefone"`
	Celular         string          `json:"celular"`
	Email           string          `json:"email"`
}

type ComoNosConheceu struct {
	Instagram bool   `json:"instagram"`
	Facebook  bool   `json:"facebook"`
	Outro     bool   `json:"outro"`
	Indicacao string `json:"indicacao"`
}

// Item sim/não da avaliação médica, com campo livre de especificação.
type RespostaSimNao struct {
	Sim         bool   `json:"sim"`
	Nao         bool   `json:"nao"`
	Especifique string `json:"especifique"`
}

type AvaliacaoMedica struct {
	TratamentoMedico            RespostaSimNao `json:"tratamentoMedico"`
	Diabetes                    RespostaSimNao `json:"diabetes"`
	CirurgiaRecente             RespostaSimNao `json:"cirurgiaRecente"`
	Alergia                     RespostaSimNao `json:"alergia"`
	ProblemaPeleCicatrizacao    RespostaSimNao `json:"problemaPeleCicatrizacao"`
	DepressaoPanicoAnsiedade    RespostaSimNao `json:"depressaoPanicoAnsiedade"`
	DoencaInfectocontagiosa     RespostaSimNao `json:"doencaInfectocontagiosa"`
	HistoricoConvulsaoEpilepsia RespostaSimNao `json:"historicoConvulsaoEpilepsia"`
}

type OutrasQuestoesMedicas struct {
	Cancer                bool `json:"cancer"`
	DisturbioCirculatorio bool `json:"disturbioCirculatorio"`
	UsoDrogas             bool `json:"usoDrogas"`
	EfeitoAlcool          bool `json:"efeitoAlcool"`
	DormiuUltimaNoite     bool `json:"dormiuUltimaNoite"`
	EmJejum               bool `json:"emJejum"`
	Cardiopatia           bool `json:"cardiopatia"`
	Hipertensao           bool `json:"hipertensao"`
	Hipotensao            bool `json:"hipotensao"`
	Marcapasso            bool `json:"marcapasso"`
	Hemofilia             bool `json:"hemofilia"`
	Hepatite              bool `json:"hepatite"`
	Anemia                bool `json:"anemia"`
	Queloide              bool `json:"queloide"`
	Vitiligo              bool `json:"vitiligo"`
	Gestante              bool `json:"gestante"`
	Amamentando           bool `json:"amamentando"`
}

// Documento aninhado avaliacao (coluna jsonb).
type Avaliacao struct {
	AvaliacaoMedica       AvaliacaoMedica       `json:"avaliacaoMedica"`
	OutrasQuestoesMedicas OutrasQuestoesMedicas `json:"outrasQuestoesMedicas"`
	OutroProblema         string                `json:"outroProblema"`
	TipoSanguineo         string                `json:"tipoSanguineo"`
}

type Procedimento struct {
	Local        string `json:"local"`
	Estilo       string `json:"estilo"`
	Observacoes  string `json:"observacoes"`
	Profissional string `json:"profissional"`
	Data         string `json:"data"`
	Valor        string `json:"valor"`
}

type Declaracoes struct {
	VeracidadeInformacoes bool `json:"veracidadeInformacoes"`
	SeguirCuidados        bool `json:"seguirCuidados"`
	PermanenciaTatuagem   bool `json:"permanenciaTatuagem"`
	CondicoesHigienicas   bool `json:"condicoesHigienicas"`
}

// Documento aninhado info_tattoo (coluna jsonb).
type InfoTattoo struct {
	Procedimento Procedimento `json:"procedimento"`
	Declaracoes  Declaracoes  `json:"declaracoes"`
}

// Ficha de anamnese preenchida pelo cliente. Registro imutável após a criação;
// CPF sempre armazenado só com dígitos (11).
type FichaAnamnese struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome string `gorm:"size:150;not null" json:"nome"`
	CPF  string `gorm:"column:cpf;size:11;not null;index" json:"cpf"`

	DadosCliente DadosCliente `gorm:"type:jsonb;serializer:json" json:"dadosCliente"`
	Avaliacao    Avaliacao    `gorm:"type:jsonb;serializer:json" json:"avaliacao"`
	InfoTattoo   InfoTattoo   `gorm:"column:info_tattoo;type:jsonb;serializer:json" json:"infoTattoo"`

	// "S" quando aceitou os termos e marcou todas as declarações, senão "N".
	Termos string `gorm:"size:1;not null;default:'N'" json:"termos"`

	DataPreenchimentoFicha time.Time `json:"dataPreenchimentoFicha"`

	ProfissionalID *uint         `gorm:"column:id_profissional" json:"professionalId,omitempty"`
	Profissional   *Profissional `gorm:"foreignKey:ProfissionalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FichaAnamnese) TableName() string {
	return "ficha_anamnese"
}
