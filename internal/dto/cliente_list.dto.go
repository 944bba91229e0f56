package dto

import "github.com/studioink/anamnese-api/internal/models"

// ClienteResumoDTO é a projeção usada na listagem e no autocomplete:
// os campos de contato saem do documento dados_cliente.
type ClienteResumoDTO struct {
	ID             uint    `json:"id"`
	Nome           string  `json:"nome"`
	CPF            string  `json:"cpf"`
	Email          *string `json:"email"`
	Celular        *string `json:"celular"`
	DataNascimento *string `json:"data_nascimento"`
}

func NewClienteResumo(f models.FichaAnamnese) ClienteResumoDTO {
	return ClienteResumoDTO{
		ID:             f.ID,
		Nome:           f.Nome,
		CPF:            f.CPF,
		Email:          nullable(f.DadosCliente.Email),
		Celular:        nullable(f.DadosCliente.Celular),
		DataNascimento: nullable(f.DadosCliente.DataNascimento),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
