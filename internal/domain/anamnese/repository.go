package anamnese

import (
	"context"

	"github.com/studioink/anamnese-api/internal/models"
)

// SearchParams descreve a consulta de autocomplete já interpretada:
// o termo e se ele deve casar contra o CPF (consulta puramente numérica)
// ou contra o nome.
type SearchParams struct {
	Term  string
	ByCPF bool
	Limit int
}

type Repository interface {
	// -------- Profissional --------
	GetProfissionalByID(
		ctx context.Context,
		id uint,
	) (*models.Profissional, error)

	// -------- Ficha (criação / duplicidade) --------

	// AssertNoDuplicate falha com httperr.ErrBusiness(CodeDuplicateCPF)
	// quando já existe ficha para o CPF no mesmo escopo de profissional
	// (escopo nulo só casa com escopo nulo).
	AssertNoDuplicate(
		ctx context.Context,
		cpfDigits string,
		profissionalID *uint,
	) error

	// CreateFicha insere a ficha. Violação do índice único parcial de
	// (cpf, id_profissional) também vira CodeDuplicateCPF.
	CreateFicha(
		ctx context.Context,
		ficha *models.FichaAnamnese,
	) error

	// -------- Ficha (consulta) --------
	GetFichaByCPF(
		ctx context.Context,
		cpfDigits string,
	) (*models.FichaAnamnese, error)

	GetFichaByID(
		ctx context.Context,
		id uint,
	) (*models.FichaAnamnese, error)

	ListFichas(
		ctx context.Context,
		profissionalID *uint,
		offset int,
		limit int,
	) ([]models.FichaAnamnese, int64, error)

	SearchFichas(
		ctx context.Context,
		params SearchParams,
	) ([]models.FichaAnamnese, error)
}
