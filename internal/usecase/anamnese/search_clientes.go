package anamnese

import (
	"context"
	"strings"

	"github.com/studioink/anamnese-api/internal/cpf"
	domain "github.com/studioink/anamnese-api/internal/domain/anamnese"
	"github.com/studioink/anamnese-api/internal/dto"
)

// ======================================================
// INPUT
// ======================================================

type SearchClientesInput struct {
	Query string
	Limit int
}

// ======================================================
// USE CASE
// ======================================================

type SearchClientes struct {
	repo domain.Repository
}

func NewSearchClientes(repo domain.Repository) *SearchClientes {
	return &SearchClientes{repo: repo}
}

const (
	searchDefaultLimit = 10
	searchMaxLimit     = 25
)

// ======================================================
// EXECUTE
// ======================================================

// Execute implementa o autocomplete: consulta com menos de 2 caracteres
// devolve vazio sem tocar no banco; consulta puramente numérica casa por
// CPF, as demais por nome (substring, caixa-insensível).
func (uc *SearchClientes) Execute(
	ctx context.Context,
	in SearchClientesInput,
) ([]dto.ClienteResumoDTO, error) {

	query := strings.TrimSpace(in.Query)
	if len([]rune(query)) < 2 {
		return []dto.ClienteResumoDTO{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	limit := in.Limit
	if limit <= 0 {
		limit = searchDefaultLimit
	}
	if limit > searchMaxLimit {
		limit = searchMaxLimit
	}

	cpfDigits := cpf.Normalize(query)

	params := domain.SearchParams{
		Term:  strings.ToLower(query),
		ByCPF: false,
		Limit: limit,
	}
	if isOnlyDigits(query) && len(cpfDigits) >= 3 {
		params.Term = cpfDigits
		params.ByCPF = true
	}

	fichas, err := uc.repo.SearchFichas(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ClienteResumoDTO, 0, len(fichas))
	for _, f := range fichas {
		items = append(items, dto.NewClienteResumo(f))
	}

	return items, nil
}

func isOnlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
