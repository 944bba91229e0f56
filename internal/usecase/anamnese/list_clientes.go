package anamnese

import (
	"context"

	domain "github.com/studioink/anamnese-api/internal/domain/anamnese"
	"github.com/studioink/anamnese-api/internal/dto"
)

// ======================================================
// INPUT
// ======================================================

type ListClientesInput struct {
	Page           int
	Limit          int
	ProfissionalID *uint
}

type ListClientesResult struct {
	Items      []dto.ClienteResumoDTO
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ======================================================
// USE CASE
// ======================================================

type ListClientes struct {
	repo domain.Repository
}

func NewListClientes(repo domain.Repository) *ListClientes {
	return &ListClientes{repo: repo}
}

var allowedLimits = map[int]bool{20: true, 50: true, 100: true}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ListClientes) Execute(
	ctx context.Context,
	in ListClientesInput,
) (*ListClientesResult, error) {

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	page := in.Page
	if page <= 0 {
		page = 1
	}

	limit := in.Limit
	if !allowedLimits[limit] {
		limit = 20
	}

	offset := (page - 1) * limit

	fichas, total, err := uc.repo.ListFichas(ctx, in.ProfissionalID, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ClienteResumoDTO, 0, len(fichas))
	for _, f := range fichas {
		items = append(items, dto.NewClienteResumo(f))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ListClientesResult{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
