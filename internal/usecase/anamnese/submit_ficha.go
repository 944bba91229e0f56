package anamnese

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/studioink/anamnese-api/internal/audit"
	"github.com/studioink/anamnese-api/internal/cpf"
	domain "github.com/studioink/anamnese-api/internal/domain/anamnese"
	"github.com/studioink/anamnese-api/internal/httperr"
)

const storeTimeout = 5 * time.Second

// ======================================================
// INPUT
// ======================================================

type SubmitFichaInput struct {
	Submission domain.Submission

	// Id extraído do bearer token, quando houver. Token inválido já
	// chega aqui como nil: ausência de autenticação não é erro.
	AuthenticatedID *uint
}

type SubmitFichaResult struct {
	ID             uint  `json:"id"`
	ProfissionalID *uint `json:"professionalId,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// AuditDispatcher é o que o fluxo precisa da auditoria; *audit.Dispatcher
// satisfaz.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type SubmitFicha struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewSubmitFicha(
	repo domain.Repository,
	audit AuditDispatcher,
) *SubmitFicha {
	return &SubmitFicha{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitFicha) Execute(
	ctx context.Context,
	in SubmitFichaInput,
) (*SubmitFichaResult, error) {

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	sub := in.Submission

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if strings.TrimSpace(sub.Nome) == "" || strings.TrimSpace(sub.CPF) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingFields)
	}

	// --------------------------------------------------
	// 2️⃣ CPF válido
	// --------------------------------------------------
	if !cpf.IsValid(sub.CPF) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCPF)
	}

	// --------------------------------------------------
	// 3️⃣ Resolução do profissional
	// --------------------------------------------------
	resolved, err := uc.resolveProfissional(ctx, sub, in.AuthenticatedID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Mapeamento payload → ficha
	// --------------------------------------------------
	ficha := domain.MapToStorage(sub, resolved)

	// --------------------------------------------------
	// 5️⃣ Duplicidade por (cpf, profissional)
	// --------------------------------------------------
	if err := uc.repo.AssertNoDuplicate(ctx, ficha.CPF, resolved); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Inserção (23505 também vira duplicata)
	// --------------------------------------------------
	if err := uc.repo.CreateFicha(ctx, &ficha); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfissionalID: resolved,
		Action:         "ficha_criada",
		Entity:         "ficha_anamnese",
		EntityID:       &ficha.ID,
	})

	return &SubmitFichaResult{
		ID:             ficha.ID,
		ProfissionalID: resolved,
	}, nil
}

// resolveProfissional aplica a precedência do fluxo de submissão:
// id explícito no payload precisa existir e bater com o autenticado;
// sem id explícito vale o autenticado; sem nenhum, ficha sem atribuição.
func (uc *SubmitFicha) resolveProfissional(
	ctx context.Context,
	sub domain.Submission,
	authenticatedID *uint,
) (*uint, error) {

	explicit := sub.PayloadProfessionalID()
	if explicit == nil {
		return authenticatedID, nil
	}

	if _, err := uc.repo.GetProfissionalByID(ctx, *explicit); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeUnknownProfessional)
		}
		return nil, err
	}

	if authenticatedID != nil && *authenticatedID != *explicit {
		return nil, httperr.ErrBusiness(httperr.CodeProfessionalMismatch)
	}

	return explicit, nil
}
