package anamnese

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/studioink/anamnese-api/internal/audit"
	domain "github.com/studioink/anamnese-api/internal/domain/anamnese"
	"github.com/studioink/anamnese-api/internal/httperr"
	"github.com/studioink/anamnese-api/internal/models"
)

// ------------------------------------------------------
// Stubs
// ------------------------------------------------------

type stubRepo struct {
	profissionais map[uint]*models.Profissional
	fichas        []models.FichaAnamnese

	listResult []models.FichaAnamnese
	listTotal  int64
	listScope  *uint
	listOffset int
	listLimit  int
	listCalled bool

	searchResult []models.FichaAnamnese
	searchParams domain.SearchParams
	searchCalled bool

	nextID uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{profissionais: map[uint]*models.Profissional{}}
}

func (s *stubRepo) GetProfissionalByID(_ context.Context, id uint) (*models.Profissional, error) {
	if p, ok := s.profissionais[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func sameScope(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (s *stubRepo) AssertNoDuplicate(_ context.Context, cpfDigits string, profissionalID *uint) error {
	for _, f := range s.fichas {
		if f.CPF == cpfDigits && sameScope(f.ProfissionalID, profissionalID) {
			return httperr.ErrBusiness(httperr.CodeDuplicateCPF)
		}
	}
	return nil
}

func (s *stubRepo) CreateFicha(_ context.Context, ficha *models.FichaAnamnese) error {
	s.nextID++
	ficha.ID = s.nextID
	s.fichas = append(s.fichas, *ficha)
	return nil
}

func (s *stubRepo) GetFichaByCPF(_ context.Context, cpfDigits string) (*models.FichaAnamnese, error) {
	for i := range s.fichas {
		if s.fichas[i].CPF == cpfDigits {
			return &s.fichas[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) GetFichaByID(_ context.Context, id uint) (*models.FichaAnamnese, error) {
	for i := range s.fichas {
		if s.fichas[i].ID == id {
			return &s.fichas[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) ListFichas(_ context.Context, profissionalID *uint, offset, limit int) ([]models.FichaAnamnese, int64, error) {
	s.listCalled = true
	s.listScope = profissionalID
	s.listOffset = offset
	s.listLimit = limit
	return s.listResult, s.listTotal, nil
}

func (s *stubRepo) SearchFichas(_ context.Context, params domain.SearchParams) ([]models.FichaAnamnese, error) {
	s.searchCalled = true
	s.searchParams = params
	return s.searchResult, nil
}

var _ domain.Repository = (*stubRepo)(nil)

type stubAudit struct {
	events []audit.Event
}

func (s *stubAudit) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

func validSubmission() domain.Submission {
	return domain.Submission{
		Nome: "Ana Souza",
		CPF:  "529.982.247-25",
	}
}

func uintPtr(v uint) *uint { return &v }

// ------------------------------------------------------
// Tests
// ------------------------------------------------------

func TestSubmitFichaSemProfissional(t *testing.T) {
	repo := newStubRepo()
	auditor := &stubAudit{}
	uc := NewSubmitFicha(repo, auditor)

	result, err := uc.Execute(context.Background(), SubmitFichaInput{
		Submission: validSubmission(),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.ID == 0 {
		t.Error("result.ID deveria ser atribuído pelo store")
	}
	if result.ProfissionalID != nil {
		t.Errorf("ProfissionalID = %v, want nil", result.ProfissionalID)
	}
	if len(repo.fichas) != 1 {
		t.Fatalf("fichas inseridas = %d, want 1", len(repo.fichas))
	}
	if repo.fichas[0].CPF != "52998224725" {
		t.Errorf("CPF armazenado = %q, want normalizado", repo.fichas[0].CPF)
	}
	if len(auditor.events) != 1 || auditor.events[0].Action != "ficha_criada" {
		t.Errorf("auditoria = %+v, want um evento ficha_criada", auditor.events)
	}
}

func TestSubmitFichaCamposObrigatorios(t *testing.T) {
	uc := NewSubmitFicha(newStubRepo(), &stubAudit{})

	cases := []domain.Submission{
		{Nome: "", CPF: "52998224725"},
		{Nome: "   ", CPF: "52998224725"},
		{Nome: "Ana", CPF: ""},
		{Nome: "Ana", CPF: "  "},
	}

	for i, sub := range cases {
		_, err := uc.Execute(context.Background(), SubmitFichaInput{Submission: sub})
		if !httperr.IsBusiness(err, httperr.CodeMissingFields) {
			t.Errorf("caso %d: err = %v, want missing_fields", i, err)
		}
	}
}

func TestSubmitFichaCPFInvalido(t *testing.T) {
	uc := NewSubmitFicha(newStubRepo(), &stubAudit{})

	for _, c := range []string{"52998224724", "123", "11111111111"} {
		_, err := uc.Execute(context.Background(), SubmitFichaInput{
			Submission: domain.Submission{Nome: "Ana", CPF: c},
		})
		if !httperr.IsBusiness(err, httperr.CodeInvalidCPF) {
			t.Errorf("cpf %q: err = %v, want invalid_cpf", c, err)
		}
	}
}

func TestSubmitFichaProfissionalDesconhecido(t *testing.T) {
	repo := newStubRepo()
	uc := NewSubmitFicha(repo, &stubAudit{})

	sub := validSubmission()
	pid := int64(99)
	sub.ProfessionalID = &pid

	_, err := uc.Execute(context.Background(), SubmitFichaInput{Submission: sub})
	if !httperr.IsBusiness(err, httperr.CodeUnknownProfessional) {
		t.Fatalf("err = %v, want unknown_professional", err)
	}
}

func TestSubmitFichaProfissionalDivergente(t *testing.T) {
	repo := newStubRepo()
	repo.profissionais[1] = &models.Profissional{ID: 1}
	repo.profissionais[2] = &models.Profissional{ID: 2}
	uc := NewSubmitFicha(repo, &stubAudit{})

	sub := validSubmission()
	pid := int64(2)
	sub.ProfessionalID = &pid

	_, err := uc.Execute(context.Background(), SubmitFichaInput{
		Submission:      sub,
		AuthenticatedID: uintPtr(1),
	})
	if !httperr.IsBusiness(err, httperr.CodeProfessionalMismatch) {
		t.Fatalf("err = %v, want professional_mismatch", err)
	}
}

func TestSubmitFichaUsaProfissionalAutenticado(t *testing.T) {
	repo := newStubRepo()
	repo.profissionais[3] = &models.Profissional{ID: 3}
	uc := NewSubmitFicha(repo, &stubAudit{})

	result, err := uc.Execute(context.Background(), SubmitFichaInput{
		Submission:      validSubmission(),
		AuthenticatedID: uintPtr(3),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.ProfissionalID == nil || *result.ProfissionalID != 3 {
		t.Errorf("ProfissionalID = %v, want 3", result.ProfissionalID)
	}
}

func TestSubmitFichaExplicitoIgualAutenticado(t *testing.T) {
	repo := newStubRepo()
	repo.profissionais[1] = &models.Profissional{ID: 1}
	uc := NewSubmitFicha(repo, &stubAudit{})

	sub := validSubmission()
	pid := int64(1)
	sub.ProfessionalID = &pid

	result, err := uc.Execute(context.Background(), SubmitFichaInput{
		Submission:      sub,
		AuthenticatedID: uintPtr(1),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.ProfissionalID == nil || *result.ProfissionalID != 1 {
		t.Errorf("ProfissionalID = %v, want 1", result.ProfissionalID)
	}
}

func TestSubmitFichaDuplicataPorEscopo(t *testing.T) {
	repo := newStubRepo()
	repo.profissionais[1] = &models.Profissional{ID: 1}
	repo.profissionais[2] = &models.Profissional{ID: 2}
	uc := NewSubmitFicha(repo, &stubAudit{})

	sub := validSubmission()
	pid1 := int64(1)
	sub.ProfessionalID = &pid1

	if _, err := uc.Execute(context.Background(), SubmitFichaInput{Submission: sub}); err != nil {
		t.Fatalf("primeira inserção: %v", err)
	}

	// Mesmo CPF, mesmo profissional → duplicata.
	_, err := uc.Execute(context.Background(), SubmitFichaInput{Submission: sub})
	if !httperr.IsBusiness(err, httperr.CodeDuplicateCPF) {
		t.Fatalf("err = %v, want duplicate_cpf", err)
	}

	// Mesmo CPF, outro profissional → permitido.
	sub2 := validSubmission()
	pid2 := int64(2)
	sub2.ProfessionalID = &pid2
	if _, err := uc.Execute(context.Background(), SubmitFichaInput{Submission: sub2}); err != nil {
		t.Fatalf("escopo diferente deveria passar: %v", err)
	}
}

func TestSubmitFichaDuplicataSemProfissional(t *testing.T) {
	repo := newStubRepo()
	uc := NewSubmitFicha(repo, &stubAudit{})

	if _, err := uc.Execute(context.Background(), SubmitFichaInput{Submission: validSubmission()}); err != nil {
		t.Fatalf("primeira inserção: %v", err)
	}

	_, err := uc.Execute(context.Background(), SubmitFichaInput{Submission: validSubmission()})
	if !httperr.IsBusiness(err, httperr.CodeDuplicateCPF) {
		t.Fatalf("err = %v, want duplicate_cpf no escopo nulo", err)
	}
}
