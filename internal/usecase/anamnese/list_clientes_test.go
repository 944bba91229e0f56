package anamnese

import (
	"context"
	"testing"

	"github.com/studioink/anamnese-api/internal/models"
)

func TestListClientesLimiteForaDaTabela(t *testing.T) {
	repo := newStubRepo()
	repo.listTotal = 45
	uc := NewListClientes(repo)

	result, err := uc.Execute(context.Background(), ListClientesInput{Page: 1, Limit: 999})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Limit != 20 {
		t.Errorf("Limit = %d, want 20 (limite não permitido cai no default)", result.Limit)
	}
	if repo.listLimit != 20 {
		t.Errorf("limit passado ao repo = %d, want 20", repo.listLimit)
	}
	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3 para 45/20", result.TotalPages)
	}
}

func TestListClientesLimitesPermitidos(t *testing.T) {
	for _, limit := range []int{20, 50, 100} {
		repo := newStubRepo()
		uc := NewListClientes(repo)

		result, err := uc.Execute(context.Background(), ListClientesInput{Page: 1, Limit: limit})
		if err != nil {
			t.Fatalf("Execute(limit=%d): %v", limit, err)
		}
		if result.Limit != limit {
			t.Errorf("Limit = %d, want %d", result.Limit, limit)
		}
	}
}

func TestListClientesPaginaZeroViraUm(t *testing.T) {
	repo := newStubRepo()
	uc := NewListClientes(repo)

	result, err := uc.Execute(context.Background(), ListClientesInput{Page: 0, Limit: 20})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Page != 1 {
		t.Errorf("Page = %d, want 1", result.Page)
	}
	if repo.listOffset != 0 {
		t.Errorf("offset = %d, want 0", repo.listOffset)
	}
}

func TestListClientesOffset(t *testing.T) {
	repo := newStubRepo()
	uc := NewListClientes(repo)

	if _, err := uc.Execute(context.Background(), ListClientesInput{Page: 3, Limit: 50}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if repo.listOffset != 100 {
		t.Errorf("offset = %d, want 100 para page=3/limit=50", repo.listOffset)
	}
}

func TestListClientesEscopoProfissional(t *testing.T) {
	repo := newStubRepo()
	uc := NewListClientes(repo)

	if _, err := uc.Execute(context.Background(), ListClientesInput{
		Page:           1,
		Limit:          20,
		ProfissionalID: uintPtr(8),
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if repo.listScope == nil || *repo.listScope != 8 {
		t.Errorf("escopo passado ao repo = %v, want 8", repo.listScope)
	}
}

func TestListClientesProjecao(t *testing.T) {
	repo := newStubRepo()
	repo.listTotal = 1
	repo.listResult = []models.FichaAnamnese{{
		ID:   5,
		Nome: "Bruna",
		CPF:  "52998224725",
		DadosCliente: models.DadosCliente{
			Email:          "bruna@example.com",
			Celular:        "11 98888-0000",
			DataNascimento: "1992-03-10",
		},
	}}
	uc := NewListClientes(repo)

	result, err := uc.Execute(context.Background(), ListClientesInput{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(result.Items))
	}

	item := result.Items[0]
	if item.ID != 5 || item.Nome != "Bruna" || item.CPF != "52998224725" {
		t.Errorf("projeção básica errada: %+v", item)
	}
	if item.Email == nil || *item.Email != "bruna@example.com" {
		t.Errorf("Email = %v, want extraído de dados_cliente", item.Email)
	}
	if item.Celular == nil || *item.Celular != "11 98888-0000" {
		t.Errorf("Celular = %v", item.Celular)
	}
	if item.DataNascimento == nil || *item.DataNascimento != "1992-03-10" {
		t.Errorf("DataNascimento = %v", item.DataNascimento)
	}
}
