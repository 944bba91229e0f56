package anamnese

import (
	"context"
	"testing"

	"github.com/studioink/anamnese-api/internal/models"
)

func TestSearchClientesQueryCurtaNaoConsultaStore(t *testing.T) {
	repo := newStubRepo()
	uc := NewSearchClientes(repo)

	for _, q := range []string{"", "a", " a ", "1"} {
		items, err := uc.Execute(context.Background(), SearchClientesInput{Query: q})
		if err != nil {
			t.Fatalf("Execute(%q): %v", q, err)
		}
		if len(items) != 0 {
			t.Errorf("Execute(%q) = %d itens, want 0", q, len(items))
		}
	}

	if repo.searchCalled {
		t.Error("query curta não deveria tocar no store")
	}
}

func TestSearchClientesNumericaBuscaPorCPF(t *testing.T) {
	repo := newStubRepo()
	uc := NewSearchClientes(repo)

	if _, err := uc.Execute(context.Background(), SearchClientesInput{Query: "529982"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !repo.searchCalled {
		t.Fatal("store deveria ser consultado")
	}
	if !repo.searchParams.ByCPF {
		t.Error("query numérica deveria casar por CPF")
	}
	if repo.searchParams.Term != "529982" {
		t.Errorf("Term = %q, want dígitos", repo.searchParams.Term)
	}
}

func TestSearchClientesNumericaCurtaCaiParaNome(t *testing.T) {
	// Dois dígitos passam do mínimo de 2 caracteres mas ficam abaixo do
	// mínimo de 3 dígitos da busca por CPF.
	repo := newStubRepo()
	uc := NewSearchClientes(repo)

	if _, err := uc.Execute(context.Background(), SearchClientesInput{Query: "52"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if repo.searchParams.ByCPF {
		t.Error("dois dígitos deveriam buscar por nome")
	}
}

func TestSearchClientesPorNomeCaixaInsensivel(t *testing.T) {
	repo := newStubRepo()
	uc := NewSearchClientes(repo)

	if _, err := uc.Execute(context.Background(), SearchClientesInput{Query: "  MarIa "}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if repo.searchParams.ByCPF {
		t.Error("texto deveria buscar por nome")
	}
	if repo.searchParams.Term != "maria" {
		t.Errorf("Term = %q, want aparado e minúsculo", repo.searchParams.Term)
	}
}

func TestSearchClientesLimites(t *testing.T) {
	cases := map[int]int{
		0:   10,
		-1:  10,
		5:   5,
		25:  25,
		999: 25,
	}

	for in, want := range cases {
		repo := newStubRepo()
		uc := NewSearchClientes(repo)

		if _, err := uc.Execute(context.Background(), SearchClientesInput{Query: "maria", Limit: in}); err != nil {
			t.Fatalf("Execute(limit=%d): %v", in, err)
		}
		if repo.searchParams.Limit != want {
			t.Errorf("limit %d → %d, want %d", in, repo.searchParams.Limit, want)
		}
	}
}

func TestSearchClientesProjecao(t *testing.T) {
	repo := newStubRepo()
	repo.searchResult = []models.FichaAnamnese{{
		ID:   2,
		Nome: "Carlos",
		CPF:  "11144477735",
		DadosCliente: models.DadosCliente{
			Celular: "11 97777-0000",
		},
	}}
	uc := NewSearchClientes(repo)

	items, err := uc.Execute(context.Background(), SearchClientesInput{Query: "carlos"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("itens = %d, want 1", len(items))
	}
	if items[0].Nome != "Carlos" || items[0].CPF != "11144477735" {
		t.Errorf("projeção errada: %+v", items[0])
	}
	if items[0].Email != nil {
		t.Errorf("Email = %v, want null quando vazio", items[0].Email)
	}
	if items[0].Celular == nil || *items[0].Celular != "11 97777-0000" {
		t.Errorf("Celular = %v", items[0].Celular)
	}
}
