package document

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/form"
)

func configTeste(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	return cfg
}

func formularioPreenchido() *form.Estado {
	e := form.Novo()
	e.Set(form.CampoNome, "José de Arimatéia")
	e.Set(form.CampoCPF, "12345678901")
	e.Set(form.CampoRG, "123456 SSP/RO")
	e.Set(form.CampoEstadoCivil, string(form.Solteiro))
	e.Set(form.CampoProfissao, "agricultor")
	e.Set(form.CampoEndereco, "Rua das Palmeiras, 10, Centro")
	e.Set(form.CampoMatricula, "45.678")
	e.Set(form.CampoCartorio, "1º Ofício de Registro de Imóveis")
	e.Set(form.CampoLocalizacao, "Linha 45, km 12 — Porto Velho/RO")
	e.Set(form.CampoAreaTotal, "100")
	e.SetArea(0, "30")
	e.SetArea(1, "30")
	e.SetArea(2, "40")
	return e
}

var dataTeste = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestBuildNarrativa(t *testing.T) {
	doc := Build(formularioPreenchido(), configTeste(t), dataTeste)
	if !strings.Contains(doc.Abertura, "José de Arimatéia") {
		t.Fatalf("abertura missing declarant name: %q", doc.Abertura)
	}
	if !strings.Contains(doc.Abertura, "solteiro(a)") {
		t.Fatalf("marital status must be lower-cased in prose: %q", doc.Abertura)
	}
	if strings.Contains(doc.Abertura, "cônjuge") {
		t.Fatalf("single declarant must not get a spouse clause: %q", doc.Abertura)
	}
	if doc.Assinaturas.LocalData != "Porto Velho/RO, 15 de março de 2024" {
		t.Fatalf("LocalData = %q", doc.Assinaturas.LocalData)
	}
}

func TestBuildClausulaConjuge(t *testing.T) {
	e := formularioPreenchido()
	e.Set(form.CampoEstadoCivil, string(form.Casado))
	e.Set(form.CampoNomeConjuge, "Ana Souza")
	doc := Build(e, configTeste(t), dataTeste)
	// Blank spouse sub-fields fall back to the "___" placeholder.
	if !strings.Contains(doc.Abertura, ", e seu cônjuge Ana Souza, CPF ___, RG ___") {
		t.Fatalf("spouse clause = %q", doc.Abertura)
	}
}

func TestBuildTabelaImovelOmiteOpcionaisVazios(t *testing.T) {
	cfg := configTeste(t)
	doc := Build(formularioPreenchido(), cfg, dataTeste)
	quer := []Linha{
		{Rotulo: "Matrícula", Valor: "45.678 — 1º Ofício de Registro de Imóveis"},
		{Rotulo: "Localização", Valor: "Linha 45, km 12 — Porto Velho/RO"},
		{Rotulo: "Área Total Registrada", Valor: "100.0000 ha", Destaque: true},
	}
	if diff := cmp.Diff(quer, doc.DadosImovel); diff != "" {
		t.Fatalf("DadosImovel mismatch (-want +got):\n%s", diff)
	}

	// Populating one optional field adds exactly one row.
	e := formularioPreenchido()
	e.Set(form.CampoCCIR, "955.000.123.456-7")
	doc = Build(e, cfg, dataTeste)
	if len(doc.DadosImovel) != 4 {
		t.Fatalf("len(DadosImovel) = %d, want 4 after filling CCIR", len(doc.DadosImovel))
	}
	ultima := doc.DadosImovel[len(doc.DadosImovel)-1]
	if ultima.Rotulo != "CCIR" || ultima.Valor != "955.000.123.456-7" {
		t.Fatalf("last row = %+v, want the CCIR row", ultima)
	}
}

func TestBuildTabelaAptidaoOmiteZeros(t *testing.T) {
	doc := Build(formularioPreenchido(), configTeste(t), dataTeste)
	quer := TabelaAptidao{
		Linhas: []LinhaArea{
			{Rotulo: "Lavoura — Aptidão Boa", Area: "30.0000 ha"},
			{Rotulo: "Lavoura — Aptidão Regular", Area: "30.0000 ha"},
			{Rotulo: "Lavoura — Aptidão Restrita", Area: "40.0000 ha"},
		},
		Total: "100.0000 ha",
	}
	if diff := cmp.Diff(quer, doc.Aptidao); diff != "" {
		t.Fatalf("Aptidao mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildObservacoes(t *testing.T) {
	cfg := configTeste(t)
	doc := Build(formularioPreenchido(), cfg, dataTeste)
	if doc.Observacoes != "" {
		t.Fatalf("empty notes should stay empty, got %q", doc.Observacoes)
	}
	e := formularioPreenchido()
	e.Set(form.CampoObservacoes, "  Área com reserva legal averbada.  ")
	doc = Build(e, cfg, dataTeste)
	if doc.Observacoes != "Área com reserva legal averbada." {
		t.Fatalf("Observacoes = %q", doc.Observacoes)
	}
}

func TestFormatarDataLonga(t *testing.T) {
	casos := []struct {
		data time.Time
		quer string
	}{
		{time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), "15 de março de 2024"},
		{time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), "03 de janeiro de 2025"},
		{time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), "31 de dezembro de 2023"},
	}
	for _, c := range casos {
		if got := FormatarDataLonga(c.data); got != c.quer {
			t.Errorf("FormatarDataLonga(%v) = %q, want %q", c.data, got, c.quer)
		}
	}
}
