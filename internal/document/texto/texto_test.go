package texto

import (
	"strings"
	"testing"
	"time"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/form"
)

func documentoTeste(t *testing.T, ajustar func(*form.Estado)) *document.Documento {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	e := form.Novo()
	e.Set(form.CampoNome, "Maria Oliveira")
	e.Set(form.CampoCPF, "12345678901")
	e.Set(form.CampoRG, "123456 SSP/RO")
	e.Set(form.CampoEstadoCivil, string(form.Solteiro))
	e.Set(form.CampoProfissao, "produtora rural")
	e.Set(form.CampoEndereco, "Av. Sete de Setembro, 100")
	e.Set(form.CampoMatricula, "10.203")
	e.Set(form.CampoCartorio, "2º Ofício de Registro de Imóveis")
	e.Set(form.CampoLocalizacao, "BR-364, km 20")
	e.Set(form.CampoAreaTotal, "80")
	e.SetArea(3, "80")
	if ajustar != nil {
		ajustar(e)
	}
	return document.Build(e, cfg, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
}

func TestRenderContemSecoes(t *testing.T) {
	r := Novo(0)
	if r.Name() != "texto" {
		t.Fatalf("Name() = %q", r.Name())
	}
	saida, err := r.Render(documentoTeste(t, nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	texto := string(saida)
	for _, quer := range []string{
		"DECLARAÇÃO DE APTIDÃO AGRÍCOLA",
		"Maria Oliveira",
		"Matrícula",
		"Pastagem Plantada/Cultivada",
		"80.0000 ha",
		"TOTAL DECLARADO",
		"DECLARANTE",
		"15 de março de 2024",
	} {
		if !strings.Contains(texto, quer) {
			t.Errorf("rendered preview missing %q", quer)
		}
	}
}

func TestRenderOmiteBlocosVazios(t *testing.T) {
	saida, err := Novo(0).Render(documentoTeste(t, nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(saida), "Observações") {
		t.Fatalf("notes block must be omitted when empty")
	}

	saida, err = Novo(0).Render(documentoTeste(t, func(e *form.Estado) {
		e.Set(form.CampoObservacoes, "Reserva legal averbada.")
	}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(saida), "Reserva legal averbada.") {
		t.Fatalf("notes block missing when notes are present")
	}
}

func TestRenderDocumentoNulo(t *testing.T) {
	if _, err := Novo(0).Render(nil); err == nil {
		t.Fatalf("nil document must fail")
	}
}
