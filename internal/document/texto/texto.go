// internal/document/texto/texto.go
//
// Terminal renderer for the declaration preview. Everything is
// derived from the Documento content tree; no form fields are read
// here.

package texto

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document"
)

const larguraPadrao = 78

var (
	corVerde   = lipgloss.Color("#1a4731")
	corDourado = lipgloss.Color("#c9973a")
	corCinza   = lipgloss.Color("#4a4a4a")

	estiloCabecalho = lipgloss.NewStyle().
			Background(corVerde).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 2)
	estiloOrgao = lipgloss.NewStyle().
			Background(corVerde).
			Foreground(lipgloss.Color("#d6d6ce")).
			Align(lipgloss.Center).
			Padding(0, 2)
	estiloRotulo   = lipgloss.NewStyle().Bold(true).Foreground(corVerde)
	estiloDestaque = lipgloss.NewStyle().Bold(true).Foreground(corVerde)
	estiloClausula = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(corDourado).
			PaddingLeft(1).
			Foreground(corCinza)
	estiloRodape = lipgloss.NewStyle().Foreground(corCinza)
	estiloTotal  = lipgloss.NewStyle().Bold(true)
)

// Renderer renders the declaration as styled terminal text.
type Renderer struct {
	largura int
}

// Novo creates a terminal renderer. A non-positive width falls back
// to the default preview width.
func Novo(largura int) *Renderer {
	if largura <= 0 {
		largura = larguraPadrao
	}
	return &Renderer{largura: largura}
}

// Name implements document.Renderer.
func (r *Renderer) Name() string { return "texto" }

// Render implements document.Renderer.
func (r *Renderer) Render(doc *document.Documento) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("texto: documento is nil")
	}
	w := r.largura
	paragrafo := lipgloss.NewStyle().Width(w)

	var secoes []string
	secoes = append(secoes, r.cabecalho(doc.Cabecalho, w))
	secoes = append(secoes, "")
	secoes = append(secoes, paragrafo.Render(doc.Abertura))
	secoes = append(secoes, "")
	secoes = append(secoes, paragrafo.Render(doc.Declara))
	secoes = append(secoes, "")
	secoes = append(secoes, r.titulo("Dados Cadastrais do Imóvel", w))
	secoes = append(secoes, r.tabelaImovel(doc.DadosImovel, w))
	secoes = append(secoes, "")
	secoes = append(secoes, r.titulo("Aptidão Agrícola Declarada — Uso e Cobertura do Solo", w))
	secoes = append(secoes, r.tabelaAptidao(doc.Aptidao, w))
	if doc.Observacoes != "" {
		secoes = append(secoes, "")
		secoes = append(secoes, paragrafo.Render(estiloRotulo.Render("Observações: ")+doc.Observacoes))
	}
	secoes = append(secoes, "")
	secoes = append(secoes, estiloClausula.Width(w-2).Render(doc.Clausula))
	secoes = append(secoes, "")
	secoes = append(secoes, r.assinaturas(doc.Assinaturas, w))
	secoes = append(secoes, "")
	secoes = append(secoes, estiloRodape.Width(w).Render(doc.Footer))
	secoes = append(secoes, "")
	secoes = append(secoes, estiloRodape.Width(w).Align(lipgloss.Center).
		Render(fmt.Sprintf("Emissão: %s  |  %s", doc.Emissao.Data, doc.Emissao.Origem)))

	return []byte(strings.Join(secoes, "\n")), nil
}

func (r *Renderer) cabecalho(c document.Cabecalho, w int) string {
	linhas := []string{
		estiloOrgao.Width(w).Render(c.Orgao),
		estiloOrgao.Width(w).Render(c.Secretaria),
		estiloCabecalho.Width(w).Render(c.Titulo),
		estiloOrgao.Width(w).Render(c.Subtitulo),
	}
	return lipgloss.JoinVertical(lipgloss.Left, linhas...)
}

func (r *Renderer) titulo(t string, w int) string {
	return lipgloss.NewStyle().
		Background(corVerde).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Width(w).
		Padding(0, 1).
		Render(strings.ToUpper(t))
}

func (r *Renderer) tabelaImovel(linhas []document.Linha, w int) string {
	rotuloW := 26
	valorW := w - rotuloW - 3
	var rows []string
	for _, l := range linhas {
		valor := l.Valor
		estilo := lipgloss.NewStyle().Width(valorW)
		if l.Destaque {
			estilo = estiloDestaque.Width(valorW)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			estiloRotulo.Width(rotuloW).Render(l.Rotulo),
			"   ",
			estilo.Render(valor),
		))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) tabelaAptidao(t document.TabelaAptidao, w int) string {
	areaW := 16
	rotuloW := w - areaW - 3
	var rows []string
	for _, l := range t.Linhas {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(rotuloW).Render(l.Rotulo),
			"   ",
			lipgloss.NewStyle().Width(areaW).Align(lipgloss.Right).Render(l.Area),
		))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		estiloTotal.Width(rotuloW).Render("TOTAL DECLARADO"),
		"   ",
		estiloTotal.Width(areaW).Align(lipgloss.Right).Render(t.Total),
	))
	return strings.Join(rows, "\n")
}

func (r *Renderer) assinaturas(a document.Assinaturas, w int) string {
	colW := (w - 4) / 2
	linha := strings.Repeat("─", colW)
	col := lipgloss.NewStyle().Width(colW).Align(lipgloss.Center)
	esquerda := col.Render(strings.Join([]string{
		linha,
		a.NomeDeclarante,
		"CPF: " + a.CPFDeclarante,
		"DECLARANTE",
	}, "\n"))
	direita := col.Render(strings.Join([]string{
		linha,
		a.LocalData,
		"",
		"LOCAL E DATA",
	}, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, esquerda, "    ", direita)
}
