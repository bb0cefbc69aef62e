// internal/document/pdf/pdf.go
//
// Paginated-document renderer. Consumes the same Documento tree as the
// terminal preview and emits an A4 portrait PDF with 10 mm margins.

package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document"
)

// Layout is the fixed page configuration handed to the PDF engine.
type Layout struct {
	Orientacao string  // "P" (portrait) or "L"
	Formato    string  // page size, e.g. "A4"
	MargemMM   float64 // same margin on all four sides, in millimetres
}

// LayoutPadrao returns the layout the declaration is issued with.
func LayoutPadrao() Layout {
	return Layout{Orientacao: "P", Formato: "A4", MargemMM: 10}
}

// Renderer renders the declaration as a PDF document.
type Renderer struct {
	layout Layout
}

// Novo creates a PDF renderer with the given layout.
func Novo(l Layout) *Renderer {
	if l.Orientacao == "" || l.Formato == "" || l.MargemMM <= 0 {
		l = LayoutPadrao()
	}
	return &Renderer{layout: l}
}

// Name implements document.Renderer.
func (r *Renderer) Name() string { return "pdf" }

// Render implements document.Renderer.
func (r *Renderer) Render(doc *document.Documento) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento is nil")
	}
	m := r.layout.MargemMM
	pdf := fpdf.New(r.layout.Orientacao, "mm", r.layout.Formato, "")
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(true, m)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	larguraPagina, _ := pdf.GetPageSize()
	largura := larguraPagina - 2*m

	r.cabecalho(pdf, tr, doc.Cabecalho, largura)
	r.paragrafos(pdf, tr, doc)
	r.tabelaImovel(pdf, tr, doc.DadosImovel, largura)
	r.tabelaAptidao(pdf, tr, doc.Aptidao, largura)
	if doc.Observacoes != "" {
		r.observacoes(pdf, tr, doc.Observacoes, largura)
	}
	r.clausula(pdf, tr, doc.Clausula, largura)
	r.assinaturas(pdf, tr, doc.Assinaturas, largura)
	r.rodape(pdf, tr, doc, largura)

	if pdf.Err() {
		return nil, fmt.Errorf("pdf: rendering failed: %v", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: writing output: %w", err)
	}
	return buf.Bytes(), nil
}

type tradutor func(string) string

func (r *Renderer) cabecalho(pdf *fpdf.Fpdf, tr tradutor, c document.Cabecalho, largura float64) {
	pdf.SetFillColor(26, 71, 49)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(largura, 6, tr(c.Orgao), "", 1, "C", true, 0, "")
	pdf.CellFormat(largura, 5, tr(c.Secretaria), "", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(largura, 10, tr(c.Titulo), "", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(largura, 6, tr(c.Subtitulo), "", 1, "C", true, 0, "")
	// Gold divider under the header block.
	pdf.SetFillColor(201, 151, 58)
	pdf.CellFormat(largura, 1.5, "", "", 1, "", true, 0, "")
	pdf.SetTextColor(28, 28, 28)
	pdf.Ln(6)
}

func (r *Renderer) paragrafos(pdf *fpdf.Fpdf, tr tradutor, doc *document.Documento) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(doc.Abertura), "", "J", false)
	pdf.Ln(3)
	pdf.MultiCell(0, 6, tr(doc.Declara), "", "J", false)
	pdf.Ln(4)
}

func (r *Renderer) tituloSecao(pdf *fpdf.Fpdf, tr tradutor, titulo string, largura float64) {
	pdf.SetFillColor(26, 71, 49)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(largura, 7, tr(titulo), "", 1, "L", true, 0, "")
	pdf.SetTextColor(28, 28, 28)
}

func (r *Renderer) tabelaImovel(pdf *fpdf.Fpdf, tr tradutor, linhas []document.Linha, largura float64) {
	r.tituloSecao(pdf, tr, "DADOS CADASTRAIS DO IMÓVEL", largura)
	rotuloW := largura * 0.4
	valorW := largura - rotuloW
	for _, l := range linhas {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(26, 71, 49)
		if l.Destaque {
			pdf.SetFillColor(232, 245, 238)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.CellFormat(rotuloW, 8, tr(l.Rotulo), "1", 0, "L", true, 0, "")
		pdf.SetTextColor(28, 28, 28)
		if l.Destaque {
			pdf.SetFont("Helvetica", "B", 10)
		} else {
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(valorW, 8, tr(l.Valor), "1", 1, "L", true, 0, "")
	}
	pdf.Ln(5)
}

func (r *Renderer) tabelaAptidao(pdf *fpdf.Fpdf, tr tradutor, t document.TabelaAptidao, largura float64) {
	r.tituloSecao(pdf, tr, "APTIDÃO AGRÍCOLA DECLARADA — USO E COBERTURA DO SOLO", largura)
	rotuloW := largura * 0.7
	areaW := largura - rotuloW

	pdf.SetFillColor(245, 245, 243)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(rotuloW, 7, tr("DESCRIÇÃO DA APTIDÃO"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(areaW, 7, tr("ÁREA (HA)"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, l := range t.Linhas {
		pdf.CellFormat(rotuloW, 8, tr(l.Rotulo), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(areaW, 8, tr(l.Area), "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.SetFillColor(232, 245, 238)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(rotuloW, 8, tr("TOTAL DECLARADO"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(areaW, 8, tr(t.Total), "1", 1, "R", true, 0, "")
	pdf.Ln(5)
}

func (r *Renderer) observacoes(pdf *fpdf.Fpdf, tr tradutor, obs string, largura float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(26, 71, 49)
	pdf.CellFormat(largura, 6, tr("Observações:"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(28, 28, 28)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5.5, tr(obs), "", "J", false)
	pdf.Ln(4)
}

func (r *Renderer) clausula(pdf *fpdf.Fpdf, tr tradutor, texto string, largura float64) {
	pdf.SetFillColor(249, 239, 215)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5.5, tr(texto), "", "J", true)
	pdf.Ln(10)
}

func (r *Renderer) assinaturas(pdf *fpdf.Fpdf, tr tradutor, a document.Assinaturas, largura float64) {
	colW := (largura - 20) / 2
	pdf.Ln(14) // room for handwritten signatures
	y := pdf.GetY()
	x := pdf.GetX()

	pdf.Line(x, y, x+colW, y)
	pdf.Line(x+colW+20, y, x+largura, y)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colW, 6, tr(a.NomeDeclarante), "", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 6, tr(a.LocalData), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(colW, 5, tr("CPF: "+a.CPFDeclarante), "", 0, "C", false, 0, "")
	pdf.CellFormat(20, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 5, tr("LOCAL E DATA"), "", 1, "C", false, 0, "")

	pdf.CellFormat(colW, 5, tr("DECLARANTE"), "", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func (r *Renderer) rodape(pdf *fpdf.Fpdf, tr tradutor, doc *document.Documento, largura float64) {
	pdf.SetDrawColor(214, 214, 206)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+largura, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7.5)
	pdf.SetTextColor(74, 74, 74)
	pdf.MultiCell(0, 4.5, tr(doc.Footer), "", "J", false)
	pdf.Ln(2)
	pdf.SetFillColor(245, 245, 243)
	pdf.CellFormat(largura, 6,
		tr(fmt.Sprintf("Emissão: %s  |  %s", doc.Emissao.Data, doc.Emissao.Origem)),
		"1", 1, "C", true, 0, "")
}
