// internal/document/documento.go
//
// The abstract content tree of the declaration. Build projects the
// form state into a Documento exactly once; every renderer (terminal
// preview, PDF) consumes the same tree, so the two presentations
// cannot drift.

package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/aptidao"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/form"
)

// ClausulaDeclaracao is the sworn-statement boilerplate shown with the
// consent checkbox and printed on the document.
const ClausulaDeclaracao = "Declaro, sob as penas da lei, que as informações prestadas neste " +
	"formulário são verdadeiras e que a aptidão agrícola descrita corresponde à real condição " +
	"do imóvel. Estou ciente de que a prestação de informações falsas configura infração " +
	"punível na forma da lei."

// ResponsabilidadeLegal is the civil/criminal liability footer.
const ResponsabilidadeLegal = "Responsabilidade civil e penal: O declarante assume inteira " +
	"responsabilidade pelas informações prestadas neste documento, submetendo-se às sanções " +
	"previstas no art. 299 do Código Penal Brasileiro (falsidade ideológica), bem como às " +
	"penalidades administrativas estipuladas na Lei Complementar Municipal nº 878/2021 " +
	"(Código Tributário Municipal de Porto Velho)."

// Cabecalho identifies the issuing authority and the document title.
type Cabecalho struct {
	Orgao      string
	Secretaria string
	Titulo     string
	Subtitulo  string
}

// Linha is one label/value row of the property table.
type Linha struct {
	Rotulo   string
	Valor    string
	Destaque bool
}

// LinhaArea is one row of the land-use table.
type LinhaArea struct {
	Rotulo string
	Area   string
}

// TabelaAptidao lists the declared categories plus the total row.
type TabelaAptidao struct {
	Linhas []LinhaArea
	Total  string
}

// Assinaturas carries the two signature columns.
type Assinaturas struct {
	NomeDeclarante string
	CPFDeclarante  string
	LocalData      string
}

// Emissao is the footer date/origin stamp.
type Emissao struct {
	Data   string
	Origem string
}

// Documento is the full content tree of one declaration.
type Documento struct {
	Cabecalho   Cabecalho
	Abertura    string // narrative identification paragraph
	Declara     string // the "DECLARA, sob as penas da lei" clause
	DadosImovel []Linha
	Aptidao     TabelaAptidao
	Observacoes string // empty means the notes block is omitted
	Clausula    string
	Footer      string
	Assinaturas Assinaturas
	Emissao     Emissao

	// Protocolo is a cosmetic session-local reference. It is not
	// printed on the document and carries no uniqueness guarantee.
	Protocolo string
}

// Build projects the form state into the content tree. It is a pure
// function: the form is only read, never mutated.
func Build(e *form.Estado, cfg *config.Config, agora time.Time) *Documento {
	t := e.Totais(cfg.Conciliacao)
	casas := cfg.Conciliacao.CasasDecimais
	dataLonga := FormatarDataLonga(agora)

	doc := &Documento{
		Cabecalho: Cabecalho{
			Orgao:      cfg.Emissor.Orgao,
			Secretaria: cfg.Emissor.Secretaria,
			Titulo:     cfg.Emissor.Titulo,
			Subtitulo:  cfg.Emissor.Subtitulo,
		},
		Abertura: abertura(e, cfg.Emissor.Local),
		Declara: "DECLARA, sob as penas da lei, a aptidão agrícola do imóvel de sua " +
			"titularidade, caracterizado nos termos seguintes:",
		Observacoes: strings.TrimSpace(e.Observacoes),
		Clausula:    ClausulaDeclaracao,
		Footer:      ResponsabilidadeLegal,
		Assinaturas: Assinaturas{
			NomeDeclarante: e.Nome,
			CPFDeclarante:  e.CPF,
			LocalData:      fmt.Sprintf("%s, %s", cfg.Emissor.Local, dataLonga),
		},
		Emissao: Emissao{Data: dataLonga, Origem: cfg.Emissor.Origem},
	}

	doc.DadosImovel = append(doc.DadosImovel, Linha{
		Rotulo: "Matrícula",
		Valor:  fmt.Sprintf("%s — %s", e.Matricula, e.Cartorio),
	})
	if e.NomeImovel != "" {
		doc.DadosImovel = append(doc.DadosImovel, Linha{Rotulo: "Denominação", Valor: e.NomeImovel})
	}
	doc.DadosImovel = append(doc.DadosImovel,
		Linha{Rotulo: "Localização", Valor: e.Localizacao},
		Linha{Rotulo: "Área Total Registrada", Valor: formatarArea(t.AreaTotal, casas), Destaque: true},
	)
	if e.CCIR != "" {
		doc.DadosImovel = append(doc.DadosImovel, Linha{Rotulo: "CCIR", Valor: e.CCIR})
	}
	if e.NIRF != "" {
		doc.DadosImovel = append(doc.DadosImovel, Linha{Rotulo: "NIRF / CAFIR", Valor: e.NIRF})
	}

	for i, cat := range aptidao.Categorias() {
		area := form.ParseArea(e.Areas[i])
		if area > 0 {
			doc.Aptidao.Linhas = append(doc.Aptidao.Linhas, LinhaArea{
				Rotulo: cat.RotuloCurto,
				Area:   formatarArea(area, casas),
			})
		}
	}
	doc.Aptidao.Total = formatarArea(t.Soma, casas)

	return doc
}

// abertura builds the narrative identification paragraph, with the
// conditional spouse clause and "___" placeholders for blank spouse
// sub-fields.
func abertura(e *form.Estado, local string) string {
	conjuge := ""
	if e.EstadoCivil.ExigeConjuge() {
		conjuge = fmt.Sprintf(", e seu cônjuge %s, CPF %s, RG %s",
			ouTraco(e.NomeConjuge), ouTraco(e.CPFConjuge), ouTraco(e.RGConjuge))
	}
	return fmt.Sprintf("%s, %s, %s, inscrito(a) no RG sob o nº %s e CPF sob o nº %s%s, "+
		"residente e domiciliado(a) à %s, Município de %s, na qualidade de proprietário(a) "+
		"do imóvel rural apresentado para emissão de ITBI,",
		e.Nome, e.Profissao, strings.ToLower(string(e.EstadoCivil)),
		e.RG, e.CPF, conjuge, e.Endereco, local)
}

func ouTraco(v string) string {
	if strings.TrimSpace(v) == "" {
		return "___"
	}
	return v
}

func formatarArea(v float64, casas int) string {
	return fmt.Sprintf("%.*f ha", casas, v)
}

var meses = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatarDataLonga renders a date in long pt-BR form, e.g.
// "15 de março de 2024".
func FormatarDataLonga(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}
