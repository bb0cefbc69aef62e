// internal/form/estado.go
//
// The form state store: a single mutable record holding every field
// of the declaration for one session. Values are kept as the raw text
// the user typed; numeric interpretation happens in Totais and in the
// validation engine. Nothing here is ever persisted.

package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/aptidao"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
)

// EstadoCivil enumerates the marital statuses accepted by the form.
type EstadoCivil string

const (
	Solteiro     EstadoCivil = "Solteiro(a)"
	Casado       EstadoCivil = "Casado(a)"
	Divorciado   EstadoCivil = "Divorciado(a)"
	Viuvo        EstadoCivil = "Viúvo(a)"
	UniaoEstavel EstadoCivil = "União estável"
)

// EstadosCivis returns the selectable statuses, in display order.
func EstadosCivis() []EstadoCivil {
	return []EstadoCivil{Solteiro, Casado, Divorciado, Viuvo, UniaoEstavel}
}

// ExigeConjuge reports whether this status makes the spouse fields
// mandatory.
func (e EstadoCivil) ExigeConjuge() bool {
	return e == Casado || e == UniaoEstavel
}

// Estado is the single source of truth for the declaration form.
type Estado struct {
	// Declarante
	Nome        string
	CPF         string
	RG          string
	EstadoCivil EstadoCivil
	Profissao   string
	Email       string
	Endereco    string

	// Cônjuge / companheiro(a)
	NomeConjuge string
	CPFConjuge  string
	RGConjuge   string

	// Imóvel
	Matricula    string
	Cartorio     string
	NomeImovel   string
	Localizacao  string
	AreaTotal    string
	CCIR         string
	NIRF         string
	ProcessoITBI string

	// Áreas por categoria de aptidão, na ordem do catálogo.
	Areas [aptidao.NumCategorias]string

	Observacoes string

	erros Erros
}

// Novo creates an empty form for a fresh session.
func Novo() *Estado {
	return &Estado{erros: Erros{}}
}

// Erros exposes the live validation-error set.
func (e *Estado) Erros() Erros {
	return e.erros
}

// Set replaces one field's value and clears its error flag. The two
// CPF fields pass through the progressive mask before storage.
func (e *Estado) Set(campo Campo, valor string) {
	switch campo {
	case CampoNome:
		e.Nome = valor
	case CampoCPF:
		e.CPF = FormatarCPF(valor)
	case CampoRG:
		e.RG = valor
	case CampoEstadoCivil:
		e.EstadoCivil = EstadoCivil(valor)
	case CampoProfissao:
		e.Profissao = valor
	case CampoEmail:
		e.Email = valor
	case CampoEndereco:
		e.Endereco = valor
	case CampoNomeConjuge:
		e.NomeConjuge = valor
	case CampoCPFConjuge:
		e.CPFConjuge = FormatarCPF(valor)
	case CampoRGConjuge:
		e.RGConjuge = valor
	case CampoMatricula:
		e.Matricula = valor
	case CampoCartorio:
		e.Cartorio = valor
	case CampoNomeImovel:
		e.NomeImovel = valor
	case CampoLocalizacao:
		e.Localizacao = valor
	case CampoAreaTotal:
		e.AreaTotal = valor
	case CampoCCIR:
		e.CCIR = valor
	case CampoNIRF:
		e.NIRF = valor
	case CampoProcessoITBI:
		e.ProcessoITBI = valor
	case CampoObservacoes:
		e.Observacoes = valor
	default:
		return
	}
	e.erros.Limpar(campo)
}

// Get reads one field's stored value.
func (e *Estado) Get(campo Campo) string {
	switch campo {
	case CampoNome:
		return e.Nome
	case CampoCPF:
		return e.CPF
	case CampoRG:
		return e.RG
	case CampoEstadoCivil:
		return string(e.EstadoCivil)
	case CampoProfissao:
		return e.Profissao
	case CampoEmail:
		return e.Email
	case CampoEndereco:
		return e.Endereco
	case CampoNomeConjuge:
		return e.NomeConjuge
	case CampoCPFConjuge:
		return e.CPFConjuge
	case CampoRGConjuge:
		return e.RGConjuge
	case CampoMatricula:
		return e.Matricula
	case CampoCartorio:
		return e.Cartorio
	case CampoNomeImovel:
		return e.NomeImovel
	case CampoLocalizacao:
		return e.Localizacao
	case CampoAreaTotal:
		return e.AreaTotal
	case CampoCCIR:
		return e.CCIR
	case CampoNIRF:
		return e.NIRF
	case CampoProcessoITBI:
		return e.ProcessoITBI
	case CampoObservacoes:
		return e.Observacoes
	default:
		return ""
	}
}

// SetArea replaces the land-use area at catalog position idx. Editing
// any area also clears the step-3 reconciliation flags, since they
// describe the group as a whole.
func (e *Estado) SetArea(idx int, valor string) {
	if idx < 0 || idx >= len(e.Areas) {
		return
	}
	e.Areas[idx] = valor
	e.erros.Limpar(CampoArea(idx))
	e.erros.Limpar(ErroAptidaoVazia)
	e.erros.Limpar(ErroAptidaoDiferenca)
}

// Totais carries the derived reconciliation numbers for the form.
type Totais struct {
	Soma       float64 // declared sum, rounded
	AreaTotal  float64 // registered total area
	Diferenca  float64 // Soma - AreaTotal, rounded
	Conciliada bool    // |Diferenca| within tolerance
	Percentual float64 // share of the total area already declared
}

// Totais computes the derived values under the given reconciliation
// constants. It never mutates the form.
func (e *Estado) Totais(c config.Conciliacao) Totais {
	var soma float64
	for _, area := range e.Areas {
		soma += ParseArea(area)
	}
	soma = arredondar(soma, c.CasasDecimais)
	total := ParseArea(e.AreaTotal)
	diff := arredondar(soma-total, c.CasasDecimais)
	t := Totais{
		Soma:       soma,
		AreaTotal:  total,
		Diferenca:  diff,
		Conciliada: math.Abs(diff) < c.Tolerancia,
	}
	if total > 0 {
		t.Percentual = soma / total * 100
	}
	return t
}

// ParseArea reads a decimal field, treating blank or malformed input
// as zero.
func ParseArea(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func arredondar(x float64, casas int) float64 {
	p := math.Pow10(casas)
	return math.Round(x*p) / p
}
