// internal/form/campo.go
//
// Field identifiers and the validation-error set. Errors are keyed by
// field so the store can clear a flag the moment that field is edited.

package form

import "fmt"

// Campo identifies one form field (or a synthetic step-3 check).
type Campo string

const (
	CampoNome        Campo = "nome"
	CampoCPF         Campo = "cpf"
	CampoRG          Campo = "rg"
	CampoEstadoCivil Campo = "estado_civil"
	CampoProfissao   Campo = "profissao"
	CampoEmail       Campo = "email"
	CampoEndereco    Campo = "endereco"

	CampoNomeConjuge Campo = "nome_conjuge"
	CampoCPFConjuge  Campo = "cpf_conjuge"
	CampoRGConjuge   Campo = "rg_conjuge"

	CampoMatricula    Campo = "matricula"
	CampoCartorio     Campo = "cartorio"
	CampoNomeImovel   Campo = "nome_imovel"
	CampoLocalizacao  Campo = "localizacao"
	CampoAreaTotal    Campo = "area_total"
	CampoCCIR         Campo = "ccir"
	CampoNIRF         Campo = "nirf"
	CampoProcessoITBI Campo = "processo_itbi"

	CampoObservacoes Campo = "observacoes"
)

// Synthetic keys for the step-3 cross-field checks. They are not
// fields; they flag the reconciliation state of the whole area group.
const (
	ErroAptidaoVazia     Campo = "aptidao_vazia"
	ErroAptidaoDiferenca Campo = "aptidao_diferenca"
)

// CampoArea returns the error key for the land-use area at position
// idx (0-based) in the aptitude catalog.
func CampoArea(idx int) Campo {
	return Campo(fmt.Sprintf("area_%d", idx+1))
}

// Erros maps fields to a "has error" flag.
type Erros map[Campo]bool

// Tem reports whether the field is currently flagged.
func (e Erros) Tem(c Campo) bool {
	return e[c]
}

// Marcar flags the field.
func (e Erros) Marcar(c Campo) {
	e[c] = true
}

// Limpar removes the flag for one field.
func (e Erros) Limpar(c Campo) {
	delete(e, c)
}

// Mesclar adds every flag from outros, keeping existing flags. Errors
// from an earlier failed attempt stay visible until their fields are
// edited.
func (e Erros) Mesclar(outros Erros) {
	for campo, marcado := range outros {
		if marcado {
			e[campo] = true
		}
	}
}

// Vazio reports whether no field is flagged.
func (e Erros) Vazio() bool {
	return len(e) == 0
}
