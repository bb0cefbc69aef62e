// internal/form/validar.go
//
// Per-step validation rules. Validar is a pure function of the form
// state; ValidarEtapa is the stateful wrapper the navigator uses,
// merging fresh flags into the visible error set.

package form

import (
	"strings"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/wizard"
)

// Validar evaluates one wizard step and returns the fields in error.
// An empty set means the step passes.
func Validar(e *Estado, etapa wizard.Etapa, c config.Conciliacao) Erros {
	erros := Erros{}
	switch etapa {
	case wizard.EtapaDeclarante:
		obrigatorios := map[Campo]string{
			CampoNome:        e.Nome,
			CampoCPF:         e.CPF,
			CampoRG:          e.RG,
			CampoEstadoCivil: string(e.EstadoCivil),
			CampoProfissao:   e.Profissao,
			CampoEndereco:    e.Endereco,
		}
		if e.EstadoCivil.ExigeConjuge() {
			obrigatorios[CampoNomeConjuge] = e.NomeConjuge
			obrigatorios[CampoCPFConjuge] = e.CPFConjuge
			obrigatorios[CampoRGConjuge] = e.RGConjuge
		}
		marcarVazios(erros, obrigatorios)

	case wizard.EtapaImovel:
		marcarVazios(erros, map[Campo]string{
			CampoMatricula:   e.Matricula,
			CampoCartorio:    e.Cartorio,
			CampoLocalizacao: e.Localizacao,
		})
		if strings.TrimSpace(e.AreaTotal) == "" || ParseArea(e.AreaTotal) <= 0 {
			erros.Marcar(CampoAreaTotal)
		}

	case wizard.EtapaAptidao:
		negativa := false
		for i := range e.Areas {
			if ParseArea(e.Areas[i]) < 0 {
				erros.Marcar(CampoArea(i))
				negativa = true
			}
		}
		// A negative entry can cancel out inside the sum, so the group
		// checks only run once every field is non-negative.
		if negativa {
			break
		}
		t := e.Totais(c)
		if t.Soma == 0 {
			erros.Marcar(ErroAptidaoVazia)
		} else if !t.Conciliada {
			erros.Marcar(ErroAptidaoDiferenca)
		}

	case wizard.EtapaRevisao:
		// No field rules; the export path checks consent separately.
	}
	return erros
}

// ValidarEtapa runs Validar and merges the result into the form's
// visible error set. It reports whether the step passed.
func (e *Estado) ValidarEtapa(etapa wizard.Etapa, c config.Conciliacao) bool {
	novos := Validar(e, etapa, c)
	e.erros.Mesclar(novos)
	return novos.Vazio()
}

func marcarVazios(erros Erros, campos map[Campo]string) {
	for campo, valor := range campos {
		if strings.TrimSpace(valor) == "" {
			erros.Marcar(campo)
		}
	}
}
