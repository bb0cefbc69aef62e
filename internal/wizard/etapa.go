// internal/wizard/etapa.go
//
// The 4-step linear state machine that gates the declaration flow:
// Declarante → Imóvel → Aptidão → Revisão. Forward movement validates
// the step being left; backward movement is always allowed.

package wizard

// Etapa represents one stage of the declaration wizard.
type Etapa int

const (
	EtapaDeclarante Etapa = iota + 1
	EtapaImovel
	EtapaAptidao
	EtapaRevisao
)

// NumEtapas is the total number of wizard steps.
const NumEtapas = 4

// String returns the tab label for the step.
func (e Etapa) String() string {
	switch e {
	case EtapaDeclarante:
		return "Declarante"
	case EtapaImovel:
		return "Imóvel"
	case EtapaAptidao:
		return "Aptidão"
	case EtapaRevisao:
		return "Revisão"
	default:
		return "Desconhecida"
	}
}

// Titulo returns the section heading shown above the step body.
func (e Etapa) Titulo() string {
	switch e {
	case EtapaDeclarante:
		return "Dados do Declarante (Transmitente / Proprietário)"
	case EtapaImovel:
		return "Identificação do Imóvel Rural"
	case EtapaAptidao:
		return "Declaração de Aptidão Agrícola — Uso e Cobertura do Solo"
	case EtapaRevisao:
		return "Revisão e Assinatura da Declaração"
	default:
		return e.String()
	}
}

// Valida reports whether e is one of the four wizard steps.
func (e Etapa) Valida() bool {
	return e >= EtapaDeclarante && e <= EtapaRevisao
}

// Ultima reports whether e is the terminal review step.
func (e Etapa) Ultima() bool {
	return e == EtapaRevisao
}

// Navegador mediates transitions between wizard steps.
type Navegador struct {
	atual Etapa
}

// NovoNavegador starts a navigator at the first step.
func NovoNavegador() *Navegador {
	return &Navegador{atual: EtapaDeclarante}
}

// Atual returns the current step.
func (n *Navegador) Atual() Etapa {
	return n.atual
}

// Progresso returns the fraction of the wizard already traversed,
// in [0, 1], for the progress bar.
func (n *Navegador) Progresso() float64 {
	return float64(n.atual-EtapaDeclarante) / float64(NumEtapas-1)
}

// IrPara attempts a transition to alvo. Backward or same-step moves
// always succeed. A forward move first runs validar against the
// current step and stays put when it fails. The return value reports
// whether the step changed or was re-entered.
func (n *Navegador) IrPara(alvo Etapa, validar func(Etapa) bool) bool {
	if !alvo.Valida() {
		return false
	}
	if alvo > n.atual && validar != nil && !validar(n.atual) {
		return false
	}
	n.atual = alvo
	return true
}
