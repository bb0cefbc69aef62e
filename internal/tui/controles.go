// internal/tui/controles.go
//
// Field controls for the wizard. Every step owns an ordered list of
// controls; the form state store remains the single source of truth
// and the widgets are synchronized from it.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/aptidao"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/form"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/wizard"
)

type tipoControle int

const (
	controleTexto tipoControle = iota
	controleEnum
	controleArea
	controleTextarea
	controleCheck
	controleBotao
)

type acaoBotao int

const (
	acaoNenhuma acaoBotao = iota
	acaoAnterior
	acaoProximo
	acaoVisualizar
	acaoSalvar
)

type controle struct {
	tipo        tipoControle
	campo       form.Campo
	areaIdx     int // catalog position for controleArea
	rotulo      string
	opcional    bool
	conjuge     bool // visible only when the marital status requires a spouse
	msgErro     string
	opcoes      []string
	acao        acaoBotao
	rotuloBotao string
	input       textinput.Model
}

func novoTexto(campo form.Campo, rotulo, dica, msgErro string) *controle {
	ti := textinput.New()
	ti.Placeholder = dica
	ti.Prompt = ""
	return &controle{tipo: controleTexto, campo: campo, areaIdx: -1, rotulo: rotulo, msgErro: msgErro, input: ti}
}

func novoCPF(campo form.Campo, rotulo string) *controle {
	ctl := novoTexto(campo, rotulo, "000.000.000-00", "CPF inválido.")
	ctl.input.CharLimit = 14
	return ctl
}

func novoOpcional(campo form.Campo, rotulo, dica string) *controle {
	ctl := novoTexto(campo, rotulo, dica, "")
	ctl.opcional = true
	return ctl
}

func novoEnum(campo form.Campo, rotulo string, opcoes []string, msgErro string) *controle {
	return &controle{tipo: controleEnum, campo: campo, areaIdx: -1, rotulo: rotulo, opcoes: opcoes, msgErro: msgErro}
}

func novaArea(idx int, cat aptidao.Categoria) *controle {
	ti := textinput.New()
	ti.Placeholder = "0.0000"
	ti.Prompt = ""
	ti.CharLimit = 12
	return &controle{
		tipo:    controleArea,
		areaIdx: idx,
		rotulo:  fmt.Sprintf("%s %s", cat.Icone, cat.Rotulo),
		msgErro: "A área não pode ser negativa.",
		input:   ti,
	}
}

func novoBotao(acao acaoBotao, rotulo string) *controle {
	return &controle{tipo: controleBotao, areaIdx: -1, acao: acao, rotuloBotao: rotulo}
}

// montarCampos builds every control of the wizard, in step order.
func montarCampos(cfg *config.Config) map[wizard.Etapa][]*controle {
	estados := make([]string, 0, len(form.EstadosCivis()))
	for _, e := range form.EstadosCivis() {
		estados = append(estados, string(e))
	}

	campos := map[wizard.Etapa][]*controle{}

	nome := novoTexto(form.CampoNome, "Nome completo", "Nome completo do proprietário", "Informe o nome completo.")
	rg := novoTexto(form.CampoRG, "RG", "Número e órgão emissor", "Informe o RG.")
	profissao := novoTexto(form.CampoProfissao, "Profissão / Atividade", "Ex.: agricultor, empresário...", "Informe a profissão.")
	endereco := novoTexto(form.CampoEndereco, "Endereço residencial", "Logradouro, número, bairro, CEP", "Informe o endereço.")
	nomeConjuge := novoTexto(form.CampoNomeConjuge, "Nome do cônjuge", "Nome completo do cônjuge", "Informe o nome do cônjuge.")
	rgConjuge := novoTexto(form.CampoRGConjuge, "RG do cônjuge", "Número e órgão emissor", "Informe o RG do cônjuge.")
	cpfConjuge := novoCPF(form.CampoCPFConjuge, "CPF do cônjuge")
	for _, ctl := range []*controle{nomeConjuge, cpfConjuge, rgConjuge} {
		ctl.conjuge = true
	}
	campos[wizard.EtapaDeclarante] = []*controle{
		nome,
		novoCPF(form.CampoCPF, "CPF"),
		rg,
		novoEnum(form.CampoEstadoCivil, "Estado civil", estados, "Selecione o estado civil."),
		profissao,
		novoOpcional(form.CampoEmail, "E-mail", "contato@exemplo.com"),
		endereco,
		nomeConjuge,
		cpfConjuge,
		rgConjuge,
		novoBotao(acaoProximo, "Próximo →"),
	}

	areaTotal := novoTexto(form.CampoAreaTotal, "Área total registrada (ha)", "0.0000", "Informe a área total válida.")
	areaTotal.input.CharLimit = 12
	campos[wizard.EtapaImovel] = []*controle{
		novoTexto(form.CampoMatricula, "Matrícula nº", "Ex.: 45.678", "Informe o número da matrícula."),
		novoEnum(form.CampoCartorio, "Cartório (Ofício de RI)", cfg.Cartorios, "Selecione o cartório."),
		novoOpcional(form.CampoNomeImovel, "Denominação / Nome da propriedade", "Ex.: Fazenda Bela Vista, Sítio Esperança..."),
		novoTexto(form.CampoLocalizacao, "Localização / Endereço rural", "Rodovia, linha, zona, comunidade — Município/UF", "Informe a localização do imóvel."),
		areaTotal,
		novoOpcional(form.CampoCCIR, "Número do CCIR", "Certificado de Cadastro de Imóvel Rural"),
		novoOpcional(form.CampoNIRF, "Número do NIRF / CAFIR", "Cadastro na Receita Federal"),
		novoOpcional(form.CampoProcessoITBI, "Processo ITBI nº", "Número do processo administrativo"),
		novoBotao(acaoAnterior, "← Anterior"),
		novoBotao(acaoProximo, "Próximo →"),
	}

	etapa3 := make([]*controle, 0, aptidao.NumCategorias+3)
	for i, cat := range aptidao.Categorias() {
		etapa3 = append(etapa3, novaArea(i, cat))
	}
	etapa3 = append(etapa3,
		&controle{tipo: controleTextarea, campo: form.CampoObservacoes, areaIdx: -1, rotulo: "Observações adicionais", opcional: true},
		novoBotao(acaoAnterior, "← Anterior"),
		novoBotao(acaoProximo, "Revisar e Assinar →"),
	)
	campos[wizard.EtapaAptidao] = etapa3

	campos[wizard.EtapaRevisao] = []*controle{
		{tipo: controleCheck, areaIdx: -1},
		novoBotao(acaoAnterior, "← Anterior"),
		novoBotao(acaoVisualizar, "👁 Visualizar PDF"),
		novoBotao(acaoSalvar, "🖨 Gerar PDF"),
	}

	return campos
}

// visiveis filters the step's controls for the current form state:
// spouse fields only appear when required, and the review actions
// disappear after a successful export.
func (a *App) visiveis(etapa wizard.Etapa) []*controle {
	todos := a.campos[etapa]
	out := make([]*controle, 0, len(todos))
	for _, ctl := range todos {
		if ctl.conjuge && !a.form.EstadoCivil.ExigeConjuge() {
			continue
		}
		if a.sucesso && etapa == wizard.EtapaRevisao {
			continue
		}
		out = append(out, ctl)
	}
	return out
}
