// internal/tui/app.go
//
// The wizard shell: a single Bubble Tea model that owns the form
// state, the step navigator, and the export pipeline. All mutation of
// the session happens inside Update; View is a pure projection.

package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document/texto"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/export"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/form"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/logbook"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/wizard"
)

// exportacaoConcluidaMsg reports the outcome of a background export.
type exportacaoConcluidaMsg struct {
	res export.Resultado
	err error
}

// App is the top-level Bubble Tea model.
type App struct {
	cfg        *config.Config
	log        *logbook.Logbook
	form       *form.Estado
	nav        *wizard.Navegador
	exportador *export.Exportador
	preview    document.Renderer

	campos map[wizard.Etapa][]*controle
	obs    textarea.Model
	spin   spinner.Model
	vp     viewport.Model

	foco          int
	consentimento bool
	exportando    bool
	sucesso       bool
	protocolo     string
	caminhoSalvo  string
	status        string

	agora func() time.Time

	width  int
	height int
	pronto bool
}

// NewApp wires the wizard together. The exporter decides where saved
// documents land; log may be nil.
func NewApp(cfg *config.Config, lb *logbook.Logbook, x *export.Exportador) *App {
	obs := textarea.New()
	obs.Placeholder = "Benfeitorias, culturas existentes, particularidades do imóvel..."
	obs.SetHeight(3)
	obs.CharLimit = 600
	obs.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	a := &App{
		cfg:        cfg,
		log:        lb,
		form:       form.Novo(),
		nav:        wizard.NovoNavegador(),
		exportador: x,
		preview:    texto.Novo(0),
		campos:     montarCampos(cfg),
		obs:        obs,
		spin:       sp,
		vp:         viewport.New(80, 24),
		agora:      time.Now,
	}
	a.sincronizarFoco()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.log.Info("sessão iniciada")
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		alturaCorpo := msg.Height - alturaCabecalho - alturaRodape
		if alturaCorpo < 4 {
			alturaCorpo = 4
		}
		a.vp.Width = msg.Width
		a.vp.Height = alturaCorpo
		larguraInput := msg.Width - 10
		if larguraInput > 60 {
			larguraInput = 60
		}
		if larguraInput < 20 {
			larguraInput = 20
		}
		for _, etapa := range a.campos {
			for _, ctl := range etapa {
				switch ctl.tipo {
				case controleTexto, controleArea:
					ctl.input.Width = larguraInput
				}
			}
		}
		a.obs.SetWidth(larguraInput)
		a.pronto = true
		return a, nil

	case spinner.TickMsg:
		if !a.exportando {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case exportacaoConcluidaMsg:
		return a.concluirExportacao(msg)

	case tea.KeyMsg:
		return a.tecla(msg)
	}
	return a, nil
}

// tecla handles one keystroke.
func (a *App) tecla(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	etapa := a.nav.Atual()
	ctls := a.visiveis(etapa)
	var atual *controle
	if a.foco >= 0 && a.foco < len(ctls) {
		atual = ctls[a.foco]
	}

	switch msg.String() {
	case "ctrl+c":
		a.log.Info("sessão encerrada")
		return a, tea.Quit

	case "ctrl+right":
		a.irPara(etapa + 1)
		return a, nil

	case "ctrl+left":
		a.irPara(etapa - 1)
		return a, nil

	case "pgup":
		a.vp.ViewUp()
		return a, nil

	case "pgdown":
		a.vp.ViewDown()
		return a, nil

	case "tab":
		a.moverFoco(1)
		return a, nil

	case "shift+tab":
		a.moverFoco(-1)
		return a, nil

	case "up", "down":
		if atual != nil && atual.tipo == controleTextarea {
			return a.delegar(atual, msg)
		}
		if msg.String() == "down" {
			a.moverFoco(1)
		} else {
			a.moverFoco(-1)
		}
		return a, nil

	case "left", "right":
		if atual != nil && atual.tipo == controleEnum {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			a.cicloEnum(atual, delta)
			return a, nil
		}
		return a.delegar(atual, msg)

	case " ":
		if atual != nil && atual.tipo == controleCheck {
			a.consentimento = !a.consentimento
			return a, nil
		}
		return a.delegar(atual, msg)

	case "enter":
		if atual == nil {
			return a, nil
		}
		switch atual.tipo {
		case controleBotao:
			return a.acionar(atual)
		case controleCheck:
			a.consentimento = !a.consentimento
			return a, nil
		case controleTextarea:
			return a.delegar(atual, msg)
		default:
			a.moverFoco(1)
			return a, nil
		}
	}

	return a.delegar(atual, msg)
}

// delegar routes a keystroke into the focused widget and syncs the
// resulting value back into the form store.
func (a *App) delegar(ctl *controle, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ctl == nil {
		return a, nil
	}
	var cmd tea.Cmd
	switch ctl.tipo {
	case controleTexto:
		ctl.input, cmd = ctl.input.Update(msg)
		a.form.Set(ctl.campo, ctl.input.Value())
		// CPF fields echo the progressive mask back into the widget.
		if masked := a.form.Get(ctl.campo); masked != ctl.input.Value() {
			ctl.input.SetValue(masked)
			ctl.input.CursorEnd()
		}
	case controleArea:
		ctl.input, cmd = ctl.input.Update(msg)
		a.form.SetArea(ctl.areaIdx, ctl.input.Value())
	case controleTextarea:
		a.obs, cmd = a.obs.Update(msg)
		a.form.Set(form.CampoObservacoes, a.obs.Value())
	}
	return a, cmd
}

// cicloEnum advances an enumerated field through its options.
func (a *App) cicloEnum(ctl *controle, delta int) {
	atual := a.form.Get(ctl.campo)
	idx := -1
	for i, o := range ctl.opcoes {
		if o == atual {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(ctl.opcoes) - 1
	}
	if idx >= len(ctl.opcoes) {
		idx = 0
	}
	a.form.Set(ctl.campo, ctl.opcoes[idx])
}

// acionar runs a button control.
func (a *App) acionar(ctl *controle) (tea.Model, tea.Cmd) {
	switch ctl.acao {
	case acaoAnterior:
		a.irPara(a.nav.Atual() - 1)
	case acaoProximo:
		a.irPara(a.nav.Atual() + 1)
	case acaoVisualizar:
		return a, a.iniciarExportacao(export.ModoVisualizar)
	case acaoSalvar:
		return a, a.iniciarExportacao(export.ModoSalvar)
	}
	return a, nil
}

// irPara asks the navigator for a transition, validating the current
// step on forward movement.
func (a *App) irPara(alvo wizard.Etapa) {
	// A generated declaration is final; the success view offers no way
	// back into the editable steps.
	if a.sucesso {
		return
	}
	de := a.nav.Atual()
	ok := a.nav.IrPara(alvo, func(e wizard.Etapa) bool {
		return a.form.ValidarEtapa(e, a.cfg.Conciliacao)
	})
	if !ok {
		if alvo.Valida() {
			a.status = "Corrija os campos destacados antes de avançar."
			a.log.Aviso("etapa %d bloqueada por validação", de)
		}
		return
	}
	a.status = ""
	a.foco = 0
	a.vp.GotoTop()
	a.sincronizarFoco()
	if alvo != de {
		a.log.Info("navegação: etapa %d → etapa %d", de, alvo)
	}
}

// iniciarExportacao kicks off PDF generation, guarding against both a
// missing consent and a generation already in flight.
func (a *App) iniciarExportacao(modo export.Modo) tea.Cmd {
	if !a.consentimento {
		a.status = "Marque a declaração de veracidade antes de gerar o documento."
		return nil
	}
	if a.exportando {
		return nil
	}
	a.exportando = true
	a.status = "Gerando documento..."

	doc := document.Build(a.form, a.cfg, a.agora())
	doc.Protocolo = a.exportador.NovoProtocolo()
	a.protocolo = doc.Protocolo

	x := a.exportador
	return tea.Batch(
		a.spin.Tick,
		func() tea.Msg {
			res, err := x.Executar(doc, modo)
			return exportacaoConcluidaMsg{res: res, err: err}
		},
	)
}

// concluirExportacao folds the export outcome back into the model.
func (a *App) concluirExportacao(msg exportacaoConcluidaMsg) (tea.Model, tea.Cmd) {
	a.exportando = false
	if msg.err != nil {
		a.status = "Falha ao gerar o documento. Tente novamente."
		a.log.Erro("exportação (%s) falhou: %v", msg.res.Modo, msg.err)
		return a, nil
	}
	a.log.Info("exportação (%s) concluída: %s protocolo %s",
		msg.res.Modo, msg.res.Caminho, msg.res.Protocolo)
	if msg.res.Modo == export.ModoSalvar {
		a.sucesso = true
		a.caminhoSalvo = msg.res.Caminho
		a.status = "Documento salvo: " + filepath.Base(msg.res.Caminho)
		a.foco = 0
		a.vp.GotoTop()
	} else {
		a.status = "Pré-visualização aberta no leitor de PDF."
	}
	return a, nil
}

// moverFoco shifts focus by delta inside the current step, wrapping.
func (a *App) moverFoco(delta int) {
	ctls := a.visiveis(a.nav.Atual())
	if len(ctls) == 0 {
		return
	}
	a.foco = (a.foco + delta + len(ctls)) % len(ctls)
	a.sincronizarFoco()
}

// sincronizarFoco grants widget focus to the focused control and
// refreshes every widget's value from the store.
func (a *App) sincronizarFoco() {
	ctls := a.visiveis(a.nav.Atual())
	if a.foco >= len(ctls) {
		a.foco = 0
	}
	for i, ctl := range ctls {
		focado := i == a.foco
		switch ctl.tipo {
		case controleTexto:
			ctl.input.SetValue(a.form.Get(ctl.campo))
			if focado {
				ctl.input.Focus()
				ctl.input.CursorEnd()
			} else {
				ctl.input.Blur()
			}
		case controleArea:
			ctl.input.SetValue(a.form.Areas[ctl.areaIdx])
			if focado {
				ctl.input.Focus()
				ctl.input.CursorEnd()
			} else {
				ctl.input.Blur()
			}
		case controleTextarea:
			a.obs.SetValue(a.form.Observacoes)
			if focado {
				a.obs.Focus()
			} else {
				a.obs.Blur()
			}
		}
	}
}
