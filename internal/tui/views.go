// internal/tui/views.go
//
// Rendering of the wizard chrome and the four step bodies. Everything
// here reads the model; nothing mutates it except the viewport content.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/aptidao"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/form"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/wizard"
)

const (
	alturaCabecalho = 5
	alturaRodape    = 2
)

// View implements tea.Model.
func (a *App) View() string {
	if !a.pronto {
		return "Inicializando..."
	}
	a.vp.SetContent(a.corpo())
	return lipgloss.JoinVertical(lipgloss.Left,
		a.cabecalho(),
		a.vp.View(),
		a.rodape(),
	)
}

func (a *App) cabecalho() string {
	titulo := estiloTitulo.Render(a.cfg.Emissor.Titulo)
	sub := estiloSubtitulo.Render(a.cfg.Emissor.Subtitulo)

	var abas []string
	for e := wizard.EtapaDeclarante; e <= wizard.EtapaRevisao; e++ {
		rotulo := fmt.Sprintf("%d. %s", e, e)
		switch {
		case a.sucesso:
			abas = append(abas, estiloAbaFeita.Render("✓ "+rotulo))
		case e == a.nav.Atual():
			abas = append(abas, estiloAbaAtiva.Render(rotulo))
		case e < a.nav.Atual():
			abas = append(abas, estiloAbaFeita.Render("✓ "+rotulo))
		default:
			abas = append(abas, estiloAba.Render(rotulo))
		}
	}

	largura := a.width - 2
	if largura < 20 {
		largura = 20
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titulo,
		sub,
		lipgloss.JoinHorizontal(lipgloss.Top, abas...),
		barraProgresso(a.nav.Progresso(), largura),
		"",
	)
}

func (a *App) rodape() string {
	dicas := fmt.Sprintf("Etapa %d de %d · Tab/↑↓ campos · Enter confirma · Ctrl+←/→ etapas · PgUp/PgDn rolagem · Ctrl+C sai",
		a.nav.Atual(), wizard.NumEtapas)
	linha := a.status
	if a.exportando {
		linha = a.spin.View() + " " + a.status
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		estiloRodape.Render(linha),
		estiloRodape.Render(dicas),
	)
}

func (a *App) corpo() string {
	etapa := a.nav.Atual()
	var secoes []string
	secoes = append(secoes, estiloSecao.Render(etapa.Titulo()), "")

	switch etapa {
	case wizard.EtapaDeclarante:
		secoes = append(secoes, a.corpoDeclarante()...)
	case wizard.EtapaImovel:
		secoes = append(secoes, a.corpoCampos()...)
	case wizard.EtapaAptidao:
		secoes = append(secoes, a.corpoAptidao()...)
	case wizard.EtapaRevisao:
		secoes = append(secoes, a.corpoRevisao()...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, secoes...)
}

func (a *App) corpoDeclarante() []string {
	linhas := a.corpoCampos()
	aviso := estiloAviso.Render("⚠ As informações prestadas são de inteira responsabilidade do declarante.")
	return append([]string{aviso, ""}, linhas...)
}

// corpoCampos renders the step's controls in order, grouping the
// trailing buttons into one row.
func (a *App) corpoCampos() []string {
	ctls := a.visiveis(a.nav.Atual())
	var linhas []string
	var botoes []string
	for i, ctl := range ctls {
		if ctl.tipo == controleBotao {
			botoes = append(botoes, a.renderBotao(ctl, i == a.foco))
			continue
		}
		linhas = append(linhas, a.renderControle(ctl, i == a.foco), "")
	}
	if len(botoes) > 0 {
		linhas = append(linhas, lipgloss.JoinHorizontal(lipgloss.Top, botoes...))
	}
	return linhas
}

func (a *App) renderControle(ctl *controle, focado bool) string {
	rotulo := ctl.rotulo
	if ctl.opcional {
		rotulo += estiloOpcional.Render(" (opcional)")
	}
	estiloR := estiloRotulo
	if focado {
		estiloR = estiloRotuloFoco
	}

	var corpo string
	switch ctl.tipo {
	case controleEnum:
		valor := a.form.Get(ctl.campo)
		if valor == "" {
			valor = estiloOpcional.Render("— selecione —")
		}
		corpo = fmt.Sprintf("◂ %s ▸", valor)
	case controleTextarea:
		corpo = a.obs.View()
	default:
		corpo = ctl.input.View()
	}

	emErro := a.emErro(ctl)
	moldura := estiloCampo
	switch {
	case emErro:
		moldura = estiloCampoErro
	case focado:
		moldura = estiloCampoFoco
	}

	saida := lipgloss.JoinVertical(lipgloss.Left,
		estiloR.Render(rotulo),
		moldura.Render(corpo),
	)
	if emErro && ctl.msgErro != "" {
		saida = lipgloss.JoinVertical(lipgloss.Left, saida, estiloErro.Render("✖ "+ctl.msgErro))
	}
	return saida
}

func (a *App) emErro(ctl *controle) bool {
	switch ctl.tipo {
	case controleArea:
		return a.form.Erros().Tem(form.CampoArea(ctl.areaIdx))
	case controleTexto, controleEnum, controleTextarea:
		return a.form.Erros().Tem(ctl.campo)
	}
	return false
}

func (a *App) renderBotao(ctl *controle, focado bool) string {
	inerte := (ctl.acao == acaoVisualizar || ctl.acao == acaoSalvar) &&
		(!a.consentimento || a.exportando)
	switch {
	case inerte:
		return estiloBotaoInerte.Render(ctl.rotuloBotao)
	case focado:
		return estiloBotaoFoco.Render(ctl.rotuloBotao)
	default:
		return estiloBotao.Render(ctl.rotuloBotao)
	}
}

func (a *App) corpoAptidao() []string {
	ctls := a.visiveis(wizard.EtapaAptidao)
	var linhas []string
	var botoes []string
	cats := aptidao.Categorias()
	for i, ctl := range ctls {
		switch ctl.tipo {
		case controleBotao:
			botoes = append(botoes, a.renderBotao(ctl, i == a.foco))
		case controleArea:
			linhas = append(linhas,
				a.renderControle(ctl, i == a.foco),
				estiloDescricao.Render("  "+cats[ctl.areaIdx].Descricao),
				"",
			)
		default:
			linhas = append(linhas, a.renderControle(ctl, i == a.foco), "")
		}
	}

	linhas = append(linhas, a.totalizador(), "")
	if len(botoes) > 0 {
		linhas = append(linhas, lipgloss.JoinHorizontal(lipgloss.Top, botoes...))
	}
	return linhas
}

// totalizador renders the live reconciliation panel of step 3.
func (a *App) totalizador() string {
	t := a.form.Totais(a.cfg.Conciliacao)
	casas := a.cfg.Conciliacao.CasasDecimais
	// Until a total area exists the comparison figures are meaningless;
	// the panel shows placeholders and raises no alert.
	valorTotal := "— ha"
	valorDiff := "— ha"
	if t.AreaTotal > 0 {
		valorTotal = fmt.Sprintf("%.*f ha", casas, t.AreaTotal)
		valorDiff = fmt.Sprintf("%+.*f ha", casas, t.Diferenca)
	}
	linhas := []string{
		fmt.Sprintf("Soma declarada        %.*f ha", casas, t.Soma),
		"Área total registrada " + valorTotal,
		"Diferença             " + valorDiff,
	}
	if t.AreaTotal > 0 {
		linhas = append(linhas, fmt.Sprintf("%.1f%% declarado", t.Percentual))
	}
	painel := estiloPainel.Render(strings.Join(linhas, "\n"))

	var alerta string
	switch {
	case t.AreaTotal <= 0:
	case t.Soma == 0:
		alerta = estiloInfo.Render("ℹ Informe ao menos uma área para prosseguir.")
	case t.Conciliada:
		alerta = estiloOK.Render("✔ Áreas conciliadas com a área total registrada.")
	case t.Diferenca > 0:
		alerta = estiloAviso.Render(fmt.Sprintf(
			"⚠ A soma excede a área total em %.*f ha.", casas, t.Diferenca))
	default:
		alerta = estiloInfo.Render(fmt.Sprintf(
			"ℹ Faltam %.*f ha para atingir a área total.", casas, -t.Diferenca))
	}

	if a.form.Erros().Tem(form.ErroAptidaoVazia) {
		alerta = estiloErro.Render("✖ Nenhuma área foi declarada.")
	} else if a.form.Erros().Tem(form.ErroAptidaoDiferenca) {
		alerta = estiloErro.Render("✖ A soma das áreas precisa coincidir com a área total registrada.")
	}

	return lipgloss.JoinVertical(lipgloss.Left, painel, alerta)
}

func (a *App) corpoRevisao() []string {
	largura := a.width - 6
	if largura > 78 {
		largura = 78
	}
	if largura < 40 {
		largura = 40
	}

	doc := document.Build(a.form, a.cfg, a.agora())
	visual, err := a.preview.Render(doc)
	if err != nil {
		visual = []byte(estiloErro.Render("✖ Não foi possível montar a pré-visualização."))
	}

	if a.sucesso {
		banner := estiloBanner.Render(strings.Join([]string{
			"✔ DECLARAÇÃO GERADA COM SUCESSO",
			"",
			"Protocolo: " + a.protocolo,
			"Arquivo:   " + a.caminhoSalvo,
		}, "\n"))
		return []string{
			banner,
			"",
			string(visual),
		}
	}

	ctls := a.visiveis(wizard.EtapaRevisao)
	resumo := a.resumoDeclaracao()
	infoData := fmt.Sprintf("📅 Data da declaração: %s  |  🌐 Origem: %s",
		document.FormatarDataLonga(a.agora()), a.cfg.Emissor.Origem)
	var consentLinha string
	var botoes []string
	for i, ctl := range ctls {
		switch ctl.tipo {
		case controleCheck:
			caixa := "[ ]"
			if a.consentimento {
				caixa = "[x]"
			}
			estilo := estiloRotulo
			if i == a.foco {
				estilo = estiloRotuloFoco
			}
			consentLinha = lipgloss.JoinHorizontal(lipgloss.Top,
				estilo.Render(caixa+" "),
				lipgloss.NewStyle().Width(largura-6).Render(document.ClausulaDeclaracao),
			)
		case controleBotao:
			botoes = append(botoes, a.renderBotao(ctl, i == a.foco))
		}
	}

	return []string{
		string(visual),
		"",
		lipgloss.NewStyle().Width(largura).Render(resumo),
		"",
		estiloPainel.Width(largura).Render(consentLinha),
		estiloInfo.Render(infoData),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, botoes...),
	}
}

// resumoDeclaracao condenses the declaration into the one-paragraph
// summary shown beside the consent checkbox.
func (a *App) resumoDeclaracao() string {
	e := a.form
	t := e.Totais(a.cfg.Conciliacao)
	casas := a.cfg.Conciliacao.CasasDecimais
	conjuge := ""
	if e.EstadoCivil.ExigeConjuge() {
		conjuge = fmt.Sprintf(", e seu cônjuge %s, CPF %s, RG %s",
			ouTraco(e.NomeConjuge), ouTraco(e.CPFConjuge), ouTraco(e.RGConjuge))
	}
	return fmt.Sprintf("%s, %s, %s, CPF %s, RG %s%s, residente à %s, %s — responsável "+
		"pelo imóvel rural objeto da Matrícula nº %s, %s, medindo %.*f ha, localizado em %s, "+
		"declara, sob as penas da lei, a aptidão agrícola do imóvel conforme tabela preenchida.",
		e.Nome, e.Profissao, strings.ToLower(string(e.EstadoCivil)), e.CPF, e.RG, conjuge,
		e.Endereco, a.cfg.Emissor.Local, e.Matricula, e.Cartorio, casas, t.AreaTotal,
		e.Localizacao)
}

func ouTraco(v string) string {
	if strings.TrimSpace(v) == "" {
		return "___"
	}
	return v
}
