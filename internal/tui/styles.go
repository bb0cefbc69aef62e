package tui

import "github.com/charmbracelet/lipgloss"

var (
	corVerde   = lipgloss.Color("#1a4731")
	corDourado = lipgloss.Color("#c9973a")
	corErro    = lipgloss.Color("#b91c1c")
	corAviso   = lipgloss.Color("#b45309")
	corOK      = lipgloss.Color("#15803d")
	corCinza   = lipgloss.Color("#6b7280")

	estiloTitulo = lipgloss.NewStyle().
			Background(corVerde).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1)
	estiloSubtitulo = lipgloss.NewStyle().Foreground(corCinza)

	estiloAbaAtiva = lipgloss.NewStyle().
			Background(corDourado).
			Foreground(lipgloss.Color("#1a1a1a")).
			Bold(true).
			Padding(0, 1)
	estiloAbaFeita = lipgloss.NewStyle().Foreground(corOK).Padding(0, 1)
	estiloAba      = lipgloss.NewStyle().Foreground(corCinza).Padding(0, 1)

	estiloSecao = lipgloss.NewStyle().
			Bold(true).
			Foreground(corVerde).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(corDourado)

	estiloRotulo     = lipgloss.NewStyle().Bold(true)
	estiloRotuloFoco = lipgloss.NewStyle().Bold(true).Foreground(corDourado)
	estiloOpcional   = lipgloss.NewStyle().Foreground(corCinza)
	estiloErro       = lipgloss.NewStyle().Foreground(corErro)
	estiloAviso      = lipgloss.NewStyle().Foreground(corAviso)
	estiloInfo       = lipgloss.NewStyle().Foreground(corCinza)
	estiloOK         = lipgloss.NewStyle().Foreground(corOK)
	estiloDescricao  = lipgloss.NewStyle().Foreground(corCinza).Italic(true)

	estiloCampo = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(corCinza).
			Padding(0, 1)
	estiloCampoFoco = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(corDourado).
			Padding(0, 1)
	estiloCampoErro = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(corErro).
			Padding(0, 1)

	estiloBotao = lipgloss.NewStyle().
			Foreground(corVerde).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(corCinza).
			Padding(0, 2)
	estiloBotaoFoco = lipgloss.NewStyle().
			Background(corVerde).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(corDourado).
			Padding(0, 2)
	estiloBotaoInerte = lipgloss.NewStyle().
				Foreground(corCinza).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(corCinza).
				Padding(0, 2)

	estiloPainel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(corVerde).
			Padding(0, 1)
	estiloBanner = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(corOK).
			Foreground(corOK).
			Bold(true).
			Padding(1, 2)

	estiloRodape = lipgloss.NewStyle().Foreground(corCinza)
)

func barraProgresso(fracao float64, largura int) string {
	if largura < 4 {
		largura = 4
	}
	cheios := int(fracao*float64(largura) + 0.5)
	if cheios > largura {
		cheios = largura
	}
	barra := ""
	for i := 0; i < largura; i++ {
		if i < cheios {
			barra += "█"
		} else {
			barra += "░"
		}
	}
	return lipgloss.NewStyle().Foreground(corDourado).Render(barra)
}
