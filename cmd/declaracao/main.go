// cmd/declaracao/main.go
//
// Entry point for the rural ITBI declaration wizard.
//
// Flow:
// 1. Resolve configuration (compiled-in defaults + optional overlay)
// 2. Open the session logbook next to the export directory
// 3. Run the TUI until the user quits

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/config"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document/pdf"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/export"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/logbook"
	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "caminho para um declaracao.yaml alternativo")
	saida := flag.String("saida", "", "diretório de exportação (sobrepõe a configuração)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}
	if *saida != "" {
		cfg.Exportacao.Diretorio = *saida
	}

	// A broken logbook never blocks the wizard; a nil logbook simply
	// discards entries.
	lb, err := logbook.Abrir(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Aviso: registro de sessão indisponível: %v\n", err)
	}
	defer lb.Close()

	exportador := export.Novo(cfg.Exportacao.Diretorio, pdf.Novo(pdf.LayoutPadrao()))

	p := tea.NewProgram(
		tui.NewApp(cfg, lb, exportador),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao executar a interface: %v\n", err)
		os.Exit(1)
	}
}
