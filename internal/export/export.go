// internal/export/export.go
//
// Export orchestration: protocol identifier, filename convention, and
// the preview/save delivery of the rendered PDF. The caller (the TUI)
// owns the "generation in progress" and "generation succeeded" flags;
// this package only produces artifacts.

package export

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document"
)

// Modo selects the delivery of the rendered document.
type Modo int

const (
	// ModoVisualizar produces a transient artifact and opens it in
	// the platform viewer; nothing is kept in the export directory.
	ModoVisualizar Modo = iota
	// ModoSalvar persists the artifact under the export directory.
	ModoSalvar
)

// String returns the action label for the mode.
func (m Modo) String() string {
	if m == ModoSalvar {
		return "salvar"
	}
	return "visualizar"
}

// Resultado describes one completed export.
type Resultado struct {
	Modo      Modo
	Caminho   string
	Protocolo string
}

// Exportador renders documents and delivers the artifact.
type Exportador struct {
	Diretorio string
	Renderer  document.Renderer

	// abrir opens a file in the platform viewer; replaceable in tests.
	abrir func(caminho string) error
	rng   *rand.Rand
	agora func() time.Time
}

// Novo creates an exporter that writes saved documents under dir.
func Novo(dir string, r document.Renderer) *Exportador {
	return &Exportador{
		Diretorio: dir,
		Renderer:  r,
		abrir:     abrirVisualizador,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		agora:     time.Now,
	}
}

// NovoProtocolo builds the cosmetic session-local reference in the
// form ITBI-{year}-{5 digits}. It offers no uniqueness guarantee and
// is never checked against prior submissions.
func (x *Exportador) NovoProtocolo() string {
	return fmt.Sprintf("ITBI-%d-%05d", x.agora().Year(), x.rng.Intn(99999)+1)
}

// Executar renders doc and delivers it according to modo. In save
// mode the artifact is written to a temporary file first and renamed
// into place only on success, so no partial artifact is ever left
// behind.
func (x *Exportador) Executar(doc *document.Documento, modo Modo) (Resultado, error) {
	res := Resultado{Modo: modo, Protocolo: doc.Protocolo}
	conteudo, err := x.Renderer.Render(doc)
	if err != nil {
		return res, fmt.Errorf("export: rendering document: %w", err)
	}

	if modo == ModoVisualizar {
		tmp, err := os.CreateTemp("", "declaracao-*.pdf")
		if err != nil {
			return res, fmt.Errorf("export: creating preview file: %w", err)
		}
		if _, err := tmp.Write(conteudo); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return res, fmt.Errorf("export: writing preview file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			return res, fmt.Errorf("export: closing preview file: %w", err)
		}
		res.Caminho = tmp.Name()
		if err := x.abrir(tmp.Name()); err != nil {
			return res, fmt.Errorf("export: opening viewer: %w", err)
		}
		return res, nil
	}

	nome := NomeArquivo(doc.Assinaturas.NomeDeclarante, x.agora())
	destino := filepath.Join(x.Diretorio, nome)
	tmp, err := os.CreateTemp(x.Diretorio, ".declaracao-*.tmp")
	if err != nil {
		return res, fmt.Errorf("export: creating work file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(conteudo); err != nil {
		tmp.Close()
		return res, fmt.Errorf("export: writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return res, fmt.Errorf("export: closing work file: %w", err)
	}
	if err := os.Rename(tmp.Name(), destino); err != nil {
		return res, fmt.Errorf("export: saving %s: %w", nome, err)
	}
	res.Caminho = destino
	return res, nil
}

// NomeArquivo derives the export filename from the declarant's name
// and the export date: Declaracao_Aptidao_Agricola_{nome}_{data}.pdf.
func NomeArquivo(nome string, data time.Time) string {
	return fmt.Sprintf("Declaracao_Aptidao_Agricola_%s_%s.pdf",
		SanitizarNome(nome), data.Format("2006-01-02"))
}

// SanitizarNome folds accents and reduces the name to underscore
// joined alphanumeric runs, truncated to 30 characters.
func SanitizarNome(nome string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, nome)
	if err != nil {
		plano = nome
	}
	var grupos []string
	var atual strings.Builder
	for _, r := range plano {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			atual.WriteRune(r)
			continue
		}
		if atual.Len() > 0 {
			grupos = append(grupos, atual.String())
			atual.Reset()
		}
	}
	if atual.Len() > 0 {
		grupos = append(grupos, atual.String())
	}
	saida := strings.Join(grupos, "_")
	if len(saida) > 30 {
		saida = saida[:30]
	}
	return saida
}

func abrirVisualizador(caminho string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", caminho)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", caminho)
	default:
		cmd = exec.Command("xdg-open", caminho)
	}
	return cmd.Start()
}
