package export

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/RomuloMaltez/declaracao-ITBI-rural/internal/document"
)

type rendererFalso struct {
	saida []byte
	err   error
}

func (r *rendererFalso) Name() string { return "falso" }

func (r *rendererFalso) Render(*document.Documento) ([]byte, error) {
	return r.saida, r.err
}

func documentoMinimo() *document.Documento {
	return &document.Documento{
		Assinaturas: document.Assinaturas{NomeDeclarante: "José da Silva"},
	}
}

func exportadorTeste(dir string, r document.Renderer) *Exportador {
	x := Novo(dir, r)
	x.rng = rand.New(rand.NewSource(1))
	x.agora = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }
	return x
}

func TestNovoProtocoloFormato(t *testing.T) {
	x := exportadorTeste(t.TempDir(), &rendererFalso{})
	padrao := regexp.MustCompile(`^ITBI-2024-\d{5}$`)
	for i := 0; i < 50; i++ {
		p := x.NovoProtocolo()
		if !padrao.MatchString(p) {
			t.Fatalf("protocolo %q does not match ITBI-{ano}-{5 dígitos}", p)
		}
	}
}

func TestSanitizarNome(t *testing.T) {
	casos := []struct {
		entrada string
		quer    string
	}{
		{"José da Silva", "Jose_da_Silva"},
		{"Antônio   Carlos", "Antonio_Carlos"},
		{"Maria-Luiza d'Ávila", "Maria_Luiza_d_Avila"},
		{"", ""},
		{"Pedro Henrique de Alcântara Bragança e Bourbon", "Pedro_Henrique_de_Alcantara_Br"},
	}
	for _, c := range casos {
		if got := SanitizarNome(c.entrada); got != c.quer {
			t.Errorf("SanitizarNome(%q) = %q, want %q", c.entrada, got, c.quer)
		}
	}
	if n := len(SanitizarNome(strings.Repeat("a", 60))); n != 30 {
		t.Errorf("sanitized name length = %d, want 30", n)
	}
}

func TestNomeArquivo(t *testing.T) {
	data := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	quer := "Declaracao_Aptidao_Agricola_Jose_da_Silva_2024-03-15.pdf"
	if got := NomeArquivo("José da Silva", data); got != quer {
		t.Fatalf("NomeArquivo = %q, want %q", got, quer)
	}
}

func TestExecutarSalvar(t *testing.T) {
	dir := t.TempDir()
	x := exportadorTeste(dir, &rendererFalso{saida: []byte("%PDF-falso")})
	res, err := x.Executar(documentoMinimo(), ModoSalvar)
	if err != nil {
		t.Fatalf("executar: %v", err)
	}
	quer := filepath.Join(dir, "Declaracao_Aptidao_Agricola_Jose_da_Silva_2024-03-15.pdf")
	if res.Caminho != quer {
		t.Fatalf("Caminho = %q, want %q", res.Caminho, quer)
	}
	conteudo, err := os.ReadFile(res.Caminho)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if string(conteudo) != "%PDF-falso" {
		t.Fatalf("artifact content = %q", conteudo)
	}
	restos, _ := filepath.Glob(filepath.Join(dir, ".declaracao-*.tmp"))
	if len(restos) != 0 {
		t.Fatalf("work files left behind: %v", restos)
	}
}

func TestExecutarFalhaDeRenderNaoDeixaArtefato(t *testing.T) {
	dir := t.TempDir()
	x := exportadorTeste(dir, &rendererFalso{err: errors.New("boom")})
	if _, err := x.Executar(documentoMinimo(), ModoSalvar); err == nil {
		t.Fatalf("render failure must propagate")
	}
	entradas, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entradas) != 0 {
		t.Fatalf("no artifact should exist after failure, found %d entries", len(entradas))
	}
}

func TestExecutarVisualizar(t *testing.T) {
	dir := t.TempDir()
	x := exportadorTeste(dir, &rendererFalso{saida: []byte("%PDF-falso")})
	var aberto string
	x.abrir = func(caminho string) error {
		aberto = caminho
		return nil
	}
	res, err := x.Executar(documentoMinimo(), ModoVisualizar)
	if err != nil {
		t.Fatalf("executar: %v", err)
	}
	defer os.Remove(res.Caminho)
	if aberto != res.Caminho {
		t.Fatalf("viewer opened %q, result says %q", aberto, res.Caminho)
	}
	if filepath.Dir(res.Caminho) == dir {
		t.Fatalf("preview artifact must not land in the export directory")
	}
	entradas, _ := os.ReadDir(dir)
	if len(entradas) != 0 {
		t.Fatalf("preview must not persist into the export directory")
	}
}

func TestModoString(t *testing.T) {
	if ModoVisualizar.String() != "visualizar" || ModoSalvar.String() != "salvar" {
		t.Fatalf("mode labels wrong: %q %q", ModoVisualizar, ModoSalvar)
	}
}
