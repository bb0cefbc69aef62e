package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRegistrarFormato(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "declaracao.log")
	lb, err := Abrir(path)
	if err != nil {
		t.Fatalf("abrir: %v", err)
	}
	lb.agora = func() time.Time {
		return time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)
	}
	lb.Info("sessão iniciada")
	lb.Aviso("etapa %d bloqueada", 3)
	lb.Erro("exportação falhou: %v", os.ErrPermission)
	if err := lb.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	conteudo, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	linhas := strings.Split(strings.TrimSpace(string(conteudo)), "\n")
	if len(linhas) != 3 {
		t.Fatalf("len(linhas) = %d, want 3", len(linhas))
	}
	if !strings.HasPrefix(linhas[0], "2024-03-15T12:30:00Z INFO ") {
		t.Fatalf("line 0 = %q", linhas[0])
	}
	if !strings.Contains(linhas[1], "WARN  etapa 3 bloqueada") {
		t.Fatalf("line 1 = %q", linhas[1])
	}
	if !strings.Contains(linhas[2], "ERROR exportação falhou") {
		t.Fatalf("line 2 = %q", linhas[2])
	}
}

func TestLogbookNuloEhSeguro(t *testing.T) {
	var lb *Logbook
	lb.Info("ignorado")
	lb.Aviso("ignorado")
	lb.Erro("ignorado")
	if lb.Path() != "" {
		t.Fatalf("nil Path() = %q", lb.Path())
	}
	if err := lb.Close(); err != nil {
		t.Fatalf("nil Close() = %v", err)
	}
}

func TestRegistrarDepoisDeClose(t *testing.T) {
	lb, err := Abrir(filepath.Join(t.TempDir(), "declaracao.log"))
	if err != nil {
		t.Fatalf("abrir: %v", err)
	}
	if err := lb.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	lb.Info("descartado sem pânico")
}
