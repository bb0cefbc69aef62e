package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	if len(cfg.Cartorios) != 3 {
		t.Fatalf("len(Cartorios) = %d, want 3", len(cfg.Cartorios))
	}
	if cfg.Conciliacao.Tolerancia != 0.0001 {
		t.Fatalf("tolerancia = %v, want 0.0001", cfg.Conciliacao.Tolerancia)
	}
	if cfg.Conciliacao.CasasDecimais != 4 {
		t.Fatalf("casas_decimais = %d, want 4", cfg.Conciliacao.CasasDecimais)
	}
	if cfg.Emissor.Titulo == "" || cfg.Emissor.Local == "" {
		t.Fatalf("emissor incomplete: %+v", cfg.Emissor)
	}
	if cfg.Exportacao.Diretorio == "" {
		t.Fatalf("export directory should default to the working directory")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "declaracao.yaml")
	overlay := "exportacao:\n  diretorio: " + dir + "\nemissor:\n  local: \"Candeias do Jamari/RO\"\n"
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Emissor.Local != "Candeias do Jamari/RO" {
		t.Fatalf("local = %q, want overlay value", cfg.Emissor.Local)
	}
	// Fields absent from the overlay keep their defaults.
	if cfg.Emissor.Titulo != "DECLARAÇÃO DE APTIDÃO AGRÍCOLA" {
		t.Fatalf("titulo lost its default: %q", cfg.Emissor.Titulo)
	}
	if cfg.Exportacao.Diretorio != dir {
		t.Fatalf("diretorio = %q, want %q", cfg.Exportacao.Diretorio, dir)
	}
	if got, want := cfg.LogPath(), filepath.Join(dir, "declaracao.log"); got != want {
		t.Fatalf("LogPath() = %q, want %q", got, want)
	}
}

func TestLoadMissingExplicitOverlayFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nao-existe.yaml")); err == nil {
		t.Fatalf("explicit missing overlay should fail")
	}
}

func TestLoadRejectsBadConstants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "declaracao.yaml")
	if err := os.WriteFile(path, []byte("conciliacao:\n  tolerancia: -1\n"), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("negative tolerance should be rejected")
	}
}
