// internal/config/config.go
//
// Runtime configuration for the declaration wizard. Defaults are
// compiled in as YAML; an optional declaracao.yaml overlay may
// override the issuer identity, the registry-office list, the export
// directory, or the reconciliation constants.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the default name of the optional overlay file.
const FileName = "declaracao.yaml"

const defaultConfigYAML = `# declaracao-itbi-rural configuration
version: 1

emissor:
  orgao: "Prefeitura Municipal de Porto Velho · Secretaria Municipal de Economia"
  secretaria: "Secretaria Executiva da Receita Municipal — SERM"
  titulo: "DECLARAÇÃO DE APTIDÃO AGRÍCOLA"
  subtitulo: "ITBI — Imóvel Rural | Porto Velho / RO"
  local: "Porto Velho/RO"
  origem: "Portal SEMEC / Porto Velho-RO"

cartorios:
  - "1º Ofício de Registro de Imóveis"
  - "2º Ofício de Registro de Imóveis"
  - "3º Ofício de Registro de Imóveis"

exportacao:
  diretorio: ""

# Constantes de conciliação de áreas. Não altere sem confirmação do
# domínio: a declaração exige soma exata dentro desta tolerância.
conciliacao:
  tolerancia: 0.0001
  casas_decimais: 4
`

// Emissor identifies the issuing authority printed on the document.
type Emissor struct {
	Orgao      string `yaml:"orgao"`
	Secretaria string `yaml:"secretaria"`
	Titulo     string `yaml:"titulo"`
	Subtitulo  string `yaml:"subtitulo"`
	Local      string `yaml:"local"`
	Origem     string `yaml:"origem"`
}

// Exportacao configures where saved documents land.
type Exportacao struct {
	Diretorio string `yaml:"diretorio"`
}

// Conciliacao holds the area-reconciliation constants.
type Conciliacao struct {
	Tolerancia    float64 `yaml:"tolerancia"`
	CasasDecimais int     `yaml:"casas_decimais"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Version     int         `yaml:"version"`
	Emissor     Emissor     `yaml:"emissor"`
	Cartorios   []string    `yaml:"cartorios"`
	Exportacao  Exportacao  `yaml:"exportacao"`
	Conciliacao Conciliacao `yaml:"conciliacao"`
}

// Default returns the compiled-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		return nil, fmt.Errorf("config: default configuration is invalid: %w", err)
	}
	return cfg.normalized()
}

// Load resolves the configuration: compiled-in defaults, then the
// overlay at path. When path is empty, FileName in the working
// directory is tried and its absence is not an error.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		return nil, fmt.Errorf("config: default configuration is invalid: %w", err)
	}
	explicit := path != ""
	if !explicit {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg.normalized()
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg.normalized()
}

// normalized fills derived defaults and rejects unusable values.
func (c *Config) normalized() (*Config, error) {
	if c.Exportacao.Diretorio == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: resolving export directory: %w", err)
		}
		c.Exportacao.Diretorio = cwd
	}
	if c.Conciliacao.Tolerancia <= 0 {
		return nil, fmt.Errorf("config: tolerancia must be positive, got %v", c.Conciliacao.Tolerancia)
	}
	if c.Conciliacao.CasasDecimais <= 0 {
		return nil, fmt.Errorf("config: casas_decimais must be positive, got %d", c.Conciliacao.CasasDecimais)
	}
	if len(c.Cartorios) == 0 {
		return nil, fmt.Errorf("config: at least one cartório is required")
	}
	return c, nil
}

// LogPath is where the session logbook is written.
func (c *Config) LogPath() string {
	return filepath.Join(c.Exportacao.Diretorio, "declaracao.log")
}
