// internal/aptidao/aptidao.go
//
// Static reference data: the six agricultural-aptitude categories
// (incisos I a VI) used throughout the declaration. The catalog ships
// embedded in the binary and is parsed exactly once.

package aptidao

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NumCategorias is the fixed size of the catalog.
const NumCategorias = 6

//go:embed categorias.yaml
var categoriasYAML []byte

// Categoria describes one aptitude class of rural land.
type Categoria struct {
	ID          string `yaml:"id"`
	Icone       string `yaml:"icone"`
	Rotulo      string `yaml:"rotulo"`
	RotuloCurto string `yaml:"rotulo_curto"`
	Descricao   string `yaml:"descricao"`
}

type catalogo struct {
	Categorias []Categoria `yaml:"categorias"`
}

var categorias []Categoria

func init() {
	var cat catalogo
	if err := yaml.Unmarshal(categoriasYAML, &cat); err != nil {
		panic(fmt.Sprintf("aptidao: embedded catalog is invalid: %v", err))
	}
	if len(cat.Categorias) != NumCategorias {
		panic(fmt.Sprintf("aptidao: embedded catalog has %d categories, want %d", len(cat.Categorias), NumCategorias))
	}
	categorias = cat.Categorias
}

// Categorias returns the ordered catalog. Callers must not mutate it.
func Categorias() []Categoria {
	return categorias
}

// Por returns the category at the given position (0-based).
func Por(idx int) (Categoria, error) {
	if idx < 0 || idx >= len(categorias) {
		return Categoria{}, fmt.Errorf("aptidao: categoria %d fora do catálogo", idx)
	}
	return categorias[idx], nil
}
