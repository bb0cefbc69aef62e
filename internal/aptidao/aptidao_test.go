package aptidao

import (
	"strings"
	"testing"
)

func TestCatalogoCompleto(t *testing.T) {
	cats := Categorias()
	if len(cats) != NumCategorias {
		t.Fatalf("len(Categorias()) = %d, want %d", len(cats), NumCategorias)
	}
	romanos := []string{"I", "II", "III", "IV", "V", "VI"}
	for i, cat := range cats {
		if cat.ID == "" || cat.Rotulo == "" || cat.RotuloCurto == "" || cat.Descricao == "" {
			t.Errorf("categoria %d has blank fields: %+v", i, cat)
		}
		if !strings.HasPrefix(cat.Rotulo, romanos[i]+" ") {
			t.Errorf("categoria %d rotulo = %q, want roman numeral %s", i, cat.Rotulo, romanos[i])
		}
	}
}

func TestPorForaDoCatalogo(t *testing.T) {
	if _, err := Por(-1); err == nil {
		t.Fatalf("Por(-1) should fail")
	}
	if _, err := Por(NumCategorias); err == nil {
		t.Fatalf("Por(%d) should fail", NumCategorias)
	}
	cat, err := Por(3)
	if err != nil {
		t.Fatalf("Por(3): %v", err)
	}
	if cat.ID != "a4" {
		t.Fatalf("Por(3).ID = %q, want a4", cat.ID)
	}
}
