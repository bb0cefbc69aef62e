package wizard

import "testing"

func TestIrParaFrenteValida(t *testing.T) {
	nav := NovoNavegador()
	var validadas []Etapa
	ok := nav.IrPara(EtapaImovel, func(e Etapa) bool {
		validadas = append(validadas, e)
		return true
	})
	if !ok {
		t.Fatalf("forward move with passing validation should succeed")
	}
	if nav.Atual() != EtapaImovel {
		t.Fatalf("Atual() = %v, want %v", nav.Atual(), EtapaImovel)
	}
	if len(validadas) != 1 || validadas[0] != EtapaDeclarante {
		t.Fatalf("validation ran against %v, want [EtapaDeclarante]", validadas)
	}
}

func TestIrParaFrenteBloqueia(t *testing.T) {
	nav := NovoNavegador()
	ok := nav.IrPara(EtapaAptidao, func(Etapa) bool { return false })
	if ok {
		t.Fatalf("forward move with failing validation should be blocked")
	}
	if nav.Atual() != EtapaDeclarante {
		t.Fatalf("navigator moved despite failed validation: %v", nav.Atual())
	}
}

func TestIrParaTrasNuncaValida(t *testing.T) {
	nav := NovoNavegador()
	nav.IrPara(EtapaRevisao, func(Etapa) bool { return true })
	if nav.Atual() != EtapaRevisao {
		t.Fatalf("setup failed, Atual() = %v", nav.Atual())
	}
	ok := nav.IrPara(EtapaDeclarante, func(Etapa) bool {
		t.Fatalf("backward navigation must not validate")
		return false
	})
	if !ok || nav.Atual() != EtapaDeclarante {
		t.Fatalf("backward navigation should always succeed, got ok=%v atual=%v", ok, nav.Atual())
	}
}

func TestIrParaMesmaEtapa(t *testing.T) {
	nav := NovoNavegador()
	ok := nav.IrPara(EtapaDeclarante, func(Etapa) bool { return false })
	if !ok {
		t.Fatalf("same-step navigation should succeed without validation")
	}
}

func TestIrParaEtapaInvalida(t *testing.T) {
	nav := NovoNavegador()
	if nav.IrPara(Etapa(0), nil) || nav.IrPara(Etapa(5), nil) {
		t.Fatalf("out-of-range steps must be rejected")
	}
}

func TestProgresso(t *testing.T) {
	nav := NovoNavegador()
	if nav.Progresso() != 0 {
		t.Fatalf("Progresso() at step 1 = %v, want 0", nav.Progresso())
	}
	nav.IrPara(EtapaRevisao, func(Etapa) bool { return true })
	if nav.Progresso() != 1 {
		t.Fatalf("Progresso() at step 4 = %v, want 1", nav.Progresso())
	}
}

func TestRotulos(t *testing.T) {
	want := map[Etapa]string{
		EtapaDeclarante: "Declarante",
		EtapaImovel:     "Imóvel",
		EtapaAptidao:    "Aptidão",
		EtapaRevisao:    "Revisão",
	}
	for etapa, rotulo := range want {
		if etapa.String() != rotulo {
			t.Errorf("%d.String() = %q, want %q", etapa, etapa.String(), rotulo)
		}
	}
	if Etapa(9).String() != "Desconhecida" {
		t.Errorf("unknown step label = %q", Etapa(9).String())
	}
}
