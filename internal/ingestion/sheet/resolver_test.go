package sheet

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Email da REFERÊNCIA ": "email da referencia",
		"Auto-Avaliação":         "auto-avaliacao",
		"nome\t completo":        "nome completo",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	row := Row{
		"Email do Avaliado": NewCell("carla@example.com"),
		"Nota Geral":        NewCell("8"),
	}

	c, ok := Resolve(row, HeaderContains("email do avaliado"))
	if !ok || c.String() != "carla@example.com" {
		t.Fatalf("Resolve: got %+v, %v", c, ok)
	}
	if _, ok := Resolve(row, HeaderContains("projeto")); ok {
		t.Fatalf("Resolve: expected miss on absent column")
	}
}

func TestResolveDeterministicOrder(t *testing.T) {
	// both headers contain "nota"; sorted header order must make the pick stable
	row := Row{
		"Nota Geral":    NewCell("8"),
		"Nota Especial": NewCell("3"),
	}
	for i := 0; i < 10; i++ {
		c, ok := Resolve(row, HeaderContains("nota"))
		if !ok || c.String() != "3" {
			t.Fatalf("Resolve: expected first header in sorted order, got %+v", c)
		}
	}
}

func TestResolveString(t *testing.T) {
	row := Row{
		"Projeto":       Absent(),
		"Justificativa": NewCell("Ótimo trabalho"),
	}
	if _, ok := ResolveString(row, HeaderIs("projeto")); ok {
		t.Fatalf("ResolveString: absent cell must not resolve")
	}
	s, ok := ResolveString(row, HeaderContains("justificativa"))
	if !ok || s != "Ótimo trabalho" {
		t.Fatalf("ResolveString: got %q, %v", s, ok)
	}
}
