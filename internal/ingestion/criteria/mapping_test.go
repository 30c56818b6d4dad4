package criteria

import "testing"

func TestDefaultMappingRemap(t *testing.T) {
	m := DefaultMapping()

	got, ok := m.Remap("Organização")
	if !ok || got != WorkOrganization {
		t.Fatalf("Remap(Organização): got %q, %v", got, ok)
	}

	// spreadsheet spelling variations still hit the same entry
	for _, legacy := range []string{"organizacao", "  ORGANIZAÇÃO  ", "Organização no trabalho"} {
		got, ok := m.Remap(legacy)
		if !ok || got != WorkOrganization {
			t.Fatalf("Remap(%q): got %q, %v", legacy, got, ok)
		}
	}

	if _, ok := m.Remap("Critério que não existe"); ok {
		t.Fatalf("Remap(unknown): expected miss")
	}
}

func TestDefaultMappingTargetsCatalogue(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Catalogue() {
		known[c.Name] = true
	}
	m := DefaultMapping()
	for legacy, current := range m.byLegacy {
		if !known[current] {
			t.Fatalf("legacy %q maps to %q, which is not in the catalogue", legacy, current)
		}
	}
}

func TestParseMapping(t *testing.T) {
	raw := []byte("legacy:\n  \"Inovação\": \"Pensar Fora da Caixa\"\n")
	m, err := parseMapping(raw)
	if err != nil {
		t.Fatalf("parseMapping: %v", err)
	}
	if got, ok := m.Remap("inovacao"); !ok || got != OutOfTheBox {
		t.Fatalf("Remap after parse: got %q, %v", got, ok)
	}

	if _, err := parseMapping([]byte("legacy: {}")); err == nil {
		t.Fatalf("parseMapping(empty): expected error")
	}
	if _, err := parseMapping([]byte("not: [valid")); err == nil {
		t.Fatalf("parseMapping(broken yaml): expected error")
	}
}

func TestEmbeddedMappingParses(t *testing.T) {
	raw, err := mappingFS.ReadFile("criteria_mapping.yaml")
	if err != nil {
		t.Fatalf("read embedded mapping: %v", err)
	}
	m, err := parseMapping(raw)
	if err != nil {
		t.Fatalf("parse embedded mapping: %v", err)
	}
	if m.Len() == 0 {
		t.Fatalf("embedded mapping is empty")
	}
	if got, ok := m.Remap("Organização"); !ok || got != WorkOrganization {
		t.Fatalf("embedded Remap(Organização): got %q, %v", got, ok)
	}
}

func TestCatalogue(t *testing.T) {
	rows := Catalogue()
	if len(rows) != 12 {
		t.Fatalf("Catalogue: expected 12 criteria, got %d", len(rows))
	}
	seen := make(map[string]bool)
	for _, c := range rows {
		if seen[c.Name] {
			t.Fatalf("Catalogue: duplicate name %q", c.Name)
		}
		seen[c.Name] = true
		switch c.Pillar {
		case "BEHAVIOR", "EXECUTION", "MANAGEMENT":
		default:
			t.Fatalf("Catalogue: %q has unknown pillar %q", c.Name, c.Pillar)
		}
	}
}
