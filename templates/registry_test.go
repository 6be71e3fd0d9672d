package templates

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	ids := IDs()
	if len(ids) == 0 {
		t.Fatal("empty catalog")
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate template id %q", id)
		}
		seen[id] = true

		tpl, ok := Get(id)
		if !ok {
			t.Fatalf("Get(%q) not found", id)
		}
		if tpl.ID != id {
			t.Fatalf("template %q carries id %q", id, tpl.ID)
		}
		if len(tpl.Fields) == 0 {
			t.Fatalf("template %q has no fields", id)
		}

		fieldIDs := map[string]bool{}
		for _, f := range tpl.Fields {
			if fieldIDs[f.ID] {
				t.Fatalf("template %q: duplicate field id %q", id, f.ID)
			}
			fieldIDs[f.ID] = true
			if f.Type == FieldSelect && len(f.Options) == 0 {
				t.Fatalf("template %q: select field %q without options", id, f.ID)
			}
			if f.Type != FieldSelect && len(f.Options) > 0 {
				t.Fatalf("template %q: non-select field %q with options", id, f.ID)
			}
		}
		// every showWhen reference must resolve within the same template
		for _, f := range tpl.Fields {
			if f.ShowWhen.Always() {
				continue
			}
			if !fieldIDs[f.ShowWhen.DependsOn] {
				t.Fatalf("template %q: field %q depends on unknown field %q", id, f.ID, f.ShowWhen.DependsOn)
			}
		}
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	if _, ok := Get("nope"); ok {
		t.Fatal("expected absent result for unknown id")
	}
}

func TestAllMatchesOrder(t *testing.T) {
	all := All()
	ids := IDs()
	if len(all) != len(ids) {
		t.Fatalf("All()=%d templates, IDs()=%d", len(all), len(ids))
	}
	for i, tpl := range all {
		if tpl.ID != ids[i] {
			t.Fatalf("order mismatch at %d: %q vs %q", i, tpl.ID, ids[i])
		}
	}
}
