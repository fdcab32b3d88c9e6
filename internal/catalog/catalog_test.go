package catalog

import "testing"

func TestEveryReferencedFieldIsRegistered(t *testing.T) {
	for _, v := range Views() {
		for _, name := range v.Fields() {
			if _, ok := FieldByName(name); !ok {
				t.Fatalf("view %s references unregistered field %q", v.ID, name)
			}
		}
	}
}

func TestRequiredFieldsAreSubsetOfReferenced(t *testing.T) {
	for _, v := range Views() {
		referenced := map[string]bool{}
		for _, name := range v.Fields() {
			referenced[name] = true
		}
		for _, name := range v.RequiredFields {
			if !referenced[name] {
				t.Fatalf("view %s requires %q which it never references", v.ID, name)
			}
		}
	}
}

func TestViewIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range Views() {
		if seen[v.ID] {
			t.Fatalf("duplicate view id %q", v.ID)
		}
		seen[v.ID] = true
	}
}

func TestViewsSortedByLabel(t *testing.T) {
	vs := Views()
	for i := 1; i < len(vs); i++ {
		if vs[i-1].Label > vs[i].Label {
			t.Fatalf("views not sorted: %q before %q", vs[i-1].Label, vs[i].Label)
		}
	}
}

func TestLabelFallsBackToRawName(t *testing.T) {
	if got := Label("eventCode"); got != "Event Code" {
		t.Fatalf("label: %s", got)
	}
	if got := Label("mystery"); got != "mystery" {
		t.Fatalf("fallback: %s", got)
	}
}

func TestValuesGetTrims(t *testing.T) {
	v := Values{"season": "  2025 "}
	if got := v.Get("season"); got != "2025" {
		t.Fatalf("trim: %q", got)
	}
	if got := v.Get("absent"); got != "" {
		t.Fatalf("absent: %q", got)
	}
}
