package schema

import "testing"

func TestCollectionsDeclared(t *testing.T) {
	want := []string{"client", "matter", "documenttemplate", "document", "task"}

	cols := Collections()
	if len(cols) != len(want) {
		t.Fatalf("len(Collections) = %d, want %d", len(cols), len(want))
	}
	for i, name := range want {
		if cols[i].Name != name {
			t.Errorf("Collections[%d].Name = %q, want %q", i, cols[i].Name, name)
		}
		if len(cols[i].Fields) == 0 {
			t.Errorf("collection %q has no fields", name)
		}
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("matter")
	if !ok {
		t.Fatal("Lookup(matter) should succeed")
	}
	if c.Name != "matter" {
		t.Errorf("Name = %q, want %q", c.Name, "matter")
	}

	if _, ok := Lookup("unknown"); ok {
		t.Error("Lookup(unknown) should fail")
	}
}

func TestValidateRequiredFields(t *testing.T) {
	c, _ := Lookup("matter")

	tests := []struct {
		name    string
		record  map[string]any
		wantErr bool
	}{
		{"complete", map[string]any{"client_id": "abc", "title": "Incorporation"}, false},
		{"missing title", map[string]any{"client_id": "abc"}, true},
		{"missing client_id", map[string]any{"title": "Incorporation"}, true},
		{"empty title", map[string]any{"client_id": "abc", "title": ""}, true},
		{"nil title", map[string]any{"client_id": "abc", "title": nil}, true},
	}
	for _, tt := range tests {
		err := c.Validate(tt.record)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	c, _ := Lookup("matter")

	record := map[string]any{"client_id": "abc", "title": "Fundraise"}
	c.ApplyDefaults(record)

	if record["status"] != "open" {
		t.Errorf("status = %v, want %q", record["status"], "open")
	}
	if _, ok := record["tags"]; !ok {
		t.Error("tags default should be filled")
	}
}

func TestApplyDefaultsKeepsProvidedValues(t *testing.T) {
	task, _ := Lookup("task")

	record := map[string]any{"title": "File trademark", "status": "done"}
	task.ApplyDefaults(record)

	if record["status"] != "done" {
		t.Errorf("status = %v, provided value should survive", record["status"])
	}
}

func TestDescribe(t *testing.T) {
	descs := Describe()
	if len(descs) != 5 {
		t.Fatalf("len(Describe) = %d, want 5", len(descs))
	}

	byName := make(map[string]Description, len(descs))
	for _, d := range descs {
		byName[d.Name] = d
	}

	client, ok := byName["client"]
	if !ok {
		t.Fatal("Describe missing client")
	}
	if client.Fields["name"] != "str" {
		t.Errorf("client.name type = %q, want %q", client.Fields["name"], "str")
	}
	if client.Fields["email"] != "Optional[str]" {
		t.Errorf("client.email type = %q, want %q", client.Fields["email"], "Optional[str]")
	}

	tpl := byName["documenttemplate"]
	if tpl.Fields["variables"] != "List[str]" {
		t.Errorf("documenttemplate.variables type = %q, want %q", tpl.Fields["variables"], "List[str]")
	}
}
