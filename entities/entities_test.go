package entities

import "testing"

func TestRecordSetIgnoresBlankValues(t *testing.T) {
	r := NewRecord()
	r.Set("descripcion", "   ")
	r.SetList("route", nil)

	if r.Len() != 0 {
		t.Errorf("Expected empty record, got %d fields", r.Len())
	}
	if r.Has("descripcion") {
		t.Error("Expected blank field to be absent")
	}
}

func TestRecordTextAndStrings(t *testing.T) {
	r := NewRecord()
	r.Set("dosis", "500 mg")
	r.SetList("route", []string{"ORAL", "RECTAL"})

	if s, ok := r.Text("dosis"); !ok || s != "500 mg" {
		t.Errorf("Expected dosis text, got %q (%v)", s, ok)
	}
	if _, ok := r.Text("route"); ok {
		t.Error("Expected list field not to be reported as text")
	}
	if got := r.Strings("route"); len(got) != 2 || got[1] != "RECTAL" {
		t.Errorf("Unexpected list value: %v", got)
	}
	if got := r.Strings("dosis"); len(got) != 1 || got[0] != "500 mg" {
		t.Errorf("Expected scalar wrapped in list, got %v", got)
	}
}

func TestRecordCloneIsIndependent(t *testing.T) {
	r := NewRecord()
	r.Set("descripcion", "original")

	c := r.Clone()
	c.Set("descripcion", "changed")
	c.Translated = true

	if s, _ := r.Text("descripcion"); s != "original" {
		t.Errorf("Clone mutated the original: %q", s)
	}
	if r.Translated {
		t.Error("Clone mutated the translated flag")
	}
}

func TestResultSetKeepsInsertionOrder(t *testing.T) {
	rs := NewResultSet()
	rs.Add(SourceFDA, NewRecord())
	rs.Add(SourceWikipedia, NewRecord())
	rs.Add(SourceDuckDuckGo, nil)

	sources := rs.Sources()
	if len(sources) != 2 || sources[0] != SourceFDA || sources[1] != SourceWikipedia {
		t.Errorf("Unexpected order: %v", sources)
	}

	replacement := NewRecord()
	replacement.Set(FieldName, "x")
	rs.Add(SourceFDA, replacement)
	if rs.Len() != 2 {
		t.Errorf("Expected replace in place, got %d entries", rs.Len())
	}
	if got, _ := rs.Get(SourceFDA); got.Name() != "x" {
		t.Error("Expected FDA record to be replaced")
	}
}

func TestEntryDisplaySource(t *testing.T) {
	withOrigin := NewRecord()
	withOrigin.Set(FieldOrigin, "FDA (USA)")

	tests := []struct {
		entry    Entry
		expected string
	}{
		{Entry{Source: SourceFDA, Record: withOrigin}, "FDA (USA)"},
		{Entry{Source: SourceDuckDuckGo, Record: NewRecord()}, SourceDuckDuckGo},
	}

	for _, tt := range tests {
		if got := tt.entry.DisplaySource(); got != tt.expected {
			t.Errorf("DisplaySource() = %q, want %q", got, tt.expected)
		}
	}
}

func TestNilResultSetIsEmpty(t *testing.T) {
	var rs *ResultSet
	if !rs.IsEmpty() {
		t.Error("Expected nil result set to be empty")
	}
	if rs.AnyTranslated() {
		t.Error("Expected nil result set to have no translations")
	}
}
