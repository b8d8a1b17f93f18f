package dataset

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveGobLoadGob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.gob")
	want := map[string]map[string]string{
		"chat":  {"plural": "chats", "form": "M"},
		"chats": {"plural": "isPlural", "form": "PL"},
	}

	if err := SaveGob(want, path); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	d := &Dataset{
		Entries:   make(map[string]map[string]string),
		normalize: NormalizeNone,
	}
	if err := d.loadGob(path); err != nil {
		t.Fatalf("loadGob: %v", err)
	}
	if !reflect.DeepEqual(d.Entries, want) {
		t.Errorf("entries = %v, want %v", d.Entries, want)
	}
}

func TestLoadGob_Missing(t *testing.T) {
	d := &Dataset{Entries: make(map[string]map[string]string), normalize: NormalizeNone}
	if err := d.loadGob(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Error("expected error for missing gob file")
	}
}
