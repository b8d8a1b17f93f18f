package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestDataset writes a manifest plus data file in a temp directory
// and returns the dataset dir.
func writeTestDataset(t *testing.T, id, normalize, dataFile, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	manifest := `id: ` + id + `
language: French
data_type: nouns
source: unit test
license: CC0
generated: "2026-08-01T00:00:00Z"
data_file: ` + dataFile + `
entries: 2
format:
  normalize: ` + normalize + `
`
	if err := os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, dataFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad_JSON(t *testing.T) {
	dir := writeTestDataset(t, "french-nouns", "none", "nouns.json",
		`{"chat":{"plural":"chats","form":"M"},"chats":{"plural":"isPlural","form":"PL"}}`)

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Manifest.ID != "french-nouns" {
		t.Errorf("ID = %q", d.Manifest.ID)
	}
	if len(d.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(d.Entries))
	}

	fields, ok := d.Lookup("chat")
	if !ok {
		t.Fatal("expected chat")
	}
	if fields["plural"] != "chats" || fields["form"] != "M" {
		t.Errorf("chat = %v", fields)
	}

	// Wordform keys are case-sensitive under normalize: none.
	if _, ok := d.Lookup("Chat"); ok {
		t.Error("lookup should be case-sensitive with normalize none")
	}
}

func TestLoad_CSVAndTSV(t *testing.T) {
	csvDir := writeTestDataset(t, "french-nouns-csv", "none", "nouns.csv",
		"wordform,plural,form\nchat,chats,M\nchats,isPlural,PL\n")
	tsvDir := writeTestDataset(t, "french-nouns-tsv", "none", "nouns.tsv",
		"wordform\tplural\tform\nchat\tchats\tM\nchats\tisPlural\tPL\n")

	for _, dir := range []string{csvDir, tsvDir} {
		d, err := Load(dir)
		if err != nil {
			t.Fatalf("Load %s: %v", dir, err)
		}
		fields, ok := d.Lookup("chats")
		if !ok {
			t.Fatalf("%s: expected chats", dir)
		}
		if fields["plural"] != "isPlural" || fields["form"] != "PL" {
			t.Errorf("%s: chats = %v", dir, fields)
		}
	}
}

func TestLoad_GobTakesPriority(t *testing.T) {
	dir := writeTestDataset(t, "cached", "none", "nouns.json",
		`{"stale":{"plural":"","form":""}}`)

	entries := map[string]map[string]string{
		"chat": {"plural": "chats", "form": "M"},
	}
	if err := SaveGob(entries, filepath.Join(dir, "data.gob")); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := d.Lookup("stale"); ok {
		t.Error("gob sidecar should shadow the json export")
	}
	if _, ok := d.Lookup("chat"); !ok {
		t.Error("expected chat from gob")
	}
}

func TestLoad_NormalizeMode(t *testing.T) {
	dir := writeTestDataset(t, "search-friendly", "lowercase_ascii", "nouns.json",
		`{"Château":{"plural":"Châteaux","form":"M"}}`)

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fields, ok := d.Lookup("chateau")
	if !ok {
		t.Fatal("expected accent-insensitive lookup")
	}
	if fields["form"] != "M" {
		t.Errorf("form = %q", fields["form"])
	}
}

func TestLoad_MissingManifest(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestLoadManifest_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")

	os.WriteFile(path, []byte("language: French\ndata_file: x.json\n"), 0o644)
	if _, err := LoadManifest(path); err == nil {
		t.Error("expected error for manifest without id")
	}

	os.WriteFile(path, []byte("id: x\n"), 0o644)
	if _, err := LoadManifest(path); err == nil {
		t.Error("expected error for manifest without data_file")
	}
}
