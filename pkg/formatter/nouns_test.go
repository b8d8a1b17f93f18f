package formatter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/wordforge/wordforge/pkg/dataset"
)

// writeQueryFile writes a raw noun query fixture and returns its path.
func writeQueryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nouns_queried.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNounsFormatter_JSON(t *testing.T) {
	input := writeQueryFile(t, `[
		{"singular":"chat","plural":"chats","gender":"masculine"},
		{"singular":"eau","plural":"eaux","gender":"feminine"},
		{"plural":"gens"}
	]`)
	outDir := t.TempDir()

	f, err := Get("French", "nouns")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	res, err := f.Format(context.Background(), Request{
		InputPath:  input,
		OutputDir:  outDir,
		OutputType: "json",
		Overwrite:  true,
	})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if res.Entries != 5 {
		t.Errorf("entries = %d, want 5", res.Entries)
	}
	if want := filepath.Join(outDir, "french-nouns", "nouns.json"); res.Path != want {
		t.Errorf("path = %s, want %s", res.Path, want)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	got := make(map[string]map[string]string)
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if got["chat"]["plural"] != "chats" || got["chat"]["form"] != "M" {
		t.Errorf("chat = %v", got["chat"])
	}
	if got["gens"]["plural"] != "isPlural" || got["gens"]["form"] != "PL" {
		t.Errorf("gens = %v", got["gens"])
	}

	m, err := dataset.LoadManifest(filepath.Join(outDir, "french-nouns", "manifest.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.ID != "french-nouns" || m.Language != "French" || m.DataType != "nouns" {
		t.Errorf("manifest = %+v", m)
	}
	if m.Entries != 5 || m.DataFile != "nouns.json" {
		t.Errorf("manifest entries/data_file = %d/%s", m.Entries, m.DataFile)
	}
}

func TestNounsFormatter_NoOverwrite(t *testing.T) {
	input := writeQueryFile(t, `[{"singular":"chat","plural":"chats"}]`)
	outDir := t.TempDir()

	f, err := Get("French", "nouns")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	req := Request{InputPath: input, OutputDir: outDir, OutputType: "json"}
	if _, err := f.Format(context.Background(), req); err != nil {
		t.Fatalf("first Format: %v", err)
	}
	if _, err := f.Format(context.Background(), req); err == nil {
		t.Error("expected error when overwriting without the flag")
	}

	req.Overwrite = true
	if _, err := f.Format(context.Background(), req); err != nil {
		t.Errorf("overwrite Format: %v", err)
	}
}

func TestNounsFormatter_Cache(t *testing.T) {
	input := writeQueryFile(t, `[{"singular":"chat","plural":"chats","gender":"masculine"}]`)
	outDir := t.TempDir()

	f, _ := Get("French", "nouns")
	if _, err := f.Format(context.Background(), Request{
		InputPath: input, OutputDir: outDir, OutputType: "json", Overwrite: true, Cache: true,
	}); err != nil {
		t.Fatalf("Format: %v", err)
	}

	d, err := dataset.Load(filepath.Join(outDir, "french-nouns"))
	if err != nil {
		t.Fatalf("dataset.Load: %v", err)
	}
	fields, ok := d.Lookup("chat")
	if !ok {
		t.Fatal("expected chat in cached dataset")
	}
	if fields["form"] != "M" {
		t.Errorf("form = %q, want M", fields["form"])
	}
	if _, err := os.Stat(filepath.Join(outDir, "french-nouns", "data.gob")); err != nil {
		t.Errorf("expected data.gob sidecar: %v", err)
	}
}

func TestNounsFormatter_BadOutputType(t *testing.T) {
	input := writeQueryFile(t, `[]`)
	f, _ := Get("French", "nouns")
	if _, err := f.Format(context.Background(), Request{
		InputPath: input, OutputDir: t.TempDir(), OutputType: "xml",
	}); err == nil {
		t.Error("expected error for unsupported output type")
	}
}

func TestRegistry(t *testing.T) {
	if _, err := Get("French", "nouns"); err != nil {
		t.Errorf("French nouns should be registered: %v", err)
	}
	if _, err := Get("french", "NOUNS"); err != nil {
		t.Errorf("registry lookup should be case-insensitive: %v", err)
	}
	if _, err := Get("French", "verbs"); err == nil {
		t.Error("expected error for unregistered pair")
	}

	all := All()
	if len(all) < 4 {
		t.Fatalf("expected at least 4 formatters, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Language() > all[i].Language() {
			t.Errorf("All() not sorted: %s after %s", all[i].Language(), all[i-1].Language())
		}
	}
}
