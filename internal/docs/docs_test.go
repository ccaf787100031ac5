package docs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	documents, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(documents) == 0 {
		t.Fatal("embedded doc set is empty")
	}
	for i, doc := range documents {
		if doc.Title == "" || doc.Content == "" {
			t.Fatalf("document %d has empty fields: %+v", i, doc)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	content := `[{"title":"Shipping","content":"Orders ship within 2 days."}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write docs file: %v", err)
	}

	documents, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(documents) != 1 || documents[0].Title != "Shipping" {
		t.Fatalf("unexpected documents: %+v", documents)
	}
}

func TestLoadRejectsEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write docs file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty doc set")
	}
}
