// Package docs provides the static documentation set the assistant answers
// from. The set is loaded once at startup and is immutable for the process
// lifetime.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed default_docs.json
var defaultDocs []byte

// Document is one documentation record. Documents have no identity beyond
// their position in the set.
type Document struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Load reads the documentation set from path, or the embedded default set
// when path is empty.
func Load(path string) ([]Document, error) {
	data := defaultDocs
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read docs file: %w", err)
		}
		data = b
	}

	var documents []Document
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("parse docs: %w", err)
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("docs set is empty")
	}
	return documents, nil
}
