package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/credvet/credvet/internal/model"
)

// LoadExtracted reads a JSON file of documents already reduced by an
// upstream extraction service (text + entities + metadata per document
// type). This is how entity maps reach the engine: credvet itself does
// no named-entity recognition.
func LoadExtracted(path string) (model.DocumentSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read extracted documents: %w", err)
	}

	var raw map[model.DocType]model.ExtractedDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse extracted documents: %w", err)
	}

	set := make(model.DocumentSet, len(raw))
	for docType, doc := range raw {
		if _, ok := model.ParseDocType(string(docType)); !ok {
			return nil, fmt.Errorf("unknown document type %q in extracted file", docType)
		}
		doc.Type = docType
		set[docType] = doc
	}

	return set, nil
}
