// Package extract reduces uploaded document files to the plain text,
// entities, and typed metadata the validation engine consumes. It is
// best-effort by design: anything it cannot find is simply absent, and
// the validators downstream treat absence as "not found".
package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/credvet/credvet/internal/cache"
	"github.com/credvet/credvet/internal/model"
)

// Extractor turns document files into ExtractedDocuments, optionally
// caching results keyed by file content so unchanged files are not
// re-parsed across runs.
type Extractor struct {
	cache cache.Cache // nil disables caching
}

// NewExtractor creates an extractor with the given cache (nil for none)
func NewExtractor(c cache.Cache) *Extractor {
	return &Extractor{cache: c}
}

// ExtractFile reads one document file and produces its extracted form.
// PDF files are read through their text layer, HTML through a visible-
// text walk, anything else as plain text. OCR is out of scope: a
// scanned image inside a PDF simply yields empty text.
func (e *Extractor) ExtractFile(path string, docType model.DocType) (*model.ExtractedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	key := cache.Key(string(docType) + ":" + hashContent(data))
	if e.cache != nil {
		if cached, found := e.cache.Get(key); found {
			var doc model.ExtractedDocument
			if err := json.Unmarshal(cached, &doc); err == nil {
				return &doc, nil
			}
			// Corrupt entry: fall through and re-extract
		}
	}

	text, err := e.extractText(path, data)
	if err != nil {
		return nil, err
	}

	doc := &model.ExtractedDocument{
		Type: docType,
		Text: text,
		Meta: ExtractMetadata(text, docType),
	}

	if e.cache != nil {
		if encoded, err := json.Marshal(doc); err == nil {
			_ = e.cache.Set(key, encoded, 0)
		}
	}

	return doc, nil
}

// ExtractSet extracts every document of a case into a DocumentSet
func (e *Extractor) ExtractSet(files map[model.DocType]string) (model.DocumentSet, error) {
	set := make(model.DocumentSet, len(files))
	for docType, path := range files {
		doc, err := e.ExtractFile(path, docType)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", docType, err)
		}
		set[docType] = *doc
	}
	return set, nil
}

func (e *Extractor) extractText(path string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfText(data)
	case ".html", ".htm":
		return htmlText(string(data))
	default:
		return string(data), nil
	}
}

// hashContent builds the cache key component for file content
func hashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
