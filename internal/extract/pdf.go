package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts the text layer of a PDF, page by page. Pages without
// a text layer contribute nothing; a fully scanned PDF yields an empty
// string, which downstream validators treat as "nothing corroborated".
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var builder strings.Builder
	for page := 1; page <= reader.NumPage(); page++ {
		p := reader.Page(page)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the document
			continue
		}
		builder.WriteString(content)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
