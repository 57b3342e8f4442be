package reader

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFReader loads .pdf documents. The plain backend yields a single block;
// the pages backend yields one block per page and skips pages whose text
// cannot be decoded instead of failing the whole document.
type PDFReader struct {
	backend string
}

func NewPDFReader(backend string) (PDFReader, error) {
	switch backend {
	case "", PDFBackendPlain:
		return PDFReader{backend: PDFBackendPlain}, nil
	case PDFBackendPages:
		return PDFReader{backend: PDFBackendPages}, nil
	default:
		return PDFReader{}, fmt.Errorf("unknown pdf backend: %s", backend)
	}
}

func (p PDFReader) ReadBlocks(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	if p.backend == PDFBackendPages {
		return readByPage(r)
	}

	b, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("failed to extract plain text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(b); err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}
	return []string{buf.String()}, nil
}

func readByPage(r *pdf.Reader) ([]string, error) {
	total := r.NumPage()
	blocks := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A damaged page should not lose the rest of the document.
			continue
		}
		blocks = append(blocks, text)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("no extractable text in any of %d pages", total)
	}
	return blocks, nil
}
