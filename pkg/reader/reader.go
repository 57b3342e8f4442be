// Package reader loads source documents into raw text blocks. A block is a
// unit of input the segmenter treats as one paragraph: a docx paragraph, a
// pdf page, or a line of a plain-text file.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PDF extraction backends. The plain backend reads the whole document in one
// pass; the pages backend extracts page by page, which tolerates documents
// where a single damaged page would otherwise abort the run.
const (
	PDFBackendPlain = "plain"
	PDFBackendPages = "pages"
)

// Reader loads a source document as a sequence of text blocks.
type Reader interface {
	ReadBlocks(path string) ([]string, error)
}

// ForPath selects a reader by file extension. pdfBackend is only consulted
// for .pdf sources; pass "" for the default.
func ForPath(path, pdfBackend string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return DocxReader{}, nil
	case ".pdf":
		return NewPDFReader(pdfBackend)
	case ".txt", ".text", "":
		return TextReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported document format: %s", filepath.Ext(path))
	}
}

// ReadText loads a document and joins its blocks with newlines, ready for
// normalization.
func ReadText(path, pdfBackend string) (string, error) {
	r, err := ForPath(path, pdfBackend)
	if err != nil {
		return "", err
	}
	blocks, err := r.ReadBlocks(path)
	if err != nil {
		return "", err
	}
	return strings.Join(blocks, "\n"), nil
}
