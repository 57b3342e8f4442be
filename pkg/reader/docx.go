package reader

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DocxReader loads .docx documents, one block per paragraph. Only the main
// document part is read; headers, footers, and footnotes are ignored.
type DocxReader struct{}

const docxDocumentPart = "word/document.xml"

func (DocxReader) ReadBlocks(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != docxDocumentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open document part: %w", err)
		}
		defer rc.Close()
		return parseDocumentXML(rc)
	}
	return nil, fmt.Errorf("%s has no %s part", path, docxDocumentPart)
}

// parseDocumentXML walks the WordprocessingML body and collects the text of
// each w:p paragraph. Runs within a paragraph are concatenated; w:br and
// w:tab become a newline and a space.
func parseDocumentXML(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var blocks []string
	var para strings.Builder
	inParagraph := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document part: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				para.Reset()
			case "br":
				if inParagraph {
					para.WriteByte('\n')
				}
			case "tab":
				if inParagraph {
					para.WriteByte(' ')
				}
			case "t":
				if !inParagraph {
					continue
				}
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return nil, fmt.Errorf("malformed text run: %w", err)
				}
				para.WriteString(text)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				blocks = append(blocks, para.String())
				inParagraph = false
			}
		}
	}

	return blocks, nil
}
