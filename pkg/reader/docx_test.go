package reader

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "law.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>中华人民共和国民法典</w:t></w:r></w:p>
    <w:p><w:r><w:t>第一条 </w:t></w:r><w:r><w:t>总则内容。</w:t></w:r></w:p>
    <w:p><w:r><w:t>第二条</w:t></w:r><w:r><w:tab/><w:t>分则内容。</w:t></w:r></w:p>
    <w:p/>
  </w:body>
</w:document>`

func TestDocxReader(t *testing.T) {
	path := writeDocx(t, sampleDocumentXML)

	blocks, err := DocxReader{}.ReadBlocks(path)
	if err != nil {
		t.Fatalf("ReadBlocks: %v", err)
	}
	want := []string{
		"中华人民共和国民法典",
		"第一条 总则内容。",
		"第二条 分则内容。",
		"",
	}
	if len(blocks) != len(want) {
		t.Fatalf("blocks = %q", blocks)
	}
	for i, w := range want {
		if blocks[i] != w {
			t.Errorf("block %d = %q, want %q", i, blocks[i], w)
		}
	}
}

func TestDocxReader_SplitRunsJoinWithinParagraph(t *testing.T) {
	path := writeDocx(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>第</w:t></w:r><w:r><w:t>一</w:t></w:r><w:r><w:t>条</w:t></w:r></w:p></w:body>
</w:document>`)

	blocks, err := DocxReader{}.ReadBlocks(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0] != "第一条" {
		t.Errorf("blocks = %q, want [第一条]", blocks)
	}
}

func TestDocxReader_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("<styles/>"))
	zw.Close()

	path := filepath.Join(t.TempDir(), "empty.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = DocxReader{}.ReadBlocks(path)
	if err == nil || !strings.Contains(err.Error(), "word/document.xml") {
		t.Errorf("expected missing-part error, got %v", err)
	}
}

func TestDocxReader_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (DocxReader{}).ReadBlocks(path); err == nil {
		t.Error("expected error for a non-zip file")
	}
}
