package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Format
		wantErr  bool
	}{
		{name: "pdf", filename: "resume.pdf", want: FormatPDF},
		{name: "upper case pdf", filename: "RESUME.PDF", want: FormatPDF},
		{name: "docx", filename: "cv.docx", want: FormatDOCX},
		{name: "mixed case docx", filename: "cv.DocX", want: FormatDOCX},
		{name: "txt", filename: "notes.txt", want: FormatTXT},
		{name: "rtf rejected", filename: "resume.rtf", wantErr: true},
		{name: "doc rejected", filename: "resume.doc", wantErr: true},
		{name: "no extension", filename: "README", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("DetectFormat(%q) error = %v, want ErrUnsupportedFormat", tt.filename, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q) error = %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFormatNamesBadExtension(t *testing.T) {
	_, err := DetectFormat("resume.rtf")
	if err == nil || !strings.Contains(err.Error(), ".rtf") {
		t.Errorf("error %q does not name the offending extension", err)
	}
}

func TestExtractTXT(t *testing.T) {
	got, err := Extract(Document{Name: "notes.txt", Data: []byte("plain resume body")})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "plain resume body" {
		t.Errorf("Extract() = %q, want the input unchanged", got)
	}
}

func TestExtractTXTInvalidUTF8(t *testing.T) {
	got, err := Extract(Document{Name: "notes.txt", Data: []byte{0x48, 0xff, 0xfe}})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Extract() error = %v, want ErrInvalidUTF8", err)
	}
	if got != "" {
		t.Errorf("Extract() returned partial text %q on failure", got)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	got, err := Extract(Document{Name: "resume.rtf", Data: []byte("{\\rtf1}")})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Extract() error = %v, want ErrUnsupportedFormat", err)
	}
	if got != "" {
		t.Errorf("Extract() returned partial text %q on failure", got)
	}
}

func TestExtractPDFPages(t *testing.T) {
	data := buildPDF(t, []string{"Alpha page text", "Beta page text"})

	got, err := Extract(Document{Name: "resume.pdf", Data: data})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := "Alpha page text\nBeta page text"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractPDFKeepsEmptyPageSlots(t *testing.T) {
	data := buildPDF(t, []string{"First", "", "Third"})

	got, err := Extract(Document{Name: "resume.pdf", Data: data})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := "First\n\nThird"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractPDFCorrupt(t *testing.T) {
	got, err := Extract(Document{Name: "resume.pdf", Data: []byte("not a pdf at all")})
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("Extract() error = %v, want ErrCorruptDocument", err)
	}
	if got != "" {
		t.Errorf("Extract() returned partial text %q on failure", got)
	}
}

func TestExtractDOCXParagraphs(t *testing.T) {
	body := para("JOHN DOE") + para("") + para("Go engineer in Lagos")
	data := buildDocx(t, documentXML(body))

	got, err := Extract(Document{Name: "cv.docx", Data: data})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := "JOHN DOE\n\nGo engineer in Lagos"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractDOCXSkipsTableParagraphs(t *testing.T) {
	body := para("Intro") +
		`<w:tbl><w:tr><w:tc>` + para("cell text") + `</w:tc></w:tr></w:tbl>` +
		para("Outro")
	data := buildDocx(t, documentXML(body))

	got, err := Extract(Document{Name: "cv.docx", Data: data})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := "Intro\nOutro"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractDOCXCorrupt(t *testing.T) {
	got, err := Extract(Document{Name: "cv.docx", Data: []byte("not a zip archive")})
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("Extract() error = %v, want ErrCorruptDocument", err)
	}
	if got != "" {
		t.Errorf("Extract() returned partial text %q on failure", got)
	}
}

func TestDocumentParagraphs(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "multiple runs concatenate",
			body: `<w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>`,
			want: []string{"Hello world"},
		},
		{
			name: "tab between runs",
			body: `<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>2019</w:t></w:r></w:p>`,
			want: []string{"Go\t2019"},
		},
		{
			name: "soft line break",
			body: `<w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>`,
			want: []string{"line one\nline two"},
		},
		{
			name: "empty paragraph keeps its slot",
			body: `<w:p><w:r><w:t>a</w:t></w:r></w:p><w:p/><w:p><w:r><w:t>b</w:t></w:r></w:p>`,
			want: []string{"a", "", "b"},
		},
		{
			name: "non-text elements contribute nothing",
			body: `<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>centered</w:t></w:r></w:p>`,
			want: []string{"centered"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := documentParagraphs(documentXML(tt.body))
			if err != nil {
				t.Fatalf("documentParagraphs() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("documentParagraphs() = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("paragraph %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// --- test document builders ---

func para(text string) string {
	if text == "" {
		return `<w:p/>`
	}
	return `<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func documentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// buildDocx assembles a minimal docx container around the given
// word/document.xml content.
func buildDocx(t *testing.T, docXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entries := []struct{ name, body string }{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/document.xml", docXML},
	}
	for _, e := range entries {
		f, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", e.name, err)
		}
		if _, err := f.Write([]byte(e.body)); err != nil {
			t.Fatalf("writing zip entry %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// buildPDF assembles a minimal single-font PDF with one content stream
// per page. An empty page text yields a page with an empty stream.
// Texts must avoid the characters ( ) and backslash.
func buildPDF(t *testing.T, pageTexts []string) []byte {
	t.Helper()

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageTexts)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	for i, text := range pageTexts {
		var content string
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)
	return buf.Bytes()
}
