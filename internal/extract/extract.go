// Package extract turns uploaded resume documents (PDF, DOCX, or plain
// text) into plain text, one extraction routine per supported format.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported document type.
type Format int

const (
	FormatPDF Format = iota
	FormatDOCX
	FormatTXT
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return ".pdf"
	case FormatDOCX:
		return ".docx"
	case FormatTXT:
		return ".txt"
	default:
		return "unknown"
	}
}

// Failure kinds. Callers match with errors.Is.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrCorruptDocument   = errors.New("corrupt document")
	ErrInvalidUTF8       = errors.New("file is not valid UTF-8 text")
)

// Document is an uploaded file. The name decides the format.
type Document struct {
	Name string
	Data []byte
}

// DetectFormat maps a file name to its Format by extension,
// case-insensitively. Unknown extensions fail with ErrUnsupportedFormat
// naming the offending extension.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt":
		return FormatTXT, nil
	default:
		return 0, fmt.Errorf("%w %q (supported: .pdf, .docx, .txt)", ErrUnsupportedFormat, ext)
	}
}

// Extract returns the document's text: PDF pages or DOCX paragraphs
// joined by single newlines, or the decoded plain text for TXT. An empty
// result is legitimate for documents with no extractable text layer.
func Extract(doc Document) (string, error) {
	format, err := DetectFormat(doc.Name)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatPDF:
		return extractPDF(doc.Data)
	case FormatDOCX:
		return extractDOCX(doc.Data)
	case FormatTXT:
		return extractTXT(doc.Data)
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
