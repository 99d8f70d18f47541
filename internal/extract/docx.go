package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const wordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// extractDOCX reads the docx container from memory and joins the text of
// every body-level paragraph with single newlines. Tables, headers,
// footers, and inline formatting are not preserved.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer doc.Close()

	paragraphs, err := documentParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// documentParagraphs walks word/document.xml and collects the text of
// each body-level w:p in document order, empty paragraphs included.
// Paragraphs inside w:tbl are skipped; w:tab renders as a tab, w:br and
// w:cr as newlines.
func documentParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs  []string
		current     strings.Builder
		inParagraph bool
		inText      bool
		tableDepth  int
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					current.Reset()
				}
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if inParagraph {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "p":
				if tableDepth == 0 && inParagraph {
					paragraphs = append(paragraphs, current.String())
					inParagraph = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
