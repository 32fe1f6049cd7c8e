// Package extraction turns uploaded RFP documents into the loose field
// dictionary the estimation engine accepts: plain-text extraction from
// PDF/DOCX, then field extraction via OpenAI or the local regex patterns.
package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/paveiq/bidmaster/internal/usecase/interfaces"

	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type: only .pdf and .docx are accepted")
	ErrEmptyDocument       = errors.New("no text found in document")
)

// DocumentParser extracts plain text from PDF and DOCX uploads.
type DocumentParser struct{}

var _ interfaces.IDocumentParser = (*DocumentParser)(nil)

func NewDocumentParser() *DocumentParser {
	return &DocumentParser{}
}

func (p *DocumentParser) Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return textFromPDF(data)
	case ".docx":
		return textFromDOCX(data)
	default:
		return "", ErrUnsupportedFileType
	}
}

func textFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// textFromDOCX walks word/document.xml inside the docx zip and collects the
// text runs, inserting a newline at every paragraph end so the regex section
// patterns keep working.
func textFromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("read docx: %w", ErrEmptyDocument)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer rc.Close()

	var (
		sb      strings.Builder
		inText  bool
		decoder = xml.NewDecoder(rc)
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}
