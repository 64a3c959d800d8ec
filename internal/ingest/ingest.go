// Package ingest turns resume and job description documents into plain text.
// PDFs are extracted page by page; anything else is treated as UTF-8 text.
package ingest

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"atsmatch/internal/errors"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether the data starts with the PDF file header
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// ReadDocument reads a document from disk and returns its plain text.
// maxSize caps the file size in bytes; 0 means no limit.
func ReadDocument(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("File does not exist: %s", path), err)
		}
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot access file: %s", path), err)
	}

	if maxSize > 0 && info.Size() > maxSize {
		return "", errors.NewValidationError(errors.ErrCodeIngestFailed,
			fmt.Sprintf("File %s exceeds the maximum size of %d bytes", path, maxSize), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read file: %s", path), err)
	}

	return ExtractText(data)
}

// ExtractText returns the plain text of a document given its raw bytes
func ExtractText(data []byte) (string, error) {
	if IsPDF(data) {
		return extractPDFText(data)
	}
	return string(data), nil
}

// extractPDFText concatenates the text of every readable page. Pages that
// fail to decode are skipped rather than failing the whole document, since
// resume PDFs are frequently produced by sloppy generators.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeIngestFailed,
			"Failed to open PDF document", err)
	}

	var text strings.Builder
	extracted := 0
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		text.WriteString(pageText)
		text.WriteString("\n")
		extracted++
	}

	if extracted == 0 {
		return "", errors.NewIOError(errors.ErrCodeIngestFailed,
			"PDF document contains no extractable text", nil)
	}

	return text.String(), nil
}
