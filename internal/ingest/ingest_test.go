package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "pdf header", data: []byte("%PDF-1.7\n..."), want: true},
		{name: "plain text", data: []byte("just a resume"), want: false},
		{name: "empty", data: nil, want: false},
		{name: "header not at start", data: []byte(" %PDF-1.7"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPDF(tt.data); got != tt.want {
				t.Errorf("IsPDF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText([]byte("Senior engineer, 5 years of Go"))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if text != "Senior engineer, 5 years of Go" {
		t.Errorf("ExtractText() = %q", text)
	}
}

func TestExtractTextBrokenPDF(t *testing.T) {
	// Starts like a PDF but is not one
	if _, err := ExtractText([]byte("%PDF-1.7 not actually a pdf")); err == nil {
		t.Error("ExtractText() expected error for corrupt PDF data")
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(path, []byte("Go and SQL experience"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("plain text file", func(t *testing.T) {
		text, err := ReadDocument(path, 0)
		if err != nil {
			t.Fatalf("ReadDocument() error = %v", err)
		}
		if text != "Go and SQL experience" {
			t.Errorf("ReadDocument() = %q", text)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadDocument(filepath.Join(dir, "nope.txt"), 0); err == nil {
			t.Error("ReadDocument() expected error for missing file")
		}
	})

	t.Run("file over size limit", func(t *testing.T) {
		big := filepath.Join(dir, "big.txt")
		if err := os.WriteFile(big, []byte(strings.Repeat("x", 100)), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadDocument(big, 10); err == nil {
			t.Error("ReadDocument() expected error for oversized file")
		}
	})
}
