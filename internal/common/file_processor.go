package common

import (
	"fmt"
	"os"
	"path/filepath"

	"atsmatch/internal/errors"
	"atsmatch/internal/ingest"
	"atsmatch/internal/utils"
)

// FileProcessor handles common document operations
type FileProcessor struct {
	logger *errors.Logger
	// maxFileSize caps document reads in bytes; 0 means unlimited
	maxFileSize int64
}

// NewFileProcessor creates a new file processor instance
func NewFileProcessor(logger *errors.Logger, maxFileSize int64) *FileProcessor {
	return &FileProcessor{logger: logger, maxFileSize: maxFileSize}
}

// ReadDocument reads a resume or job description from a file and returns its
// plain text. PDF files are extracted, everything else is read as text.
func (fp *FileProcessor) ReadDocument(filename string) (string, error) {
	text, err := ingest.ReadDocument(filename, fp.maxFileSize)
	if err != nil {
		return "", err
	}

	if fp.logger != nil {
		fp.logger.Debug("Document read",
			"filename", filename,
			"chars", len(text))
	}

	return text, nil
}

// WriteFile writes content to a file with directory creation
func (fp *FileProcessor) WriteFile(filename, content string) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		err := os.MkdirAll(dir, 0750)
		if err != nil {
			return errors.NewIOError("DIRECTORY_CREATE_FAILED",
				fmt.Sprintf("Cannot create directory: %s", dir), err)
		}
	}

	err := os.WriteFile(filename, []byte(content), 0600)
	if err != nil {
		return errors.NewIOError("FILE_WRITE_FAILED",
			fmt.Sprintf("Cannot write file: %s", filename), err)
	}

	return nil
}

// ValidateAndReadDocuments validates and reads multiple input documents
func (fp *FileProcessor) ValidateAndReadDocuments(filenames ...string) ([]string, error) {
	contents := make([]string, len(filenames))

	for i, filename := range filenames {
		if err := utils.ValidateInputFile(filename); err != nil {
			return nil, errors.NewValidationError("INVALID_INPUT_FILE",
				fmt.Sprintf("Invalid file %s", filename), err)
		}

		if !utils.IsDocumentFile(filename) {
			if fp.logger != nil {
				fp.logger.Warn("File may not be a supported document type",
					"filename", filename)
			} else {
				fmt.Fprintf(os.Stderr, "Warning: %s may not be a supported document type\n", filename)
			}
		}

		content, err := fp.ReadDocument(filename)
		if err != nil {
			return nil, err // Error already wrapped by ReadDocument
		}

		contents[i] = content
	}

	return contents, nil
}

// ValidateOutputFile validates output file path
func (fp *FileProcessor) ValidateOutputFile(filename string) error {
	if filename == "" {
		return nil // stdout is valid
	}

	if err := utils.ValidateOutputFile(filename); err != nil {
		return errors.NewValidationError("INVALID_OUTPUT_FILE",
			fmt.Sprintf("Invalid output file: %s", filename), err)
	}

	return nil
}
