package common

import (
	"fmt"

	"atsmatch/internal/errors"
	"atsmatch/internal/formatters"
)

// CommandConfig holds common configuration for commands
type CommandConfig struct {
	OutputFile   string
	OutputFormat string
	// MaxFileSize caps input document reads in bytes; 0 means unlimited
	MaxFileSize int64
}

// OutputHandler handles formatting and writing output
type OutputHandler struct {
	fileProcessor *FileProcessor
	registry      *formatters.FormatterRegistry
	logger        *errors.Logger
}

// NewOutputHandler creates a new output handler
func NewOutputHandler(logger *errors.Logger) *OutputHandler {
	return &OutputHandler{
		fileProcessor: NewFileProcessor(logger, 0),
		registry:      formatters.GlobalRegistry,
		logger:        logger,
	}
}

// HandleOutput formats data and writes it to the specified output
func (oh *OutputHandler) HandleOutput(data any, config CommandConfig) error {
	if err := oh.fileProcessor.ValidateOutputFile(config.OutputFile); err != nil {
		return err
	}

	output, err := oh.registry.Format(data, config.OutputFormat)
	if err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Failed to format output as %s", config.OutputFormat), err)
	}

	if config.OutputFile != "" {
		err = oh.fileProcessor.WriteFile(config.OutputFile, output)
		if err != nil {
			return err // Error already wrapped by WriteFile
		}

		oh.logger.Info("Output written successfully",
			"file", config.OutputFile, "format", config.OutputFormat)
	} else {
		fmt.Print(output)
	}

	return nil
}

// GetSupportedFormats returns all supported output formats
func (oh *OutputHandler) GetSupportedFormats() []string {
	return oh.registry.GetSupportedFormats()
}
