package common

import (
	"context"
	"fmt"
	"os"

	"atsmatch/internal/ai"
	"atsmatch/internal/errors"
)

// CreateInputFunc defines how to build an analysis input from document contents.
type CreateInputFunc[Input any] func(contents []string) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// AnalysisFunc is a generic signature for analyzer operations with context and token usage.
type AnalysisFunc[Input, Output any] func(context.Context, Input) (Output, *ai.TokenUsage, error)

// RunAnalysisCommand encapsulates the common logic for document-based CLI
// commands: read and validate the input documents, run the analysis
// operation, report token usage and write the formatted result.
func RunAnalysisCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	args []string,
	createInput CreateInputFunc[Input],
	operation AnalysisFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	fileProcessor := NewFileProcessor(logger, cmdConfig.MaxFileSize)
	outputHandler := NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadDocuments(args...)
	if err != nil {
		return err
	}

	input, err := createInput(contents)
	if err != nil {
		return fmt.Errorf("failed to create input from documents: %w", err)
	}

	logDetails(input, cmdConfig)

	result, tokenUsage, err := operation(ctx, input)
	if err != nil {
		return err
	}

	if tokenUsage != nil {
		if logger != nil {
			logger.Info("AI token usage", "input_tokens", tokenUsage.InputTokens, "output_tokens", tokenUsage.OutputTokens, "total_tokens", tokenUsage.TotalTokens)
		} else {
			fmt.Fprintf(os.Stderr, "AI token usage: input=%d, output=%d, total=%d\n", tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
		}
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
