package cli

import (
	"context"
	"fmt"

	"atsmatch/internal/ai"
	"atsmatch/internal/common"
	"atsmatch/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [job-description-file]",
	Short: "Extract the required skills from a job description",
	Long: `Extract the skills a job description asks for. The AI extractor is
tried first; when it fails or returns nothing usable, a keyword heuristic
takes over and the output notes which source produced the list.

Every extracted skill is normalized to its canonical lowercase form so the
same skill never appears twice under different spellings.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if extractConfig.OutputFormat == "" {
			extractConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(extractConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runExtract,
}

var extractConfig common.CommandConfig

func init() {
	extractCmd.Flags().StringVarP(&extractConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = extractCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	pipeline, err := buildAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	extractConfig.MaxFileSize = cfg.App.MaxFileSize

	createInput := func(contents []string) (types.ExtractSkillsInput, error) {
		if len(contents) != 1 {
			return types.ExtractSkillsInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ExtractSkillsInput{
			JobDescription: contents[0],
		}, nil
	}

	logDetails := func(input types.ExtractSkillsInput, cfg common.CommandConfig) {
		logger.Info("Starting skill extraction",
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	extractOperation := func(ctx context.Context, input types.ExtractSkillsInput) (types.ExtractSkillsOutput, *ai.TokenUsage, error) {
		return pipeline.ExtractSkills(ctx, input)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		extractConfig,
		args,
		createInput,
		extractOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract skills: %w", err)
	}
	logger.Info("Skill extraction completed successfully")
	return nil
}
