package cli

import (
	"context"
	"fmt"

	"atsmatch/internal/ai"
	"atsmatch/internal/common"
	"atsmatch/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-description-file]",
	Short: "Score a resume against a job description",
	Long: `Score a resume against a job description the way an applicant
tracking system would. The command takes two arguments: the path to the
resume file and the path to the job description file. Plain text, markdown,
and PDF files are supported.

The report includes the final match score and verdict, the component
scores (skill coverage, semantic similarity, structure, experience), the
extracted, matched, and missing skills, and optionally AI improvement
suggestions when enabled in the configuration.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	pipeline, err := buildAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	scoreConfig.MaxFileSize = cfg.App.MaxFileSize

	createInput := func(contents []string) (types.ScoreResumeInput, error) {
		if len(contents) != 2 {
			return types.ScoreResumeInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.ScoreResumeInput{
			Resume:         contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input types.ScoreResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, input types.ScoreResumeInput) (types.MatchReport, *ai.TokenUsage, error) {
		return pipeline.ScoreResume(ctx, input)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
