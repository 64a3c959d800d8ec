package ai

import (
	"context"

	"atsmatch/internal/types"
)

// AIProvider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ExtractSkills(ctx context.Context, input types.ExtractSkillsInput) ([]string, *TokenUsage, error)
	SuggestImprovements(ctx context.Context, resumeText, jobDescription string) ([]string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
