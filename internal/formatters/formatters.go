package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"atsmatch/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "MatchReport", &MatchReportTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchReport", &MatchReportMarkdownFormatter{})
	registry.RegisterFormatter("text", "ExtractSkillsOutput", &SkillsTextFormatter{})
	registry.RegisterFormatter("markdown", "ExtractSkillsOutput", &SkillsMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.MatchReport:
		return "MatchReport"
	case types.ExtractSkillsOutput:
		return "ExtractSkillsOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func skillList(skills []string) string {
	if len(skills) == 0 {
		return "None"
	}
	return strings.Join(skills, ", ")
}

// MatchReportTextFormatter handles text formatting for match reports
type MatchReportTextFormatter struct{}

func (mtf *MatchReportTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchReport)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS MATCH SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %.2f/100 (%s)\n\n", result.FinalScore, result.Verdict))

	output.WriteString("=== SCORE COMPONENTS ===\n")
	output.WriteString(fmt.Sprintf("Semantic Similarity: %.2f/100\n", result.Components.Semantic))
	output.WriteString(fmt.Sprintf("Skill Match:         %.0f%%\n", result.Components.SkillRatio*100))
	output.WriteString(fmt.Sprintf("Resume Structure:    %d/100\n", result.Components.Structure))
	output.WriteString(fmt.Sprintf("Experience Fit:      %d/100\n\n", result.Components.Experience))

	output.WriteString(fmt.Sprintf("=== EXTRACTED SKILLS (source: %s) ===\n", result.SkillSource))
	output.WriteString(skillList(result.ExtractedSkills))
	output.WriteString("\n\n")

	output.WriteString("=== MATCHED SKILLS ===\n")
	output.WriteString(skillList(result.MatchedSkills))
	output.WriteString("\n\n")

	output.WriteString("=== MISSING SKILLS ===\n")
	output.WriteString(skillList(result.MissingSkills))
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("\n=== SUGGESTIONS ===\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (mtf *MatchReportTextFormatter) SupportedType() string {
	return "MatchReport"
}

// MatchReportMarkdownFormatter handles markdown formatting for match reports
type MatchReportMarkdownFormatter struct{}

func (mmf *MatchReportMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchReport)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Match Report\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %.2f/100 (%s)\n\n", result.FinalScore, result.Verdict))

	output.WriteString("## Score Components\n\n")
	output.WriteString(fmt.Sprintf("- **Semantic Similarity:** %.2f/100\n", result.Components.Semantic))
	output.WriteString(fmt.Sprintf("- **Skill Match:** %.0f%%\n", result.Components.SkillRatio*100))
	output.WriteString(fmt.Sprintf("- **Resume Structure:** %d/100\n", result.Components.Structure))
	output.WriteString(fmt.Sprintf("- **Experience Fit:** %d/100\n\n", result.Components.Experience))

	output.WriteString(fmt.Sprintf("## Extracted Skills (source: %s)\n\n", result.SkillSource))
	output.WriteString(skillList(result.ExtractedSkills))
	output.WriteString("\n\n")

	output.WriteString("## Matched Skills\n\n")
	output.WriteString(skillList(result.MatchedSkills))
	output.WriteString("\n\n")

	output.WriteString("## Missing Skills\n\n")
	output.WriteString(skillList(result.MissingSkills))
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("\n## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (mmf *MatchReportMarkdownFormatter) SupportedType() string {
	return "MatchReport"
}

// SkillsTextFormatter handles text formatting for extracted skills
type SkillsTextFormatter struct{}

func (stf *SkillsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractSkillsOutput)
	if !ok {
		return "", fmt.Errorf("expected ExtractSkillsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== EXTRACTED SKILLS (source: %s) ===\n\n", result.Source))
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}

	return output.String(), nil
}

func (stf *SkillsTextFormatter) SupportedType() string {
	return "ExtractSkillsOutput"
}

// SkillsMarkdownFormatter handles markdown formatting for extracted skills
type SkillsMarkdownFormatter struct{}

func (smf *SkillsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractSkillsOutput)
	if !ok {
		return "", fmt.Errorf("expected ExtractSkillsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Skills\n\n")
	output.WriteString(fmt.Sprintf("**Source:** %s\n\n", result.Source))
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}

	return output.String(), nil
}

func (smf *SkillsMarkdownFormatter) SupportedType() string {
	return "ExtractSkillsOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
