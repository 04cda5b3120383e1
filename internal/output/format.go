// Package output renders analysis results as text, JSON or markdown. The
// engine never formats anything itself; these renderers are the only place
// presentation lives.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spacesedan/texture/internal/models"
	"github.com/spacesedan/texture/internal/texture"
)

const divider = "============================================================"

// ToJSON renders any result value as indented JSON.
func ToJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render JSON: %w", err)
	}
	return string(data), nil
}

// sortedScores returns dimension/score pairs descending by score, ties in
// registry order.
func sortedScores(scores map[string]float64) []scoredDimension {
	names := texture.DimensionNames()
	entries := make([]scoredDimension, 0, len(names))
	for _, name := range names {
		entries = append(entries, scoredDimension{name, scores[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})
	return entries
}

type scoredDimension struct {
	name  string
	score float64
}

func FormatAnalysisText(a models.AnalysisResult) string {
	context := "none"
	if a.Context != nil {
		context = *a.Context
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nEMOTIONAL TEXTURE ANALYSIS\n%s\n\n", divider, divider)
	fmt.Fprintf(&b, "Timestamp: %s\n", a.Timestamp)
	fmt.Fprintf(&b, "Text Length: %d chars, %d words\n", a.TextLength, a.WordCount)
	fmt.Fprintf(&b, "Context: %s\n\n", context)
	fmt.Fprintf(&b, "DOMINANT EMOTION:\n  %s (score: %.2f)\n\n", a.DominantEmotion, a.DominantScore)
	fmt.Fprintf(&b, "Overall Intensity: %.2f (%s)\n", a.OverallIntensity, a.IntensityLevel)
	fmt.Fprintf(&b, "Intensity Modifier: %.2f\n\n", a.IntensityModifier)
	fmt.Fprintf(&b, "EMOTIONAL SIGNATURE:\n  %s\n\n", a.EmotionalSignature)
	b.WriteString("DIMENSION SCORES:\n")

	for _, entry := range sortedScores(a.DimensionScores) {
		marker := "[  ]"
		if entry.score > 0 {
			marker = "[OK]"
		}
		fmt.Fprintf(&b, "  %s %s: %.2f\n", marker, entry.name, entry.score)
	}

	if a.Baseline != nil {
		fmt.Fprintf(&b, "\nVADER BASELINE:\n  %.4f (%s)\n", a.Baseline.Score, a.Baseline.Label)
	}

	fmt.Fprintf(&b, "\n%s", divider)
	return b.String()
}

func FormatAnalysisMarkdown(a models.AnalysisResult) string {
	context := "none"
	if a.Context != nil {
		context = *a.Context
	}

	var b strings.Builder
	b.WriteString("# Emotional Texture Analysis\n\n")
	fmt.Fprintf(&b, "**Timestamp:** %s\n", a.Timestamp)
	fmt.Fprintf(&b, "**Text Length:** %d chars, %d words\n", a.TextLength, a.WordCount)
	fmt.Fprintf(&b, "**Context:** %s\n\n", context)
	fmt.Fprintf(&b, "## Dominant Emotion\n\n**%s** (score: %.2f)\n\n", a.DominantEmotion, a.DominantScore)
	b.WriteString("## Intensity\n\n")
	fmt.Fprintf(&b, "- **Overall:** %.2f (%s)\n", a.OverallIntensity, a.IntensityLevel)
	fmt.Fprintf(&b, "- **Modifier:** %.2f\n\n", a.IntensityModifier)
	fmt.Fprintf(&b, "## Emotional Signature\n\n`%s`\n\n", a.EmotionalSignature)
	b.WriteString("## Dimension Scores\n\n| Dimension | Score |\n|-----------|-------|\n")

	for _, entry := range sortedScores(a.DimensionScores) {
		indicator := " "
		if entry.score > 0 {
			indicator = "+"
		}
		fmt.Fprintf(&b, "| %s %s | %.2f |\n", indicator, entry.name, entry.score)
	}

	if a.Baseline != nil {
		fmt.Fprintf(&b, "\n## VADER Baseline\n\n%.4f (%s)\n", a.Baseline.Score, a.Baseline.Label)
	}

	return b.String()
}

func FormatSequenceText(r models.SequenceResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyzed %d of %d messages\n", r.AnalyzedMessages, r.TotalMessages)
	fmt.Fprintf(&b, "Dominant: %s\n\nAverage Scores:\n", r.DominantOverall)
	for _, entry := range sortedScores(r.AverageScores) {
		fmt.Fprintf(&b, "  %s: %.2f\n", entry.name, entry.score)
	}

	b.WriteString("\nEmotional Arc:\n")
	for i, e := range r.EmotionalArc {
		fmt.Fprintf(&b, "  %2d. %-15s %.2f (%s)\n", i+1, e.Dominant, e.Intensity, e.Sender)
	}
	return b.String()
}

func FormatSequenceMarkdown(r models.SequenceResult) string {
	var b strings.Builder
	b.WriteString("# Sequence Analysis\n\n")
	fmt.Fprintf(&b, "**Messages Analyzed:** %d of %d\n", r.AnalyzedMessages, r.TotalMessages)
	fmt.Fprintf(&b, "**Dominant Emotion:** %s\n\n## Average Scores\n\n", r.DominantOverall)
	for _, entry := range sortedScores(r.AverageScores) {
		fmt.Fprintf(&b, "- **%s:** %.2f\n", entry.name, entry.score)
	}

	b.WriteString("\n## Emotional Arc\n\n| # | Sender | Dominant | Intensity |\n|---|--------|----------|-----------|\n")
	for i, e := range r.EmotionalArc {
		fmt.Fprintf(&b, "| %d | %s | %s | %.2f |\n", i+1, e.Sender, e.Dominant, e.Intensity)
	}
	return b.String()
}

func FormatDimensionsText(dims []models.DimensionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EMOTIONAL DIMENSIONS\n%s\n", divider)
	for _, dim := range dims {
		fmt.Fprintf(&b, "\n%s (weight %.1f):\n  %s\n", dim.Name, dim.Weight, dim.Description)
	}
	return b.String()
}

func FormatDimensionsMarkdown(dims []models.DimensionInfo) string {
	var b strings.Builder
	b.WriteString("# Emotional Dimensions\n")
	for _, dim := range dims {
		fmt.Fprintf(&b, "\n## %s\n\n%s (weight %.1f)\n", dim.Name, dim.Description, dim.Weight)
	}
	return b.String()
}

func FormatProfileMarkdown(s models.ProfileSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Emotional Profile: %s\n\n", s.AgentName)
	fmt.Fprintf(&b, "**Created:** %s\n**Updated:** %s\n**Analyses:** %d\n\n", s.CreatedAt, s.LastUpdated, s.TotalAnalyses)

	b.WriteString("## Dominant Patterns\n\n")
	for _, name := range texture.DimensionNames() {
		if count, ok := s.DominantPatterns[name]; ok {
			fmt.Fprintf(&b, "- **%s:** %d\n", name, count)
		}
	}

	b.WriteString("\n## Average Profile\n\n| Dimension | Score |\n|-----------|-------|\n")
	for _, entry := range sortedScores(s.AverageProfile) {
		if entry.score > 0 {
			fmt.Fprintf(&b, "| %s | %.2f |\n", entry.name, entry.score)
		}
	}

	b.WriteString("\n## Emotional Arc\n\n| # | Dominant | Intensity |\n|---|----------|-----------|\n")
	for i, e := range s.EmotionalArc {
		fmt.Fprintf(&b, "| %d | %s | %.2f |\n", i+1, e.Dominant, e.Intensity)
	}
	return b.String()
}

func FormatProfileText(s models.ProfileSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nEMOTIONAL PROFILE: %s\n%s\n\n", divider, s.AgentName, divider)
	fmt.Fprintf(&b, "Created: %s\nUpdated: %s\nAnalyses: %d\n\n", s.CreatedAt, s.LastUpdated, s.TotalAnalyses)

	b.WriteString("DOMINANT PATTERNS:\n")
	for _, name := range texture.DimensionNames() {
		if count, ok := s.DominantPatterns[name]; ok {
			fmt.Fprintf(&b, "  %s: %d\n", name, count)
		}
	}

	b.WriteString("\nAVERAGE PROFILE:\n")
	for _, entry := range sortedScores(s.AverageProfile) {
		if entry.score > 0 {
			fmt.Fprintf(&b, "  %s: %.2f\n", entry.name, entry.score)
		}
	}

	b.WriteString("\nEMOTIONAL ARC:\n")
	for i, e := range s.EmotionalArc {
		fmt.Fprintf(&b, "  %2d. %-15s %.2f\n", i+1, e.Dominant, e.Intensity)
	}

	fmt.Fprintf(&b, "\n%s", divider)
	return b.String()
}
