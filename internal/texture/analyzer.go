// Package texture scores text against ten fixed emotional dimensions using
// weighted lexical patterns, normalized per 100 words and adjusted by
// intensity-modifying words. Analysis is a pure function of the input text
// and the fixed registry; the registry and modifier tables are read-only and
// safe for concurrent use.
package texture

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/texture/internal/models"
)

// Analyze scores a single text. context is an optional free-form label
// (agent id, session tag); pass "" for none. Empty or whitespace-only text
// returns ErrEmptyText.
func Analyze(text string, context string) (models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.AnalysisResult{}, fmt.Errorf("%w: got %q", ErrEmptyText, text)
	}

	wordCount := len(strings.Fields(text))
	modifier := intensityModifier(text)
	scores, fragments := scoreDimensions(text, wordCount, modifier)
	dominant, dominantScore := dominantDimension(scores)
	intensity := overallIntensity(scores)

	result := models.AnalysisResult{
		Timestamp:          time.Now().Format(time.RFC3339),
		TextLength:         utf8.RuneCountInString(text),
		WordCount:          wordCount,
		DimensionScores:    scores,
		DimensionMatches:   fragments,
		DominantEmotion:    dominant,
		DominantScore:      dominantScore,
		OverallIntensity:   intensity,
		IntensityLevel:     intensityLevel(intensity),
		IntensityModifier:  round2(modifier),
		EmotionalSignature: signature(scores),
	}
	if context != "" {
		result.Context = &context
	}

	return result, nil
}
