// Package sentiment provides a VADER compound-valence baseline that can be
// reported next to a texture analysis. The texture dimensions themselves are
// never derived from it.
package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/spacesedan/texture/internal/models"
	"github.com/spacesedan/texture/internal/preprocess"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Baseline returns the VADER compound score and a coarse label for text.
func Baseline(text string) models.ValenceBaseline {
	plain := preprocess.Flatten(text)
	scores := analyzer.PolarityScores(plain)

	var label string
	switch {
	case scores.Compound >= 0.20:
		label = "positive"
	case scores.Compound <= -0.20:
		label = "negative"
	default:
		label = "neutral"
	}

	return models.ValenceBaseline{Score: scores.Compound, Label: label}
}
