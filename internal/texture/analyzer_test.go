package texture

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		if _, err := Analyze(text, ""); !errors.Is(err, ErrEmptyText) {
			t.Errorf("Analyze(%q) error = %v, want ErrEmptyText", text, err)
		}
	}
}

func TestAnalyzeProgressReport(t *testing.T) {
	result, err := Analyze("I feel good about our progress today.", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// 7 words, one match each for PEACE ("feel good") and DETERMINATION
	// ("progress"): 100/7 = 14.29 per match.
	if result.WordCount != 7 {
		t.Errorf("word_count = %d, want 7", result.WordCount)
	}
	if result.DominantEmotion != DimPeace {
		t.Errorf("dominant = %s, want PEACE (registry-order tie-break)", result.DominantEmotion)
	}
	if !almostEqual(result.DominantScore, 14.29) {
		t.Errorf("dominant_score = %.2f, want 14.29", result.DominantScore)
	}
	if !almostEqual(result.DimensionScores[DimDetermination], 14.29) {
		t.Errorf("DETERMINATION = %.2f, want 14.29", result.DimensionScores[DimDetermination])
	}
	for _, name := range DimensionNames() {
		if name == DimPeace || name == DimDetermination {
			continue
		}
		if result.DimensionScores[name] != 0 {
			t.Errorf("%s = %.2f, want 0.00", name, result.DimensionScores[name])
		}
	}
	if result.IntensityLevel != "moderate" {
		t.Errorf("intensity_level = %s, want moderate", result.IntensityLevel)
	}
	if result.EmotionalSignature != "PEACE:14.29|DETERMINATION:14.29" {
		t.Errorf("signature = %q", result.EmotionalSignature)
	}
}

func TestAnalyzeAnxiousDeadline(t *testing.T) {
	result, err := Analyze("I'm worried and anxious about the upcoming deadline. The uncertainty is overwhelming.", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// 12 words; FEAR matches worried, anxious and uncertainty (3 * 100/12),
	// DETERMINATION matches deadline (100/12).
	if result.DominantEmotion != DimFear {
		t.Errorf("dominant = %s, want FEAR", result.DominantEmotion)
	}
	if !almostEqual(result.DominantScore, 25.00) {
		t.Errorf("dominant_score = %.2f, want 25.00", result.DominantScore)
	}
	if !almostEqual(result.DimensionScores[DimDetermination], 8.33) {
		t.Errorf("DETERMINATION = %.2f, want 8.33", result.DimensionScores[DimDetermination])
	}
	if !almostEqual(result.IntensityModifier, 1.0) {
		t.Errorf("intensity_modifier = %.2f, want 1.00", result.IntensityModifier)
	}
	if result.IntensityLevel != "strong" {
		t.Errorf("intensity_level = %s, want strong", result.IntensityLevel)
	}
	if result.EmotionalSignature != "FEAR:25|DETERMINATION:8.33" {
		t.Errorf("signature = %q", result.EmotionalSignature)
	}
}

func TestAnalyzeZeroSignalFallsBack(t *testing.T) {
	result, err := Analyze("The printer is out of toner.", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.DominantEmotion != DimWarmth {
		t.Errorf("dominant = %s, want WARMTH fallback", result.DominantEmotion)
	}
	if result.DominantScore != 0 {
		t.Errorf("dominant_score = %.2f, want 0.00", result.DominantScore)
	}
	if result.OverallIntensity != 0 {
		t.Errorf("overall_intensity = %.2f, want 0.00", result.OverallIntensity)
	}
	if result.IntensityLevel != "subtle" {
		t.Errorf("intensity_level = %s, want subtle", result.IntensityLevel)
	}
	if result.EmotionalSignature != "" {
		t.Errorf("signature = %q, want empty", result.EmotionalSignature)
	}
	if len(result.DimensionScores) != 10 {
		t.Errorf("got %d dimension scores, want all 10", len(result.DimensionScores))
	}
}

func TestAnalyzeTieBreakFollowsRegistryOrder(t *testing.T) {
	// "hope" hits LONGING and "fear" hits FEAR, one match each; LONGING
	// comes first in the registry.
	result, err := Analyze("fear and hope.", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.DominantEmotion != DimLonging {
		t.Errorf("dominant = %s, want LONGING", result.DominantEmotion)
	}
}

func TestAnalyzeAmplifierRaisesModifier(t *testing.T) {
	plain, err := Analyze("I am happy.", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	amplified, err := Analyze("I am extremely happy.", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !almostEqual(plain.IntensityModifier, 1.0) {
		t.Errorf("plain modifier = %.2f, want 1.00", plain.IntensityModifier)
	}
	if !almostEqual(amplified.IntensityModifier, 1.1) {
		t.Errorf("amplified modifier = %.2f, want 1.10", amplified.IntensityModifier)
	}
}

func TestAnalyzeContext(t *testing.T) {
	result, err := Analyze("I am happy.", "FORGE")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Context == nil || *result.Context != "FORGE" {
		t.Errorf("context = %v, want FORGE", result.Context)
	}

	result, err = Analyze("I am happy.", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Context != nil {
		t.Errorf("context = %v, want nil", result.Context)
	}
}

func TestAnalyzeDimensionMatchesAreUniqueAndFolded(t *testing.T) {
	result, err := Analyze("Happy happy HAPPY day", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	matched := result.DimensionMatches[DimJoy]
	if len(matched) != 1 || matched[0] != "happy" {
		t.Errorf("JOY matches = %v, want [happy]", matched)
	}
	// Three occurrences still count toward the score: 3 * 100/4 = 75.
	if !almostEqual(result.DimensionScores[DimJoy], 75.0) {
		t.Errorf("JOY = %.2f, want 75.00", result.DimensionScores[DimJoy])
	}
}

func TestAnalyzeTextLengthCountsRunes(t *testing.T) {
	result, err := Analyze("héllo wörld", "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.TextLength != 11 {
		t.Errorf("text_length = %d, want 11 runes", result.TextLength)
	}
}
