package texture

import (
	"fmt"

	"github.com/spacesedan/texture/internal/models"
)

const unknownSender = "UNKNOWN"

// AnalyzeMessages runs Analyze over an ordered batch and aggregates the
// results. The input is consumed once, in order; the emotional arc preserves
// that order. Messages with empty content are skipped and counted via
// TotalMessages - AnalyzedMessages. An empty batch, or a batch where every
// entry was skipped, returns ErrEmptyBatch.
func AnalyzeMessages(messages []models.Message) (models.SequenceResult, error) {
	if len(messages) == 0 {
		return models.SequenceResult{}, ErrEmptyBatch
	}

	var analyses []models.AnalysisResult
	for _, msg := range messages {
		sender := msg.Sender
		if sender == "" {
			sender = unknownSender
		}

		analysis, err := Analyze(msg.Content, sender)
		if err != nil {
			// Malformed entry: skip and keep going. The count gap
			// is visible in the result.
			continue
		}

		analysis.Sender = sender
		analysis.MessageTimestamp = msg.Timestamp
		analyses = append(analyses, analysis)
	}

	if len(analyses) == 0 {
		return models.SequenceResult{}, fmt.Errorf("%w: no analyzable messages in batch of %d", ErrEmptyBatch, len(messages))
	}

	avgScores := averageScores(analyses)
	dominantOverall, _ := dominantDimension(avgScores)

	arc := make([]models.ArcEntry, len(analyses))
	for i, a := range analyses {
		arc[i] = models.ArcEntry{
			Sender:    a.Sender,
			Dominant:  a.DominantEmotion,
			Intensity: a.OverallIntensity,
		}
	}

	return models.SequenceResult{
		TotalMessages:      len(messages),
		AnalyzedMessages:   len(analyses),
		AverageScores:      avgScores,
		DominantOverall:    dominantOverall,
		EmotionalArc:       arc,
		BySender:           senderStats(analyses),
		IndividualAnalyses: analyses,
	}, nil
}

func averageScores(analyses []models.AnalysisResult) map[string]float64 {
	avg := make(map[string]float64, len(registry))
	for _, dim := range registry {
		sum := 0.0
		for _, a := range analyses {
			sum += a.DimensionScores[dim.name]
		}
		avg[dim.name] = round2(sum / float64(len(analyses)))
	}
	return avg
}

func senderStats(analyses []models.AnalysisResult) map[string]models.SenderStats {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range analyses {
		sums[a.Sender] += a.OverallIntensity
		counts[a.Sender]++
	}

	stats := make(map[string]models.SenderStats, len(counts))
	for sender, count := range counts {
		stats[sender] = models.SenderStats{
			Count:        count,
			AvgIntensity: round2(sums[sender] / float64(count)),
		}
	}
	return stats
}
