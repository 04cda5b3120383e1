package models

// Message is one record from a message source (e.g. the communication_logs
// table of a message store). Only Content is required.
type Message struct {
	ID        int64  `json:"id,omitempty"`
	Content   string `json:"content"`
	Sender    string `json:"sender,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// AnalysisResult is the full scoring output for a single text. Field names
// are the wire contract consumed by renderers and the results sink.
type AnalysisResult struct {
	Timestamp          string              `json:"timestamp"`
	TextLength         int                 `json:"text_length"`
	WordCount          int                 `json:"word_count"`
	Context            *string             `json:"context"`
	DimensionScores    map[string]float64  `json:"dimension_scores"`
	DimensionMatches   map[string][]string `json:"dimension_matches,omitempty"`
	DominantEmotion    string              `json:"dominant_emotion"`
	DominantScore      float64             `json:"dominant_score"`
	OverallIntensity   float64             `json:"overall_intensity"`
	IntensityLevel     string              `json:"intensity_level"`
	IntensityModifier  float64             `json:"intensity_modifier"`
	EmotionalSignature string              `json:"emotional_signature"`

	// Populated when the result was produced inside a batch.
	Sender           string `json:"sender,omitempty"`
	MessageTimestamp string `json:"message_timestamp,omitempty"`

	// Optional VADER comparison, populated on request.
	Baseline *ValenceBaseline `json:"baseline,omitempty"`
}

// ValenceBaseline is a VADER compound score reported next to the texture
// dimensions for comparison against plain sentiment.
type ValenceBaseline struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// ArcEntry is the reduced per-message view inside an emotional arc.
type ArcEntry struct {
	Sender    string  `json:"sender,omitempty"`
	Dominant  string  `json:"dominant"`
	Intensity float64 `json:"intensity"`
}

// SenderStats aggregates the analyses attributed to one sender.
type SenderStats struct {
	Count        int     `json:"count"`
	AvgIntensity float64 `json:"avg_intensity"`
}

// SequenceResult aggregates an ordered batch of message analyses.
type SequenceResult struct {
	TotalMessages      int                    `json:"total_messages"`
	AnalyzedMessages   int                    `json:"analyzed_messages"`
	AverageScores      map[string]float64     `json:"average_scores"`
	DominantOverall    string                 `json:"dominant_overall"`
	EmotionalArc       []ArcEntry             `json:"emotional_arc"`
	BySender           map[string]SenderStats `json:"by_sender"`
	IndividualAnalyses []AnalysisResult       `json:"individual_analyses"`
}

// DimensionInfo is one registry entry as exposed by ListDimensions.
type DimensionInfo struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// ProfileSnapshot is the serialized view of an agent profile.
type ProfileSnapshot struct {
	AgentName        string             `json:"agent_name"`
	CreatedAt        string             `json:"created_at"`
	LastUpdated      string             `json:"last_updated"`
	TotalAnalyses    int                `json:"total_analyses"`
	DominantPatterns map[string]int     `json:"dominant_patterns"`
	AverageProfile   map[string]float64 `json:"average_profile"`
	EmotionalArc     []ArcEntry         `json:"emotional_arc"`
}
