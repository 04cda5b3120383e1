package texture

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spacesedan/texture/internal/models"
)

func mustAnalyze(t *testing.T, text string) models.AnalysisResult {
	t.Helper()
	r, err := Analyze(text, "")
	if err != nil {
		t.Fatalf("Analyze(%q) failed: %v", text, err)
	}
	return r
}

func TestProfileNotFound(t *testing.T) {
	book := NewProfileBook()
	if _, err := book.GetProfile("UNKNOWN_AGENT"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("GetProfile error = %v, want ErrProfileNotFound", err)
	}
}

func TestProfileAccumulation(t *testing.T) {
	book := NewProfileBook()
	texts := []string{
		"I am happy.",
		"I am so happy today!",
		"I am worried.",
	}
	for _, text := range texts {
		book.AddToProfile("FORGE", mustAnalyze(t, text))
	}

	profile, err := book.GetProfile("FORGE")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}

	if profile.Len() != len(texts) {
		t.Errorf("Len = %d, want %d", profile.Len(), len(texts))
	}

	patterns := profile.DominantPatterns()
	total := 0
	for _, count := range patterns {
		total += count
	}
	if total != len(texts) {
		t.Errorf("dominant pattern counts sum to %d, want %d", total, len(texts))
	}
	if patterns[DimJoy] != 2 || patterns[DimFear] != 1 {
		t.Errorf("patterns = %v, want JOY:2 FEAR:1", patterns)
	}
}

func TestProfileAverageOmitsZeroDimensions(t *testing.T) {
	book := NewProfileBook()
	book.AddToProfile("FORGE", mustAnalyze(t, "I am happy."))

	averages, err := profileAverages(book, "FORGE")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := averages[DimJoy]; !ok {
		t.Error("average profile missing JOY")
	}
	if _, ok := averages[DimFear]; ok {
		t.Errorf("average profile contains zero-mean FEAR: %v", averages)
	}
}

func profileAverages(book *ProfileBook, agent string) (map[string]float64, error) {
	profile, err := book.GetProfile(agent)
	if err != nil {
		return nil, err
	}
	return profile.AverageProfile(), nil
}

func TestProfileArcOrder(t *testing.T) {
	book := NewProfileBook()
	texts := []string{"I am worried.", "I am calm.", "I am happy."}
	for _, text := range texts {
		book.AddToProfile("FORGE", mustAnalyze(t, text))
	}

	profile, err := book.GetProfile("FORGE")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}

	arc := profile.EmotionalArc()
	want := []string{DimFear, DimPeace, DimJoy}
	if len(arc) != len(want) {
		t.Fatalf("arc length = %d, want %d", len(arc), len(want))
	}
	for i, dominant := range want {
		if arc[i].Dominant != dominant {
			t.Errorf("arc[%d] = %s, want %s", i, arc[i].Dominant, dominant)
		}
	}
}

func TestProfileSnapshot(t *testing.T) {
	book := NewProfileBook()
	book.AddToProfile("FORGE", mustAnalyze(t, "I am happy."))
	book.AddToProfile("FORGE", mustAnalyze(t, "I am calm."))

	profile, err := book.GetProfile("FORGE")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}

	snapshot := profile.Snapshot()
	if snapshot.AgentName != "FORGE" {
		t.Errorf("agent_name = %s", snapshot.AgentName)
	}
	if snapshot.TotalAnalyses != 2 {
		t.Errorf("total_analyses = %d, want 2", snapshot.TotalAnalyses)
	}
	if snapshot.CreatedAt == "" || snapshot.LastUpdated == "" {
		t.Error("snapshot missing timestamps")
	}
}

func TestProfileExportRestoreRoundTrip(t *testing.T) {
	book := NewProfileBook()
	book.AddToProfile("FORGE", mustAnalyze(t, "I am happy."))
	book.AddToProfile("FORGE", mustAnalyze(t, "I am worried."))

	profile, err := book.GetProfile("FORGE")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}

	raw, err := json.Marshal(profile.Export())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc ProfileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	restored := NewProfileBook().Restore(doc)
	if restored.Len() != 2 {
		t.Errorf("restored Len = %d, want 2", restored.Len())
	}
	if restored.DominantPatterns()[DimJoy] != 1 {
		t.Errorf("restored patterns = %v", restored.DominantPatterns())
	}
}

func TestProfilesAreIndependent(t *testing.T) {
	book := NewProfileBook()
	book.AddToProfile("A", mustAnalyze(t, "I am happy."))
	book.AddToProfile("B", mustAnalyze(t, "I am worried."))

	a, err := book.GetProfile("A")
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 1 {
		t.Errorf("profile A Len = %d, want 1", a.Len())
	}
}
