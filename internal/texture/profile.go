package texture

import (
	"fmt"
	"sync"
	"time"

	"github.com/spacesedan/texture/internal/models"
)

// AgentProfile accumulates analyses for one agent over time. Appends are
// serialized by the profile's own lock; aggregate accessors snapshot under
// the same lock, so readers never observe a torn append.
type AgentProfile struct {
	mu sync.RWMutex

	agentName   string
	createdAt   string
	lastUpdated string
	analyses    []models.AnalysisResult
}

// ProfileDocument is the persistable form of a profile, including the raw
// analyses so a restored profile re-derives the same aggregates.
type ProfileDocument struct {
	AgentName   string                  `json:"agent_name"`
	CreatedAt   string                  `json:"created_at"`
	LastUpdated string                  `json:"last_updated"`
	Analyses    []models.AnalysisResult `json:"analyses"`
}

func (p *AgentProfile) AgentName() string { return p.agentName }

func (p *AgentProfile) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.analyses)
}

func (p *AgentProfile) add(analysis models.AnalysisResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.analyses = append(p.analyses, analysis)
	p.lastUpdated = time.Now().Format(time.RFC3339)
}

// DominantPatterns counts how often each dimension was dominant across the
// stored analyses. Only dimensions that were dominant at least once appear.
func (p *AgentProfile) DominantPatterns() map[string]int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	counts := make(map[string]int)
	for _, a := range p.analyses {
		counts[a.DominantEmotion]++
	}
	return counts
}

// AverageProfile returns the mean score per dimension across the stored
// analyses. Dimensions whose mean rounds to zero are omitted.
func (p *AgentProfile) AverageProfile() map[string]float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	averages := make(map[string]float64)
	if len(p.analyses) == 0 {
		return averages
	}

	for _, dim := range registry {
		sum := 0.0
		for _, a := range p.analyses {
			sum += a.DimensionScores[dim.name]
		}
		if mean := round2(sum / float64(len(p.analyses))); mean > 0 {
			averages[dim.name] = mean
		}
	}
	return averages
}

// EmotionalArc returns the ordered dominant/intensity pairs for the stored
// analyses, oldest first.
func (p *AgentProfile) EmotionalArc() []models.ArcEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	arc := make([]models.ArcEntry, len(p.analyses))
	for i, a := range p.analyses {
		arc[i] = models.ArcEntry{
			Sender:    a.Sender,
			Dominant:  a.DominantEmotion,
			Intensity: a.OverallIntensity,
		}
	}
	return arc
}

// Snapshot renders the profile with all derived aggregates.
func (p *AgentProfile) Snapshot() models.ProfileSnapshot {
	snapshot := models.ProfileSnapshot{
		DominantPatterns: p.DominantPatterns(),
		AverageProfile:   p.AverageProfile(),
		EmotionalArc:     p.EmotionalArc(),
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	snapshot.AgentName = p.agentName
	snapshot.CreatedAt = p.createdAt
	snapshot.LastUpdated = p.lastUpdated
	snapshot.TotalAnalyses = len(p.analyses)
	return snapshot
}

// Export returns the persistable form of the profile.
func (p *AgentProfile) Export() ProfileDocument {
	p.mu.RLock()
	defer p.mu.RUnlock()

	analyses := make([]models.AnalysisResult, len(p.analyses))
	copy(analyses, p.analyses)
	return ProfileDocument{
		AgentName:   p.agentName,
		CreatedAt:   p.createdAt,
		LastUpdated: p.lastUpdated,
		Analyses:    analyses,
	}
}

// ProfileBook owns the per-agent profiles of one process. Profiles are
// created on first append and live until the book is dropped.
type ProfileBook struct {
	mu       sync.RWMutex
	profiles map[string]*AgentProfile
}

func NewProfileBook() *ProfileBook {
	return &ProfileBook{profiles: make(map[string]*AgentProfile)}
}

// AddToProfile appends the analysis to the agent's profile, creating the
// profile on first use, and returns the updated profile.
func (b *ProfileBook) AddToProfile(agentID string, analysis models.AnalysisResult) *AgentProfile {
	b.mu.Lock()
	profile, ok := b.profiles[agentID]
	if !ok {
		now := time.Now().Format(time.RFC3339)
		profile = &AgentProfile{
			agentName:   agentID,
			createdAt:   now,
			lastUpdated: now,
		}
		b.profiles[agentID] = profile
	}
	b.mu.Unlock()

	profile.add(analysis)
	return profile
}

// GetProfile returns the agent's profile, or ErrProfileNotFound if nothing
// was ever appended for it.
func (b *ProfileBook) GetProfile(agentID string) (*AgentProfile, error) {
	b.mu.RLock()
	profile, ok := b.profiles[agentID]
	b.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, agentID)
	}
	return profile, nil
}

// Restore installs a persisted profile document, replacing any in-memory
// profile for the same agent.
func (b *ProfileBook) Restore(doc ProfileDocument) *AgentProfile {
	profile := &AgentProfile{
		agentName:   doc.AgentName,
		createdAt:   doc.CreatedAt,
		lastUpdated: doc.LastUpdated,
		analyses:    append([]models.AnalysisResult(nil), doc.Analyses...),
	}

	b.mu.Lock()
	b.profiles[doc.AgentName] = profile
	b.mu.Unlock()
	return profile
}
