package texture

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// scoreDimensions counts pattern matches per dimension, weights them,
// normalizes per 100 words and applies the intensity modifier. Every
// dimension appears in the result, 0.0 when unmatched. The second return
// value holds the unique matched fragments per dimension (only dimensions
// that matched).
func scoreDimensions(text string, wordCount int, modifier float64) (map[string]float64, map[string][]string) {
	if wordCount < 1 {
		wordCount = 1
	}

	scores := make(map[string]float64, len(registry))
	fragments := make(map[string][]string)

	for _, dim := range registry {
		var matched []string
		for _, p := range dim.patterns {
			matched = append(matched, p.FindAllString(text, -1)...)
		}

		raw := float64(len(matched)) * dim.weight
		normalized := raw * 100 / float64(wordCount)
		scores[dim.name] = round2(normalized * modifier)

		if len(matched) > 0 {
			fragments[dim.name] = uniqueFolded(matched)
		}
	}

	return scores, fragments
}

// dominantDimension returns the highest-scoring dimension. Ties resolve to
// the dimension appearing first in registry order; a zero-signal text falls
// back to the first registry entry.
func dominantDimension(scores map[string]float64) (string, float64) {
	name := registry[0].name
	best := scores[name]
	for _, dim := range registry[1:] {
		if scores[dim.name] > best {
			name = dim.name
			best = scores[dim.name]
		}
	}
	return name, best
}

// signature builds the compact top-3 summary, e.g. "JOY:25|PEACE:12.5".
// Only nonzero dimensions appear; ties keep registry order.
func signature(scores map[string]float64) string {
	type entry struct {
		name  string
		score float64
	}

	entries := make([]entry, 0, len(registry))
	for _, dim := range registry {
		if scores[dim.name] > 0 {
			entries = append(entries, entry{dim.name, scores[dim.name]})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	if len(entries) > 3 {
		entries = entries[:3]
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.name + ":" + strconv.FormatFloat(e.score, 'f', -1, 64)
	}
	return strings.Join(parts, "|")
}

// overallIntensity is the mean over all ten dimensions, matched or not. It
// measures emotional density rather than peak strength.
func overallIntensity(scores map[string]float64) float64 {
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return round2(sum / float64(len(registry)))
}

func intensityLevel(intensity float64) string {
	switch {
	case intensity < 1.0:
		return "subtle"
	case intensity < 3.0:
		return "moderate"
	case intensity < 6.0:
		return "strong"
	default:
		return "intense"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func uniqueFolded(matched []string) []string {
	seen := make(map[string]struct{}, len(matched))
	unique := make([]string, 0, len(matched))
	for _, m := range matched {
		folded := strings.ToLower(m)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		unique = append(unique, folded)
	}
	return unique
}
