package texture

import "regexp"

// Amplifiers push the modifier up by 0.1 per occurrence, diminishers pull it
// down by 0.1. The result is clamped to [0.5, 2.0]. Occurrences stack with
// no decay.
var (
	amplifiers = compilePatterns([]string{
		`very`, `extremely`, `incredibly`, `immensely`,
		`deeply`, `profoundly`, `intensely`, `overwhelmingly`,
		`absolutely`, `completely`, `totally`, `utterly`,
		`so\s+(?:much|very)`,
	})

	diminishers = compilePatterns([]string{
		`slightly`, `somewhat`, `a bit`, `a little`,
		`kind of`, `sort of`, `maybe`, `perhaps`,
		`mildly`, `faintly`,
	})
)

const (
	modifierStep = 0.1
	modifierMin  = 0.5
	modifierMax  = 2.0
)

// intensityModifier scans text for amplifying and diminishing words and
// returns a single multiplicative modifier.
func intensityModifier(text string) float64 {
	modifier := 1.0
	modifier += modifierStep * float64(countMatches(amplifiers, text))
	modifier -= modifierStep * float64(countMatches(diminishers, text))

	if modifier < modifierMin {
		return modifierMin
	}
	if modifier > modifierMax {
		return modifierMax
	}
	return modifier
}

func countMatches(patterns []*regexp.Regexp, text string) int {
	total := 0
	for _, p := range patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}
