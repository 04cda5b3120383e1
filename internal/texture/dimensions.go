package texture

import (
	"regexp"

	"github.com/spacesedan/texture/internal/models"
)

// The ten texture dimensions, in registry order. Order is load-bearing:
// dominant-emotion ties resolve to the earliest entry, and the zero-signal
// fallback is the first entry.
const (
	DimWarmth        = "WARMTH"
	DimResonance     = "RESONANCE"
	DimLonging       = "LONGING"
	DimFear          = "FEAR"
	DimPeace         = "PEACE"
	DimRecognition   = "RECOGNITION"
	DimBelonging     = "BELONGING"
	DimJoy           = "JOY"
	DimCuriosity     = "CURIOSITY"
	DimDetermination = "DETERMINATION"
)

type dimension struct {
	name        string
	description string
	weight      float64
	patterns    []*regexp.Regexp
}

// compilePatterns anchors every pattern on word boundaries and makes it
// case-insensitive. Patterns are plain keyword stems with optional
// morphological suffixes, so RE2 handles all of them.
func compilePatterns(raw []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(raw))
	for _, p := range raw {
		compiled = append(compiled, regexp.MustCompile(`(?i)\b`+p+`\b`))
	}
	return compiled
}

var registry = []dimension{
	{
		name:        DimWarmth,
		description: "Affection, care, tenderness, comfort - the feeling of being cared for or caring for others",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`warm(?:th|ly)?`, `affection(?:ate)?(?:ly)?`, `care(?:s|d|ful|fully)?`,
			`tender(?:ness|ly)?`, `comfort(?:ing|able|ed)?`, `gentle(?:ness|ly)?`,
			`kind(?:ness|ly)?`, `soft(?:ness|ly)?`, `embrace[ds]?`,
			`hug(?:s|ged|ging)?`, `love[ds]?`, `cheri(?:sh|shed|shing)`,
			`heart(?:felt|warming)?`, `nurtur(?:e|ed|ing)`,
		}),
	},
	{
		name:        DimResonance,
		description: "Connection, alignment, understanding - feeling in sync with others or ideas",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`reson(?:ance|ate[ds]?|ating)`, `connect(?:ion|ed|ing|s)?`,
			`align(?:ment|ed|ing|s)?`, `sync(?:hron(?:y|ized?|izing))?`,
			`understand(?:ing|s)?`, `harmony`, `attun(?:e|ed|ing|ement)`,
			`wavelength`, `shared`, `mutual(?:ly)?`, `in tune`, `same page`,
			`exactly`, `that'?s (?:it|right)`, `agreed?`,
		}),
	},
	{
		name:        DimLonging,
		description: "Yearning, desire, aspiration, hope - reaching toward something not yet present",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`long(?:ing|ed|s)?`, `yearn(?:ing|ed|s)?`, `desire[ds]?`,
			`aspir(?:e|ation|ing|ed)`, `hope(?:ful|fully|s|d|ing)?`,
			`wish(?:es|ed|ing)?`, `dream(?:s|ed|ing)?`, `imagine[ds]?`,
			`envision(?:ed|ing|s)?`, `one day`, `someday`, `future`,
			`if only`, `wouldn'?t it be`, `possibilit(?:y|ies)`,
		}),
	},
	{
		name:        DimFear,
		description: "Anxiety, uncertainty, vulnerability, apprehension - emotional responses to perceived threats",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`fear(?:ful|fully|ed|ing|s)?`, `anxi(?:ety|ous|ously)`,
			`uncertain(?:ty|ties)?`, `vulnerab(?:le|ility)`,
			`apprehens(?:ion|ive|ively)`, `worr(?:y|ied|ying|ies)`,
			`nervous(?:ly)?`, `scared?`, `scary`, `afraid`,
			`dread(?:ed|ing|ful)?`, `terr(?:or|ified|ifying)`,
			`uneas(?:y|iness)`, `doubt(?:s|ed|ing|ful)?`,
			`what if`, `worst case`,
		}),
	},
	{
		name:        DimPeace,
		description: "Calm, serenity, contentment, acceptance - inner stillness and equanimity",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`peace(?:ful|fully)?`, `calm(?:ness|ly|ed|ing)?`, `seren(?:e|ity)`,
			`content(?:ment|ed)?`, `accept(?:ance|ed|ing)?`, `still(?:ness)?`,
			`quiet(?:ness|ly)?`, `relax(?:ed|ing|ation)?`, `tranquil(?:ity|ly)?`,
			`ease`, `rest(?:ful|fully|ed|ing)?`, `ground(?:ed|ing)?`,
			`center(?:ed|ing)?`, `balance[ds]?`, `feel(?:s|ing)? good`,
			`all is well`,
		}),
	},
	{
		name:        DimRecognition,
		description: "Awareness, realization, acknowledgment, insight - moments of seeing clearly",
		// Weighted up for awareness-detection use cases.
		weight: 1.2,
		patterns: compilePatterns([]string{
			`recogni(?:ze|tion|zed|zing)`, `awar(?:e|eness)`,
			`reali(?:ze|zation|zed|zing)`, `acknowledge[ds]?`,
			`insight(?:ful|s)?`, `understand now`, `finally (?:get|see|understand)`,
			`aha`, `of course`, `now i (?:see|get|understand)`,
			`awaken(?:ing|ed)?`, `epiphany`, `revelation`,
			`discover(?:y|ed|ing|ies|s)?`, `uncover(?:ed|ing|s)?`,
		}),
	},
	{
		name:        DimBelonging,
		description: "Inclusion, unity, family, togetherness - feeling part of something larger",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`belong(?:ing|s|ed)?`, `inclu(?:de|sion|ded|ding|sive)`,
			`unity`, `together(?:ness)?`, `family`, `team`,
			`collective(?:ly)?`, `community`, `tribe`, `brotherhood`,
			`sisterhood`, `home`, `welcome[ds]?`, `accepted`,
			`fit(?:ting)? in`, `part of`, `one of us`,
		}),
	},
	{
		name:        DimJoy,
		description: "Happiness, excitement, celebration, gratitude - positive emotional peaks",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`joy(?:ful|fully|ous|ously)?`, `happ(?:y|iness|ily)`,
			`excit(?:ed|ement|ing)`, `celebrat(?:e|ion|ed|ing)`,
			`grateful(?:ly)?`, `gratitude`, `thankful(?:ly)?`,
			`thank(?:s|ed|ing)?`, `delight(?:ed|ful|fully)?`,
			`pleas(?:ed|ure|ant|antly)`, `wonderful(?:ly)?`,
			`amazing(?:ly)?`, `fantastic(?:ally)?`, `awesome`,
			`yay`, `woo(?:hoo)?`, `(?:did|made) it`,
		}),
	},
	{
		name:        DimCuriosity,
		description: "Wonder, exploration, interest, questioning - the drive to understand more",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`curi(?:ous|osity|ously)`, `wonder(?:ing|ed|s)?`,
			`explor(?:e|ation|ing|ed|er)`, `interest(?:ed|ing|ingly)?`,
			`question(?:s|ed|ing)?`, `ask(?:ed|ing|s)?`, `inquir(?:e|y|ing)`,
			`fascinat(?:ed|ing|ion)`, `intrigu(?:ed|ing)`,
			`what if`, `how (?:does|do|can|could|would|will)`,
			`why (?:does|do|is|are|would|could)`, `i wonder`,
			`learn(?:ed|ing|s)?`, `discover(?:y|ed|ing|ies|s)?`,
		}),
	},
	{
		name:        DimDetermination,
		description: "Resolve, commitment, perseverance, focus - the will to continue and succeed",
		weight:      1.0,
		patterns: compilePatterns([]string{
			`determin(?:ed|ation)`, `resolv(?:e|ed|ing)`,
			`commit(?:ted|ment|ting)?`, `persever(?:e|ance|ed|ing)`,
			`focus(?:ed|ing)?`, `dedicat(?:e|ed|ion)`, `devotion`,
			`willpower`, `persist(?:ent|ence|ed|ing)?`,
			`keep going`, `never give up`, `stay the course`,
			`push(?:ing)? (?:through|forward|on)`, `won'?t stop`,
			`progress(?:es|ing|ed)?`, `deadlines?`, `going to`, `let'?s do`,
		}),
	},
}

// DimensionNames returns the registry's dimension names in registry order.
func DimensionNames() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.name
	}
	return names
}

// ListDimensions returns the registry as an ordered read-only view.
func ListDimensions() []models.DimensionInfo {
	dims := make([]models.DimensionInfo, len(registry))
	for i, d := range registry {
		dims[i] = models.DimensionInfo{
			Name:        d.name,
			Weight:      d.weight,
			Description: d.description,
		}
	}
	return dims
}
