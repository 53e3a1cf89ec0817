// Package matcher provides approximate string matching for movie titles.
// Scores are integers in the range 0-100 where 100 is an exact match,
// derived from the Levenshtein edit distance between the two strings.
package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scorer computes a similarity score between two strings.
type Scorer func(a, b string) int

// Result is a scored candidate returned by Extract.
type Result struct {
	Choice string
	Score  int
}

// Options configures Extract.
type Options struct {
	// Limit caps the number of results; zero or negative means no cap
	Limit int
	// Cutoff drops candidates scoring below it; zero scores are always dropped
	Cutoff int
	// Scorer defaults to WeightedRatio
	Scorer Scorer
	// Normalize lower-cases and trims both query and choices before scoring
	Normalize bool
}

// DefaultOptions returns the default options.
func DefaultOptions() *Options {
	return &Options{
		Limit:     5,
		Cutoff:    0,
		Scorer:    WeightedRatio,
		Normalize: true,
	}
}

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ratio is the normalized edit-distance similarity of a and b.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return round(100 * (1 - float64(dist)/float64(longest)))
}

// PartialRatio scores the shorter string against the best-matching
// window of the same length in the longer string.
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	needle := string(shorter)
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		score := Ratio(needle, string(longer[i:i+len(shorter)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio compares a and b after sorting their whitespace-separated words.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

// TokenSetRatio compares the shared words of a and b against each
// string's full word set, so extra words on one side cost little.
func TokenSetRatio(a, b string) int {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var shared, onlyA, onlyB []string
	for token := range setA {
		if setB[token] {
			shared = append(shared, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if !setA[token] {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sect := strings.Join(shared, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	best := Ratio(combinedA, combinedB)
	if sect != "" {
		if r := Ratio(sect, combinedA); r > best {
			best = r
		}
		if r := Ratio(sect, combinedB); r > best {
			best = r
		}
	}
	return best
}

// PartialTokenRatio is PartialRatio over the sorted word lists of a and
// b. Strings sharing a whole word score 100.
func PartialTokenRatio(a, b string) int {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	for token := range setA {
		if setB[token] {
			return 100
		}
	}
	return PartialRatio(sortTokens(a), sortTokens(b))
}

// WeightedRatio picks the best of several scorers depending on how much
// the lengths of a and b differ. Close lengths use the plain and token
// scores. Once one string is 1.5 times longer the partial scores take
// over, scaled down further when it is more than 8 times longer.
func WeightedRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	best := float64(Ratio(a, b))

	la, lb := float64(utf8.RuneCountInString(a)), float64(utf8.RuneCountInString(b))
	lengthRatio := math.Max(la, lb) / math.Min(la, lb)

	if lengthRatio < 1.5 {
		tokens := math.Max(float64(TokenSortRatio(a, b)), float64(TokenSetRatio(a, b)))
		return round(math.Max(best, tokens*tokenScale))
	}

	partialScale := 0.9
	if lengthRatio > 8 {
		partialScale = 0.6
	}
	best = math.Max(best, float64(PartialRatio(a, b))*partialScale)
	best = math.Max(best, float64(PartialTokenRatio(a, b))*tokenScale*partialScale)
	return round(best)
}

// tokenScale discounts word-level scores against a plain match.
const tokenScale = 0.95

// Extract scores every choice against query and returns the best ones,
// ordered by descending score and then by choice.
func Extract(query string, choices []string, opts ...*Options) []Result {
	options := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		options = opts[0]
	}
	scorer := options.Scorer
	if scorer == nil {
		scorer = WeightedRatio
	}

	q := query
	if options.Normalize {
		q = Normalize(query)
	}

	results := make([]Result, 0, len(choices))
	for _, choice := range choices {
		c := choice
		if options.Normalize {
			c = Normalize(choice)
		}
		score := scorer(q, c)
		if score < options.Cutoff || score == 0 {
			continue
		}
		results = append(results, Result{Choice: choice, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Choice < results[j].Choice
	})

	if options.Limit > 0 && len(results) > options.Limit {
		results = results[:options.Limit]
	}
	return results
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		set[token] = true
	}
	return set
}

func round(f float64) int {
	return int(math.Round(f))
}
