package search

import (
	"strings"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
)

// WeightedSimilarity scores how well a card matches a free-text query name
// for fuzzy-sort ranking: a weighted sum of bigram
// similarity across name, type, description, kin name, and the single
// best-matching keyword, each term defaulting to 0 when its slot is
// absent.
func WeightedSimilarity(c cardmodel.Reader, q string) float64 {
	var total float64
	if name, ok := c.GetText(cardmodel.TextName); ok {
		total += 3.0 * float64(Similarity(name, q))
	}
	if typ, ok := c.GetText(cardmodel.TextType); ok {
		total += 1.8 * float64(Similarity(typ, q))
	}
	if desc, ok := c.GetText(cardmodel.TextDescription); ok {
		total += 1.6 * float64(Similarity(desc, q))
	}
	if kin, ok := c.GetKin(); ok {
		total += 1.5 * float64(Similarity(kin.Name(), q))
	}
	if kws, ok := c.GetKeywords(); ok {
		var best float64
		for _, kw := range kws {
			if s := float64(Similarity(kw.Name, q)); s > best {
				best = s
			}
		}
		total += best
	}
	return total
}

// Similarity scores how alike two strings are as a bigram-Dice coefficient
// in [0, 1]: twice the number of shared (lowercased) two-character
// sequences, divided by the total bigram count of both strings.
func Similarity(a, b string) float32 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	ba, bb := bigrams(a), bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}

	counts := make(map[string]int, len(ba))
	for _, bg := range ba {
		counts[bg]++
	}

	matches := 0
	for _, bg := range bb {
		if counts[bg] > 0 {
			counts[bg]--
			matches++
		}
	}
	if matches == 0 {
		return 0
	}
	return float32(2*matches) / float32(len(ba)+len(bb))
}

// bigrams splits s into its overlapping two-rune sequences. A string
// shorter than two runes yields the whole string as its single "bigram",
// so very short needles still participate in matching instead of scoring
// zero bigrams unconditionally.
func bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		if len(runes) == 0 {
			return nil
		}
		return []string{string(runes)}
	}
	out := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		out = append(out, string(runes[i:i+2]))
	}
	return out
}
