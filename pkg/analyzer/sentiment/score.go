package sentiment

import "strings"

// Score computes a polarity in [-1, 1] for free text using the lexicon with
// negation flipping and booster scaling. Text with no sentiment-bearing
// words scores 0.
func Score(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var total float64
	hits := 0
	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			continue
		}

		// Look back up to two tokens for a negator or booster.
		for back := 1; back <= 2 && i-back >= 0; back++ {
			prev := tokens[i-back]
			if negators[prev] {
				valence = -valence
				break
			}
			if factor, ok := boosters[prev]; ok {
				valence *= factor
				break
			}
		}

		total += valence
		hits++
	}
	if hits == 0 {
		return 0
	}

	polarity := total / float64(hits)
	if polarity > 1 {
		polarity = 1
	}
	if polarity < -1 {
		polarity = -1
	}
	return polarity
}

// tokenize lowercases and splits on non-word runes, keeping apostrophes so
// contractions match the negator list.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'':
			return false
		}
		return true
	})
}
