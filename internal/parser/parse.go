package parser

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// tokenise splits a prompt line into clean word tokens. Hyphens, underscores
// and slashes count as separators; other punctuation is dropped. Letter case
// is preserved so names pass through the way the player typed them.
func tokenise(raw string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/':
			flush()
		}
	}
	flush()
	return tokens
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 7:
		return 2
	default:
		return 3
	}
}

// Parse turns one prompt line into a Command. The verb is matched exactly,
// by prefix, or fuzzily within a short edit distance; everything after it
// passes through as arguments with original casing.
func Parse(raw string) Command {
	tokens := tokenise(raw)
	if len(tokens) == 0 {
		return Command{Raw: raw, Verb: VerbUnknown}
	}

	verb, confidence := matchVerb(strings.ToLower(tokens[0]))

	return Command{
		Raw:        raw,
		Verb:       verb,
		Args:       tokens[1:],
		Confidence: confidence,
	}
}

func matchVerb(token string) (Verb, float64) {
	bestVerb := VerbUnknown
	bestScore := 0.0

	for _, def := range verbTable() {
		for _, alias := range def.Aliases {
			score := 0.0
			switch {
			case token == alias:
				score = 1.0
			case strings.HasPrefix(alias, token) && len(token) >= 2:
				score = 0.9
			default:
				if len(token) < 3 {
					continue
				}
				dist := levenshtein.ComputeDistance(token, alias)
				if dist > levenshteinLimit(len(alias)) {
					continue
				}
				score = 0.72 - 0.08*float64(dist)
			}
			if alias == string(def.Canonical) {
				score += 0.03
			}
			if score > bestScore {
				bestScore = score
				bestVerb = def.Canonical
			}
		}
	}

	if bestScore < 0.5 {
		return VerbUnknown, 0
	}
	return bestVerb, bestScore
}
