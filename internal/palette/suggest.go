package palette

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// suggestDistance is the largest edit distance still offered as a suggestion.
	suggestDistance = 2
	maxSuggestions  = 3
)

// Suggest returns up to three names from existing within a small edit
// distance of input, closest first. An exact match is never suggested.
func Suggest(input string, existing []string) []string {
	inputLower := strings.ToLower(input)

	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, name := range existing {
		nameLower := strings.ToLower(name)
		if nameLower == inputLower {
			continue
		}
		dist := levenshtein.ComputeDistance(inputLower, nameLower)
		if dist <= suggestDistance {
			candidates = append(candidates, candidate{name: name, dist: dist})
		}
	}

	// Equal distances keep table order.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.dist - b.dist
	})

	var similar []string
	for _, c := range candidates {
		if len(similar) == maxSuggestions {
			break
		}
		similar = append(similar, c.name)
	}
	return similar
}
