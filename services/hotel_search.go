package services

import (
	"sort"
	"strings"

	"casamia/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// HotelSearchCriteria filters hotels. Empty fields match everything.
type HotelSearchCriteria struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Qualification int    `json:"qualification"`
	Category      string `json:"category"`
}

// ScoredHotel is a hotel with its match score
type ScoredHotel struct {
	Hotel models.Hotel `json:"hotel"`
	Score int          `json:"score"`
}

const similarityThreshold = 0.7

// normalizeInput lowercases and strips accents, so "Hernández" matches "hernandez"
func normalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// calculateSimilarity is 1 - levenshtein distance / longest length
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// textScore scores how well query matches value: 3 contains, 2 closest
// match among all candidates, 1 similar enough, 0 otherwise.
func textScore(query, value string, cm *closestmatch.ClosestMatch) int {
	if query == "" {
		return 0
	}
	v := normalizeInput(value)
	switch {
	case strings.Contains(v, query):
		return 3
	case cm != nil && cm.Closest(query) == v:
		return 2
	case calculateSimilarity(query, v) >= similarityThreshold:
		return 1
	default:
		return 0
	}
}

func newMatcher(values []string) *closestmatch.ClosestMatch {
	seen := make(map[string]bool)
	var keys []string
	for _, v := range values {
		n := normalizeInput(v)
		if n != "" && !seen[n] {
			seen[n] = true
			keys = append(keys, n)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return closestmatch.New(keys, []int{2, 3})
}

// SearchHotels ranks hotels against the criteria. Exact filters
// (qualification, category) drop non-matching hotels; name and address are
// fuzzy and must match when given.
func SearchHotels(hotels []models.Hotel, criteria HotelSearchCriteria) []ScoredHotel {
	name := normalizeInput(criteria.Name)
	address := normalizeInput(criteria.Address)

	var names, addresses []string
	for _, h := range hotels {
		names = append(names, h.Name)
		addresses = append(addresses, h.Address)
	}
	var nameMatcher, addressMatcher *closestmatch.ClosestMatch
	if name != "" {
		nameMatcher = newMatcher(names)
	}
	if address != "" {
		addressMatcher = newMatcher(addresses)
	}

	var results []ScoredHotel
	for _, h := range hotels {
		if criteria.Qualification != 0 && h.Qualification != criteria.Qualification {
			continue
		}
		if criteria.Category != "" && normalizeInput(h.Category) != normalizeInput(criteria.Category) {
			continue
		}
		score := 1
		if name != "" {
			s := textScore(name, h.Name, nameMatcher)
			if s == 0 {
				continue
			}
			score += s * 2
		}
		if address != "" {
			s := textScore(address, h.Address, addressMatcher)
			if s == 0 {
				continue
			}
			score += s
		}
		results = append(results, ScoredHotel{Hotel: h, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
