package recommendation

import (
	"fmt"
	"sort"
	"strings"

	"glowbook/models"
)

// RankTopRated orders approved artists by average rating, highest first.
// Equal ratings are ordered by artist id.
func RankTopRated(providers []models.Provider, limit int) []models.Recommendation {
	ranked := make([]models.Provider, 0, len(providers))
	for _, p := range providers {
		if p.IsApproved() {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		return ranked[i].ID < ranked[j].ID
	})

	out := make([]models.Recommendation, 0, min(limit, len(ranked)))
	for _, p := range ranked {
		if len(out) == limit {
			break
		}
		out = append(out, models.Recommendation{
			ID:               p.ID,
			UserID:           p.UserID,
			Name:             p.Name,
			Categories:       p.Categories,
			SimilarityScore:  p.AverageRating,
			MatchingFeatures: []string{},
			Explanation:      fmt.Sprintf("Top rated artist with an average rating of %.1f", p.AverageRating),
		})
	}
	return out
}

type scored struct {
	provider models.Provider
	score    int
	matches  []string
}

// RankByAffinity scores each approved artist not yet booked by the user as
// the sum of profile weights over its distinct categories. Artists scoring 0
// are dropped; ties are ordered by artist id.
func RankByAffinity(providers []models.Provider, profile models.AffinityProfile, booked map[string]bool, limit int) []models.Recommendation {
	var candidates []scored
	for _, p := range providers {
		if !p.IsApproved() || booked[p.UserID] {
			continue
		}
		s := scored{provider: p, matches: []string{}}
		for _, c := range p.NormalizedCategories() {
			if w := profile[c]; w > 0 {
				s.score += w
				s.matches = append(s.matches, c)
			}
		}
		if s.score > 0 {
			candidates = append(candidates, s)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].provider.ID < candidates[j].provider.ID
	})

	out := make([]models.Recommendation, 0, min(limit, len(candidates)))
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, models.Recommendation{
			ID:               c.provider.ID,
			UserID:           c.provider.UserID,
			Name:             c.provider.Name,
			Categories:       c.provider.Categories,
			SimilarityScore:  float64(c.score),
			MatchingFeatures: c.matches,
			Explanation:      "Matches your interest in " + strings.Join(c.matches, ", "),
		})
	}
	return out
}
