package models

import "strings"

const ProviderStatusApproved = "approved"

// Provider is a makeup artist profile. It is owned by an external
// provider-management process and only read here.
type Provider struct {
	ID            string   `bson:"id" json:"id"`
	UserID        string   `bson:"user_id" json:"user_id"` // Owner user account
	Name          string   `bson:"name" json:"name"`
	Categories    []string `bson:"categories" json:"categories"`
	SlotCapacity  int      `bson:"slot_capacity,omitempty" json:"slotCapacity,omitempty"`
	AverageRating float64  `bson:"average_rating,omitempty" json:"averageRating,omitempty"`
	Status        string   `bson:"status" json:"status"`
}

// Capacity returns the per-slot capacity, or fallback when unset.
func (p Provider) Capacity(fallback int) int {
	if p.SlotCapacity > 0 {
		return p.SlotCapacity
	}
	if fallback > 0 {
		return fallback
	}
	return 1
}

// IsApproved reports whether the artist can be recommended.
func (p Provider) IsApproved() bool {
	return p.Status == ProviderStatusApproved
}

// NormalizeCategory is the canonical key of a service category.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NormalizedCategories returns the provider's distinct, non-blank categories in canonical form.
func (p Provider) NormalizedCategories() []string {
	seen := make(map[string]bool, len(p.Categories))
	out := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		key := NormalizeCategory(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
