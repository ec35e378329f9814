package models

// RecommendationSource names the ranking tier that produced a list.
type RecommendationSource string

const (
	SourceTopRated     RecommendationSource = "top_rated"
	SourceContentBased RecommendationSource = "content_based"
)

// ProfileSource names where an affinity profile came from.
type ProfileSource string

const (
	ProfileFromHistory     ProfileSource = "history"
	ProfileFromPreferences ProfileSource = "preferences"
	ProfileFromNothing     ProfileSource = "none"
)

// AffinityProfile maps a normalized category to an interest count.
type AffinityProfile map[string]int

// Recommendation is one ranked artist.
type Recommendation struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	Categories       []string `json:"categories"`
	SimilarityScore  float64  `json:"similarity_score"`
	MatchingFeatures []string `json:"matching_features"`
	Explanation      string   `json:"explanation,omitempty"`
}

// RecommendationResult is the response of a recommendation request.
type RecommendationResult struct {
	UserID          string               `json:"userId"`
	TotalFound      int                  `json:"totalFound"`
	Recommendations []Recommendation     `json:"recommendations"`
	Source          RecommendationSource `json:"source"`
	ProfileSource   ProfileSource        `json:"profileSource"`
	UserProfile     AffinityProfile      `json:"userProfile,omitempty"`
}
