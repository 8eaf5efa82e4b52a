// ABOUTME: Recommendation and alternatives domain models
// ABOUTME: Produced only by the recommendation engine, never mutated after creation

package domain

// Recommendation wraps one scored product with its extracted key features
// and a human-readable explanation of why it fits the request.
type Recommendation struct {
	Product ScoredProduct `json:"product"`

	// KeyFeatures holds up to five features, preference matches first
	KeyFeatures []string `json:"key_features"`

	// Explanation is a short period-joined sentence list
	Explanation string `json:"explanation"`
}

// BudgetAlternative holds recommendations found after raising the budget.
type BudgetAlternative struct {
	// Budget is the raised budget the recommendations were ranked against
	Budget float64 `json:"budget"`

	Recommendations []Recommendation `json:"recommendations"`
}

// PreferenceAlternative holds recommendations found after reducing the
// preference list to its highest-priority entry.
type PreferenceAlternative struct {
	// Preferences is the reduced preference subset used for ranking
	Preferences []string `json:"preferences"`

	Recommendations []Recommendation `json:"recommendations"`
}

// Alternatives is the fallback result built when the primary recommendation
// set is empty. Either block may be nil; Suggestions is never nil.
type Alternatives struct {
	IncreasedBudget *BudgetAlternative `json:"increased_budget,omitempty"`

	AlternativeProducts *PreferenceAlternative `json:"alternative_products,omitempty"`

	// Suggestions are advisory strings for the caller to surface
	Suggestions []string `json:"suggestions"`
}
