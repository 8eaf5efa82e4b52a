// ABOUTME: Product analyzer handles budget filtering, scoring and ranking
// ABOUTME: Pure functions over product lists, side-effect-free aside from logging

package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"shopping-assistant-api/core/domain"
	"shopping-assistant-api/core/interfaces"
	"shopping-assistant-api/pkg/config"
)

// minBudgetPool is the smallest within-budget pool size before over-budget
// products are backfilled from the flexibility band.
const minBudgetPool = 3

var (
	specPattern  = regexp.MustCompile(`\b\d+(?:\.\d+)?(?:GB|TB|MP|GHz|inch|cm|mm|mAh)\b`)
	parenPattern = regexp.MustCompile(`\(([^)]+)\)`)
)

// Analyzer scores and ranks products against a budget and preference list.
type Analyzer struct {
	cfg    config.AnalysisConfig
	logger interfaces.Logger
}

// New creates an Analyzer with the given settings.
func New(cfg config.AnalysisConfig, logger interfaces.Logger) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		logger: logger,
	}
}

// FilterByBudget returns the products priced within budget, plus products in
// the flexibility band (marked OverBudget) when fewer than three products fit
// the budget. Over-budget backfill proceeds cheapest first. Products without
// a positive price are dropped.
func (a *Analyzer) FilterByBudget(products []domain.EnrichedProduct, budget float64) []domain.ScoredProduct {
	a.info("Filtering products by budget", map[string]interface{}{"budget": budget})

	maxPrice := budget * (1 + a.cfg.BudgetFlexibility)

	var within []domain.ScoredProduct
	var overBudget []domain.ScoredProduct

	for _, p := range products {
		if p.Price <= 0 {
			continue
		}

		sp := domain.ScoredProduct{EnrichedProduct: p}
		switch {
		case p.Price <= budget:
			within = append(within, sp)
		case p.Price <= maxPrice:
			sp.OverBudget = true
			overBudget = append(overBudget, sp)
		}
	}

	if len(within) < minBudgetPool && len(overBudget) > 0 {
		sort.SliceStable(overBudget, func(i, j int) bool {
			return overBudget[i].Price < overBudget[j].Price
		})

		need := minBudgetPool - len(within)
		if need > len(overBudget) {
			need = len(overBudget)
		}
		within = append(within, overBudget[:need]...)
	}

	a.info("Filtered products within budget", map[string]interface{}{"count": len(within)})
	return within
}

// ScoreByPreferences scores each product by how well its name and features
// match the preference list. A verbatim substring match awards one point; a
// multi-word preference with at least half its words present awards half a
// point. Products are returned in input order.
func (a *Analyzer) ScoreByPreferences(products []domain.ScoredProduct, preferences []string) []domain.ScoredProduct {
	scored := make([]domain.ScoredProduct, len(products))
	copy(scored, products)

	if len(preferences) == 0 {
		a.info("No preferences provided, skipping preference scoring", nil)
		for i := range scored {
			scored[i].PreferenceScore = 0
			scored[i].MatchedPreferences = []string{}
		}
		return scored
	}

	a.info("Scoring products by preferences", map[string]interface{}{"preferences": preferences})

	for i := range scored {
		productText := combinedText(&scored[i].Product)

		score := 0.0
		matched := []string{}

		for _, preference := range preferences {
			prefLower := strings.ToLower(preference)

			if strings.Contains(productText, prefLower) {
				score++
				matched = append(matched, preference)
				continue
			}

			words := strings.Fields(prefLower)
			if len(words) > 1 {
				hits := 0
				for _, w := range words {
					if strings.Contains(productText, w) {
						hits++
					}
				}
				if float64(hits)/float64(len(words)) >= 0.5 {
					score += 0.5
					matched = append(matched, preference)
				}
			}
		}

		scored[i].PreferenceScore = score
		scored[i].MatchedPreferences = matched
	}

	return scored
}

// ReviewScore scores a product's review evidence: zero when the rating is
// absent or the review count is below the configured minimum, otherwise the
// rating plus a logarithmic volume bonus capped at one point.
func (a *Analyzer) ReviewScore(p *domain.Product) float64 {
	if p.Rating == nil || p.ReviewCount < a.cfg.MinReviews {
		return 0
	}

	bonus := 0.0
	if p.ReviewCount > 0 {
		bonus = math.Min(1, math.Log10(float64(p.ReviewCount))/3)
	}

	return *p.Rating + bonus
}

// PriceScore scores a price relative to the budget. Within budget the score
// falls gently from 1.0 to 0.5 as the price approaches the budget; over
// budget it falls twice as steeply and is floored at zero.
func (a *Analyzer) PriceScore(price, budget float64) float64 {
	if price <= 0 {
		return 0
	}

	ratio := price / budget
	if ratio <= 1 {
		return 1 - ratio*0.5
	}

	score := 0.5 - (ratio-1)*2
	return math.Max(0, score)
}

// Rank runs the full filter-and-score pipeline and returns products sorted
// by descending composite score. The sort is stable: equally scored products
// keep their input order.
func (a *Analyzer) Rank(products []domain.EnrichedProduct, budget float64, preferences []string) []domain.ScoredProduct {
	a.info("Ranking products", map[string]interface{}{"candidates": len(products)})

	filtered := a.FilterByBudget(products, budget)
	scored := a.ScoreByPreferences(filtered, preferences)

	for i := range scored {
		scored[i].ReviewScore = a.ReviewScore(&scored[i].Product)
		scored[i].PriceScore = a.PriceScore(scored[i].Price, budget)
		scored[i].CombinedScore = scored[i].PreferenceScore*2 +
			scored[i].ReviewScore*0.8 +
			scored[i].PriceScore*2
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CombinedScore > scored[j].CombinedScore
	})

	a.info("Products ranked successfully", map[string]interface{}{"ranked": len(scored)})
	return scored
}

// ExtractKeyFeatures collects up to five features for a product: its explicit
// feature list, spec-like tokens and parenthesized lists found in the name,
// and its matched preferences, de-duplicated in first-seen order. When
// preferences were supplied, preference-matching features are promoted to
// the front with a stable re-sort.
func (a *Analyzer) ExtractKeyFeatures(p domain.ScoredProduct, preferences []string) []string {
	features := make([]string, 0, len(p.Features)+len(p.MatchedPreferences))
	features = append(features, p.Features...)

	features = append(features, specPattern.FindAllString(p.Name, -1)...)

	for _, m := range parenPattern.FindAllStringSubmatch(p.Name, -1) {
		for _, part := range strings.Split(m[1], ",") {
			features = append(features, strings.TrimSpace(part))
		}
	}

	features = append(features, p.MatchedPreferences...)

	seen := make(map[string]bool, len(features))
	unique := make([]string, 0, len(features))
	for _, f := range features {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}

	if len(preferences) > 0 {
		sort.SliceStable(unique, func(i, j int) bool {
			return preferenceMatchScore(unique[i], preferences) > preferenceMatchScore(unique[j], preferences)
		})
	}

	if len(unique) > 5 {
		unique = unique[:5]
	}
	return unique
}

// Explain builds the period-joined explanation for a recommendation,
// covering budget fit, review evidence, matched preferences and platform.
func (a *Analyzer) Explain(p domain.ScoredProduct, budget float64, preferences []string) string {
	var parts []string

	if p.Price <= budget {
		parts = append(parts, fmt.Sprintf("Within your budget of ₹%s", formatAmount(budget)))
	} else {
		overBy := p.Price - budget
		overPercent := overBy / budget * 100
		parts = append(parts, fmt.Sprintf("Slightly over budget by ₹%.2f (%.1f%%)", overBy, overPercent))
	}

	if p.Rating != nil && p.ReviewCount >= a.cfg.MinReviews {
		parts = append(parts, fmt.Sprintf("Highly rated at %s stars with %d reviews",
			formatAmount(*p.Rating), p.ReviewCount))
	}

	switch n := len(p.MatchedPreferences); {
	case n == 1:
		parts = append(parts, "Matches your preference for "+p.MatchedPreferences[0])
	case n > 1:
		prefText := strings.Join(p.MatchedPreferences[:n-1], ", ") + " and " + p.MatchedPreferences[n-1]
		parts = append(parts, "Matches your preferences for "+prefText)
	}

	if p.Platform != "" {
		parts = append(parts, "Available on "+capitalize(p.Platform))
	}

	return strings.Join(parts, ". ")
}

// combinedText lower-cases and joins a product's name and features for
// substring matching.
func combinedText(p *domain.Product) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(p.Name))
	for _, f := range p.Features {
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(f))
	}
	return b.String()
}

// preferenceMatchScore ranks a feature against the preference list: 2 for an
// exact (case-insensitive) match, 1 for a substring overlap either way.
func preferenceMatchScore(feature string, preferences []string) int {
	score := 0
	featureLower := strings.ToLower(feature)
	for _, pref := range preferences {
		prefLower := strings.ToLower(pref)
		switch {
		case prefLower == featureLower:
			score += 2
		case strings.Contains(featureLower, prefLower) || strings.Contains(prefLower, featureLower):
			score++
		}
	}
	return score
}

// formatAmount renders a float without trailing zeros (50000 -> "50000",
// 4.3 -> "4.3").
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func (a *Analyzer) info(msg string, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Info(msg, fields)
	}
}
