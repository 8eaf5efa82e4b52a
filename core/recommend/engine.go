// ABOUTME: Recommendation engine turning ranked products into presentable picks
// ABOUTME: Falls back to alternative suggestions when nothing survives the filters

package recommend

import (
	"fmt"

	"shopping-assistant-api/core/analyzer"
	"shopping-assistant-api/core/domain"
	apperrors "shopping-assistant-api/core/errors"
	"shopping-assistant-api/core/interfaces"
	"shopping-assistant-api/pkg/config"
	"shopping-assistant-api/pkg/currency"
)

// maxAlternatives caps each alternative recommendation list.
const maxAlternatives = 3

// Engine generates product recommendations from enriched products.
type Engine struct {
	analyzer *analyzer.Analyzer
	cfg      config.AnalysisConfig
	logger   interfaces.Logger
}

// New creates a recommendation engine around the given analyzer.
func New(a *analyzer.Analyzer, cfg config.AnalysisConfig, logger interfaces.Logger) *Engine {
	return &Engine{analyzer: a, cfg: cfg, logger: logger}
}

// Recommend ranks the products and returns the top picks, each with key
// features and an explanation. It returns an InputError for a non-positive
// budget and a NoResultsError when the pool is empty or nothing survives
// ranking; callers handle the latter by generating alternatives.
func (e *Engine) Recommend(products []domain.EnrichedProduct, budget float64, preferences []string) ([]domain.Recommendation, error) {
	if budget <= 0 {
		return nil, &apperrors.InputError{Field: "budget", Message: "budget must be positive"}
	}

	if len(products) == 0 {
		e.warn("No products to recommend", nil)
		return nil, &apperrors.NoResultsError{Message: "No products found matching your criteria"}
	}

	ranked := e.analyzer.Rank(products, budget, preferences)
	if len(ranked) == 0 {
		e.warn("No products after ranking", map[string]interface{}{"budget": budget})
		return nil, &apperrors.NoResultsError{Message: "No products found within your budget"}
	}

	top := ranked
	if len(top) > e.cfg.TopRecommendations {
		top = top[:e.cfg.TopRecommendations]
	}

	recommendations := e.wrap(top, budget, preferences)

	e.info("Generated recommendations", map[string]interface{}{"count": len(recommendations)})
	return recommendations, nil
}

// Alternatives builds fallback options when Recommend found nothing: the same
// pool at a 20% higher budget, the pool against only the first preference,
// and generic suggestions when neither helps. It is best effort and never
// returns an error.
func (e *Engine) Alternatives(products []domain.EnrichedProduct, budget float64, preferences []string) domain.Alternatives {
	alternatives := domain.Alternatives{Suggestions: []string{}}

	if len(products) == 0 {
		alternatives.Suggestions = append(alternatives.Suggestions,
			"No products found. Try a different search term or check your spelling.")
		return alternatives
	}

	if budget > 0 {
		increasedBudget := budget * 1.2
		if ranked := e.analyzer.Rank(products, increasedBudget, preferences); len(ranked) > 0 {
			if len(ranked) > maxAlternatives {
				ranked = ranked[:maxAlternatives]
			}
			alternatives.IncreasedBudget = &domain.BudgetAlternative{
				Budget:          increasedBudget,
				Recommendations: e.wrap(ranked, budget, preferences),
			}
			alternatives.Suggestions = append(alternatives.Suggestions,
				fmt.Sprintf("Consider increasing your budget to %s to get better options.",
					currency.Format(increasedBudget)))
		}
	}

	if len(preferences) > 1 {
		reduced := preferences[:1]
		if ranked := e.analyzer.Rank(products, budget, reduced); len(ranked) > 0 {
			if len(ranked) > maxAlternatives {
				ranked = ranked[:maxAlternatives]
			}
			alternatives.AlternativeProducts = &domain.PreferenceAlternative{
				Preferences:     reduced,
				Recommendations: e.wrap(ranked, budget, reduced),
			}
			alternatives.Suggestions = append(alternatives.Suggestions,
				fmt.Sprintf("Consider prioritizing only your most important preference: %s.", reduced[0]))
		}
	}

	if alternatives.IncreasedBudget == nil && alternatives.AlternativeProducts == nil {
		alternatives.Suggestions = append(alternatives.Suggestions,
			"Try searching for a different product category or model.",
			"Consider waiting for sales or discounts if your budget is fixed.")
	}

	e.info("Generated alternatives", map[string]interface{}{"suggestions": len(alternatives.Suggestions)})
	return alternatives
}

func (e *Engine) wrap(products []domain.ScoredProduct, budget float64, preferences []string) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		recommendations = append(recommendations, domain.Recommendation{
			Product:     p,
			KeyFeatures: e.analyzer.ExtractKeyFeatures(p, preferences),
			Explanation: e.analyzer.Explain(p, budget, preferences),
		})
	}
	return recommendations
}

func (e *Engine) info(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Info(msg, fields)
	}
}

func (e *Engine) warn(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Warn(msg, fields)
	}
}
