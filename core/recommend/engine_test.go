// ABOUTME: Tests for the recommendation engine and its alternative fallbacks

package recommend

import (
	"math"
	"strings"
	"testing"

	"shopping-assistant-api/core/analyzer"
	"shopping-assistant-api/core/domain"
	apperrors "shopping-assistant-api/core/errors"
	"shopping-assistant-api/pkg/config"
)

func testEngine() *Engine {
	cfg := config.AnalysisConfig{
		BudgetFlexibility:  0.1,
		MinReviews:         10,
		TopRecommendations: 5,
	}
	return New(analyzer.New(cfg, nil), cfg, nil)
}

func rating(v float64) *float64 {
	return &v
}

func laptop(name string, price float64) domain.EnrichedProduct {
	return domain.EnrichedProduct{
		Product: domain.Product{Name: name, Price: price, Platform: "amazon", URL: "https://example.com/p"},
	}
}

func TestRecommend_InvalidBudget(t *testing.T) {
	e := testEngine()

	_, err := e.Recommend([]domain.EnrichedProduct{laptop("A", 100)}, 0, nil)

	if !apperrors.IsInput(err) {
		t.Errorf("err = %v, want InputError", err)
	}
}

func TestRecommend_EmptyPool(t *testing.T) {
	e := testEngine()

	_, err := e.Recommend(nil, 50000, nil)

	if !apperrors.IsNoResults(err) {
		t.Fatalf("err = %v, want NoResultsError", err)
	}
	if err.Error() != "No products found matching your criteria" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRecommend_NothingSurvivesRanking(t *testing.T) {
	e := testEngine()

	// Everything far above budget.
	products := []domain.EnrichedProduct{
		laptop("Expensive", 200000),
		laptop("Pricey", 180000),
	}

	_, err := e.Recommend(products, 50000, nil)

	if !apperrors.IsNoResults(err) {
		t.Fatalf("err = %v, want NoResultsError", err)
	}
	if err.Error() != "No products found within your budget" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRecommend_ReturnsTopPicks(t *testing.T) {
	e := testEngine()

	products := []domain.EnrichedProduct{
		{Product: domain.Product{
			Name: "ASUS TUF Gaming F15", Price: 49990, Platform: "amazon",
			URL: "https://example.com/asus", Rating: rating(4.3), ReviewCount: 1245,
		}},
		laptop("Basic Laptop", 35000),
	}

	got, err := e.Recommend(products, 50000, []string{"gaming"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(got))
	}
	if got[0].Product.Name != "ASUS TUF Gaming F15" {
		t.Errorf("top pick = %s", got[0].Product.Name)
	}
	if got[0].Explanation == "" {
		t.Error("recommendation should carry an explanation")
	}
}

func TestRecommend_CapsAtTopCount(t *testing.T) {
	e := testEngine()

	products := make([]domain.EnrichedProduct, 8)
	for i := range products {
		products[i] = laptop("P"+string(rune('A'+i)), 30000)
	}

	got, err := e.Recommend(products, 50000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("got %d recommendations, want 5", len(got))
	}
}

func TestAlternatives_EmptyPool(t *testing.T) {
	e := testEngine()

	got := e.Alternatives(nil, 50000, nil)

	if got.IncreasedBudget != nil || got.AlternativeProducts != nil {
		t.Error("empty pool should yield no alternative lists")
	}
	if len(got.Suggestions) != 1 || !strings.Contains(got.Suggestions[0], "different search term") {
		t.Errorf("suggestions = %v", got.Suggestions)
	}
}

func TestAlternatives_IncreasedBudget(t *testing.T) {
	e := testEngine()

	// Out of reach at 50000 (even with flexibility) but within 60000.
	products := []domain.EnrichedProduct{
		laptop("A", 58000),
		laptop("B", 59000),
		laptop("C", 57000),
		laptop("D", 56000),
	}

	got := e.Alternatives(products, 50000, nil)

	if got.IncreasedBudget == nil {
		t.Fatal("want increased budget alternatives")
	}
	if math.Abs(got.IncreasedBudget.Budget-60000) > 1e-6 {
		t.Errorf("budget = %v, want 60000", got.IncreasedBudget.Budget)
	}
	if len(got.IncreasedBudget.Recommendations) != 3 {
		t.Errorf("got %d recommendations, want capped at 3", len(got.IncreasedBudget.Recommendations))
	}

	found := false
	for _, s := range got.Suggestions {
		if strings.Contains(s, "increasing your budget to ₹60,000.00") {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions = %v, want budget increase hint", got.Suggestions)
	}
}

func TestAlternatives_ReducedPreferences(t *testing.T) {
	e := testEngine()

	products := []domain.EnrichedProduct{
		{Product: domain.Product{Name: "Gaming Laptop", Price: 40000, Platform: "amazon"}},
	}

	got := e.Alternatives(products, 50000, []string{"gaming", "lightweight", "ssd"})

	if got.AlternativeProducts == nil {
		t.Fatal("want reduced-preference alternatives")
	}
	if len(got.AlternativeProducts.Preferences) != 1 || got.AlternativeProducts.Preferences[0] != "gaming" {
		t.Errorf("preferences = %v, want [gaming]", got.AlternativeProducts.Preferences)
	}

	found := false
	for _, s := range got.Suggestions {
		if strings.Contains(s, "most important preference: gaming") {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions = %v", got.Suggestions)
	}
}

func TestAlternatives_SinglePreferenceNotReduced(t *testing.T) {
	e := testEngine()

	products := []domain.EnrichedProduct{laptop("A", 200000)}

	got := e.Alternatives(products, 50000, []string{"gaming"})

	if got.AlternativeProducts != nil {
		t.Error("a single preference has nothing to reduce")
	}
}

func TestAlternatives_GenericSuggestions(t *testing.T) {
	e := testEngine()

	// Unreachable even at 20% more.
	products := []domain.EnrichedProduct{laptop("A", 500000)}

	got := e.Alternatives(products, 50000, nil)

	if got.IncreasedBudget != nil || got.AlternativeProducts != nil {
		t.Error("want no alternative lists for an unreachable pool")
	}
	if len(got.Suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2 generic ones", len(got.Suggestions))
	}
	if !strings.Contains(got.Suggestions[0], "different product category") ||
		!strings.Contains(got.Suggestions[1], "sales or discounts") {
		t.Errorf("suggestions = %v", got.Suggestions)
	}
}

func TestAlternatives_ExplanationsUseOriginalBudget(t *testing.T) {
	e := testEngine()

	// Reachable only through the increased budget, so the explanation should
	// still describe the overage against the caller's original budget.
	products := []domain.EnrichedProduct{laptop("A", 58000)}
	alts := e.Alternatives(products, 50000, nil)

	if alts.IncreasedBudget == nil {
		t.Fatal("want increased budget alternatives")
	}
	explanation := alts.IncreasedBudget.Recommendations[0].Explanation
	if !strings.Contains(explanation, "over budget by ₹8000.00") {
		t.Errorf("explanation = %q", explanation)
	}
}
