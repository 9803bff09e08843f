package assistant

import (
	"regexp"
	"strings"
)

// Intent tags what the user is asking about.
type Intent string

const (
	IntentPhones         Intent = "phones"
	IntentLaptops        Intent = "laptops"
	IntentFood           Intent = "food"
	IntentElectronics    Intent = "electronics"
	IntentSustainability Intent = "sustainability"
	IntentRewards        Intent = "rewards"
	IntentHelp           Intent = "help"
	IntentDefault        Intent = "default"
)

// Action returns the frontend action tag for an intent.
func (i Intent) Action() string {
	switch i {
	case IntentPhones:
		return "show_phones"
	case IntentLaptops:
		return "show_laptops"
	case IntentFood:
		return "show_food"
	case IntentElectronics:
		return "show_electronics"
	case IntentSustainability:
		return "explain_carbon"
	case IntentRewards:
		return "show_rewards"
	case IntentHelp:
		return "show_help"
	default:
		return "default"
	}
}

// Sentiment is a coarse signal extracted alongside the intent.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentSeeking  Sentiment = "seeking"
	SentimentNeutral  Sentiment = "neutral"
)

// Keyword lists are package-level data so tests can enumerate them.
var (
	PhoneKeywords          = []string{"phone", "mobile", "smartphone", "iphone", "android", "cell", "device to call"}
	LaptopKeywords         = []string{"laptop", "computer", "macbook", "pc", "notebook", "work machine", "coding machine"}
	FoodKeywords           = []string{"food", "organic", "eat", "grocery", "snack", "nutrition", "healthy", "diet"}
	ElectronicsKeywords    = []string{"electronic", "gadget", "device", "tech", "solar", "charger", "power"}
	SustainabilityKeywords = []string{"eco", "green", "sustainable", "environment", "carbon", "footprint", "nature"}
	RewardsKeywords        = []string{"reward", "points", "earn"}
	HelpKeywords           = []string{"help", "what can you do"}
)

// intentRules is the classification precedence: the first rule whose keyword
// list matches wins.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentPhones, PhoneKeywords},
	{IntentLaptops, LaptopKeywords},
	{IntentFood, FoodKeywords},
	{IntentElectronics, ElectronicsKeywords},
	{IntentSustainability, SustainabilityKeywords},
	{IntentRewards, RewardsKeywords},
	{IntentHelp, HelpKeywords},
}

// Price ceiling patterns. All three run without early exit; when an
// utterance mentions several limits the last assignment wins, so 2000 beats
// 1000 beats 500. Kept as-is pending a product decision.
var (
	price500Pattern  = regexp.MustCompile(`(?i)under.*500|below.*500|less.*500`)
	price1000Pattern = regexp.MustCompile(`(?i)under.*1000|below.*1000|less.*1000`)
	price2000Pattern = regexp.MustCompile(`(?i)under.*2000|below.*2000|less.*2000`)

	positivePattern = regexp.MustCompile(`(?i)awesome|great|amazing|love|best|excellent`)
	seekingPattern  = regexp.MustCompile(`(?i)help|need|want|looking|find|search`)
)

// Classification is the classifier output for one utterance.
type Classification struct {
	Intent       Intent
	PriceCeiling int // 0 means no ceiling detected
	Sentiment    Sentiment
}

// Classify maps an utterance to an intent plus auxiliary signals. Total over
// all inputs: anything unmatched resolves to IntentDefault.
func Classify(text string) Classification {
	lower := strings.ToLower(text)

	c := Classification{Intent: IntentDefault, Sentiment: SentimentNeutral}

	if price500Pattern.MatchString(text) {
		c.PriceCeiling = 500
	}
	if price1000Pattern.MatchString(text) {
		c.PriceCeiling = 1000
	}
	if price2000Pattern.MatchString(text) {
		c.PriceCeiling = 2000
	}

	if positivePattern.MatchString(text) {
		c.Sentiment = SentimentPositive
	} else if seekingPattern.MatchString(text) {
		c.Sentiment = SentimentSeeking
	}

	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			c.Intent = rule.intent
			break
		}
	}

	return c
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
