package assistant

import "github.com/ecosmart/shop/internal/core"

// maxRecommendations caps the product list returned for any query.
const maxRecommendations = 4

// Demo catalogs for conversational recommendations. These are deliberately
// static: the assistant never queries the live product store.
var (
	ecoPhones = []core.ProductMention{
		{Name: "EcoPhone Pro Max", Price: 899, Carbon: 2},
		{Name: "GreenTech Smartphone", Price: 649, Carbon: 3},
		{Name: "Sustainable iPhone SE", Price: 429, Carbon: 2},
		{Name: "Recycled Android Pro", Price: 299, Carbon: 1},
	}

	ecoLaptops = []core.ProductMention{
		{Name: "Sustainable MacBook Air", Price: 999, Carbon: 3},
		{Name: "Eco ThinkPad Carbon", Price: 799, Carbon: 2},
		{Name: "Green Gaming Laptop", Price: 1299, Carbon: 4},
		{Name: "Budget Eco Laptop", Price: 499, Carbon: 2},
	}

	ecoFood = []core.ProductMention{
		{Name: "Organic Quinoa", Price: 12.99, Carbon: 1},
		{Name: "Plant-Based Protein", Price: 19.99, Carbon: 2},
		{Name: "Local Honey", Price: 8.99, Carbon: 1},
		{Name: "Sustainable Snacks", Price: 6.99, Carbon: 1},
	}

	ecoElectronics = []core.ProductMention{
		{Name: "Solar Power Bank", Price: 89.99, Carbon: 1},
		{Name: "Energy-Efficient LED Strip", Price: 34.99, Carbon: 2},
		{Name: "Eco Wireless Charger", Price: 24.99, Carbon: 1},
		{Name: "Sustainable Headphones", Price: 149.99, Carbon: 2},
	}

	ecoBundle = []core.ProductMention{
		{Name: "Eco-Smart Bundle", Price: 1200, Eco: "Curated sustainable products"},
		{Name: "Green Living Kit", Price: 800, Eco: "Zero waste lifestyle starter"},
	}
)

// Recommend returns up to four candidate products for an intent. When the
// utterance refers back to the conversation, the most recently recommended
// products win over a fresh category lookup so "tell me more about that"
// stays anchored to what the user was just shown.
func Recommend(intent Intent, priceCeiling int, desc core.ContextDescriptor) []core.ProductMention {
	if desc.IsPreviousRef && len(desc.RecentProducts) > 0 {
		return cap4(tail(desc.RecentProducts, 3))
	}

	switch intent {
	case IntentPhones:
		return cap4(pickByPrice(ecoPhones, priceCeiling))
	case IntentLaptops:
		return cap4(pickByPrice(ecoLaptops, priceCeiling))
	case IntentFood:
		// Food is never price filtered; the whole catalog is cheap.
		return cap4(tail(ecoFood, len(ecoFood)))
	case IntentElectronics:
		return cap4(pickByPrice(ecoElectronics, priceCeiling))
	default:
		return cap4(tail(ecoBundle, len(ecoBundle)))
	}
}

// pickByPrice filters a catalog to price <= ceiling, or returns the first
// two entries when no ceiling was detected.
func pickByPrice(items []core.ProductMention, ceiling int) []core.ProductMention {
	if ceiling <= 0 {
		out := make([]core.ProductMention, 2)
		copy(out, items[:2])
		return out
	}

	out := make([]core.ProductMention, 0, len(items))
	for _, p := range items {
		if p.Price <= float64(ceiling) {
			out = append(out, p)
		}
	}
	return out
}

func cap4(items []core.ProductMention) []core.ProductMention {
	if len(items) > maxRecommendations {
		return items[:maxRecommendations]
	}
	return items
}
