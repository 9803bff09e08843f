package rest

// Markup applied when a listing has no model prediction yet. Perishables
// carry a smaller margin than electronics.
const (
	groceryMarkup = 1.15
	otherMarkup   = 1.25
)

type bestPrice struct {
	CurrentPrice              float64 `json:"currentPrice"`
	PredictedBestPrice        float64 `json:"predictedBestPrice"`
	PotentialProfit           float64 `json:"potentialProfit"`
	PotentialProfitPercentage string  `json:"potentialProfitPercentage"`
	MRP                       float64 `json:"mrp"`
}

func bestPriceResponse(sellingPrice, predicted, mrp, markup float64) bestPrice {
	current := sellingPrice
	if current == 0 {
		current = mrp
	}
	if predicted == 0 {
		predicted = mrp * markup
	}
	profit := predicted - mrp
	return bestPrice{
		CurrentPrice:              current,
		PredictedBestPrice:        predicted,
		PotentialProfit:           profit,
		PotentialProfitPercentage: profitPercent(profit, mrp),
		MRP:                       mrp,
	}
}
