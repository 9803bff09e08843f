package core

import "time"

const (
	ShopName      = "EcoSmart Shop"
	ShopUserAgent = "EcoShop-Backend/0.1"
	ShopVersion   = "0.1.0"

	// DefaultSessionKey is used when a voice query arrives without a session id.
	DefaultSessionKey = "default"
)

// ProductMention is a lightweight snapshot of a product surfaced in a
// conversation. It is not synchronized with the live catalog; once stored in
// a session it is only ever read back for conversational reference.
type ProductMention struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Carbon int     `json:"carbon,omitempty"`
	Eco    string  `json:"eco,omitempty"`
}

// Exchange is one query/reply pair in a session's history.
type Exchange struct {
	Query     string `json:"query"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// ContextDescriptor summarizes how the current utterance relates to the
// prior conversation. Computed per request, never persisted.
type ContextDescriptor struct {
	IsPreviousRef  bool             `json:"isPreviousRef"`
	IsFollowUp     bool             `json:"isFollowUp"`
	IsComparison   bool             `json:"isComparison"`
	RecentQueries  []Exchange       `json:"recentQueries"`
	RecentProducts []ProductMention `json:"recentProducts"`
}

// GroceryProduct is a perishable catalog listing.
type GroceryProduct struct {
	ID                  string    `json:"id"`
	BrandName           string    `json:"brandName"`
	Category            string    `json:"category"`
	CategoryID          string    `json:"categoryId"`
	DateAdded           time.Time `json:"dateAdded"`
	City                string    `json:"city"`
	CityID              string    `json:"cityId"`
	DateOfManufacturing time.Time `json:"dateOfManufacturing"`
	MRP                 float64   `json:"mrp"`
	Image               string    `json:"image,omitempty"`
	Stock               int       `json:"stock"`
	BestPrice           float64   `json:"bestPrice,omitempty"`
	Seller              string    `json:"seller"`
	SellingPrice        float64   `json:"sellingPrice,omitempty"`
	Profit              float64   `json:"profit,omitempty"`
	ProfitPercentage    string    `json:"profitPercentage,omitempty"`
	ProductType         string    `json:"productType"`
	ExpiryDate          time.Time `json:"expiryDate"`
	Weight              float64   `json:"weight,omitempty"`
	Unit                string    `json:"unit"`
	DemandScore         float64   `json:"demandScore"`
	Seasonality         string    `json:"seasonality,omitempty"`
	Perishable          bool      `json:"perishable"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// OtherProduct is a non-perishable (electronics etc.) catalog listing.
type OtherProduct struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Category            string         `json:"category"`
	CategoryID          string         `json:"categoryId"`
	ListingDate         time.Time      `json:"listingDate"`
	DateOfManufacturing time.Time      `json:"dateOfManufacturing"`
	MRP                 float64        `json:"mrp"`
	City                string         `json:"city"`
	CityID              string         `json:"cityId"`
	Image               string         `json:"image,omitempty"`
	Stock               int            `json:"stock"`
	BestPrice           float64        `json:"bestPrice,omitempty"`
	Seller              string         `json:"seller"`
	SellingPrice        float64        `json:"sellingPrice,omitempty"`
	Profit              float64        `json:"profit,omitempty"`
	ProfitPercentage    string         `json:"profitPercentage,omitempty"`
	ProductType         string         `json:"productType"`
	Brand               string         `json:"brand,omitempty"`
	Model               string         `json:"model,omitempty"`
	Specifications      map[string]any `json:"specifications"`
	DemandScore         float64        `json:"demandScore"`
	MarketTrend         string         `json:"marketTrend,omitempty"`
	Warranty            string         `json:"warranty,omitempty"`
	Condition           string         `json:"condition"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}
