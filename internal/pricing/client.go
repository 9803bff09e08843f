// Package pricing calls the external price-prediction model. The model is
// best-effort: any failure degrades to deterministic fallback values so
// product creation never depends on it.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/pkg/log"
	"github.com/ecosmart/shop/pkg/retry"
)

const (
	fallbackSeasonality = "year-round"
	fallbackMarketTrend = "stable"
)

// Prediction is the model's verdict for one listing.
type Prediction struct {
	BestPrice   float64 `json:"bestPrice"`
	DemandScore float64 `json:"demandScore"`
	Seasonality string  `json:"seasonality,omitempty"`
	MarketTrend string  `json:"marketTrend,omitempty"`
}

// GroceryRequest is the payload for perishable listings.
type GroceryRequest struct {
	CategoryID  string  `json:"categoryId"`
	CityID      string  `json:"cityId"`
	MRP         float64 `json:"mrp"`
	DateAdded   string  `json:"dateAdded"`
	ExpiryDate  string  `json:"expiryDate"`
	Weight      float64 `json:"weight,omitempty"`
	Stock       int     `json:"stock"`
	ProductType string  `json:"productType"`
	BrandName   string  `json:"brandName"`
	Unit        string  `json:"unit"`
}

// OtherRequest is the payload for non-perishable listings.
type OtherRequest struct {
	CategoryID          string         `json:"categoryId"`
	CityID              string         `json:"cityId"`
	MRP                 float64        `json:"mrp"`
	ListingDate         string         `json:"listingDate"`
	DateOfManufacturing string         `json:"dateOfManufacturing"`
	Stock               int            `json:"stock"`
	ProductType         string         `json:"productType"`
	Brand               string         `json:"brand,omitempty"`
	Model               string         `json:"model,omitempty"`
	Condition           string         `json:"condition,omitempty"`
	Warranty            string         `json:"warranty,omitempty"`
	Specifications      map[string]any `json:"specifications"`
}

// Client posts listing payloads to the prediction endpoint. An empty URL
// means "not configured"; predictions then come from the fallback path.
type Client struct {
	client  *http.Client
	url     string
	retrier *retry.Retrier
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
		retrier: retry.NewRetrier(&retry.Config{
			MaxRetries:    2,
			BackoffFactor: 2,
			InitialDelay:  200 * time.Millisecond,
			MaxDelay:      2 * time.Second,
			Jitter:        50 * time.Millisecond,
		}),
	}
}

// Configured reports whether a prediction endpoint is set.
func (c *Client) Configured() bool {
	return c.url != ""
}

// PredictGrocery returns the model's prediction for a perishable listing,
// or deterministic fallback values when the model is unreachable.
func (c *Client) PredictGrocery(ctx context.Context, req GroceryRequest) Prediction {
	fallback := Prediction{BestPrice: req.MRP, Seasonality: fallbackSeasonality}

	pred, err := c.predict(ctx, req)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("price prediction unavailable, using fallback")
		return fallback
	}
	if pred.BestPrice == 0 {
		pred.BestPrice = req.MRP
	}
	if pred.Seasonality == "" {
		pred.Seasonality = fallbackSeasonality
	}
	pred.MarketTrend = ""
	return pred
}

// PredictOther is PredictGrocery's counterpart for non-perishables.
func (c *Client) PredictOther(ctx context.Context, req OtherRequest) Prediction {
	fallback := Prediction{BestPrice: req.MRP, MarketTrend: fallbackMarketTrend}

	pred, err := c.predict(ctx, req)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("price prediction unavailable, using fallback")
		return fallback
	}
	if pred.BestPrice == 0 {
		pred.BestPrice = req.MRP
	}
	if pred.MarketTrend == "" {
		pred.MarketTrend = fallbackMarketTrend
	}
	pred.Seasonality = ""
	return pred
}

func (c *Client) predict(ctx context.Context, payload any) (Prediction, error) {
	if !c.Configured() {
		return Prediction{}, fmt.Errorf("prediction endpoint not configured")
	}

	var pred Prediction
	err := c.retrier.Do(ctx, func() error {
		return c.post(ctx, payload, &pred)
	})
	return pred, err
}

func (c *Client) post(ctx context.Context, payload any, out *Prediction) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.ShopUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
