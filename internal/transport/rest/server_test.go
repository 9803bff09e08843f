package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosmart/shop/internal/assistant"
	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/internal/pricing"
)

type fakeGroceryRepo struct {
	mu    sync.Mutex
	items []core.GroceryProduct
}

func (f *fakeGroceryRepo) Insert(_ context.Context, p *core.GroceryProduct) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]core.GroceryProduct{*p}, f.items...)
	return nil
}

func (f *fakeGroceryRepo) List(_ context.Context) ([]core.GroceryProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]core.GroceryProduct(nil), f.items...), nil
}

func (f *fakeGroceryRepo) ListBySeller(_ context.Context, seller string) ([]core.GroceryProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []core.GroceryProduct
	for _, p := range f.items {
		if p.Seller == seller {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGroceryRepo) GetByID(_ context.Context, id string) (*core.GroceryProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGroceryRepo) Update(_ context.Context, p *core.GroceryProduct) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items[i] = *p
			return nil
		}
	}
	return fmt.Errorf("grocery product %s not found", p.ID)
}

func (f *fakeGroceryRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOtherRepo struct {
	mu    sync.Mutex
	items []core.OtherProduct
}

func (f *fakeOtherRepo) Insert(_ context.Context, p *core.OtherProduct) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]core.OtherProduct{*p}, f.items...)
	return nil
}

func (f *fakeOtherRepo) List(_ context.Context) ([]core.OtherProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]core.OtherProduct(nil), f.items...), nil
}

func (f *fakeOtherRepo) ListBySeller(_ context.Context, seller string) ([]core.OtherProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []core.OtherProduct
	for _, p := range f.items {
		if p.Seller == seller {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeOtherRepo) GetByID(_ context.Context, id string) (*core.OtherProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOtherRepo) Update(_ context.Context, p *core.OtherProduct) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items[i] = *p
			return nil
		}
	}
	return fmt.Errorf("other product %s not found", p.ID)
}

func (f *fakeOtherRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestServer() (*Server, *fakeGroceryRepo, *fakeOtherRepo) {
	grocery := &fakeGroceryRepo{}
	other := &fakeOtherRepo{}
	asst := assistant.New(assistant.NewStore(), nil)
	pricer := pricing.NewClient("", 0) // unconfigured: fallback predictions
	return NewServer(":0", asst, grocery, other, pricer), grocery, other
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestVoiceQuery(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/api/voice/query", map[string]string{
		"text": "Show me eco-friendly phones",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[assistant.QueryResponse](t, rec)
	assert.Equal(t, "enhanced_basic", resp.Mode)
	assert.Equal(t, "show_phones", resp.Action)
	assert.NotEmpty(t, resp.Products)
	assert.Equal(t, 1, resp.ConversationLength)
}

func TestVoiceQueryEmptyText(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/api/voice/query", map[string]string{"text": "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Text is required", decode[errorBody](t, rec).Error)
}

func TestVoiceStatus(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/voice/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[assistant.StatusResponse](t, rec)
	assert.Equal(t, "Voice Assistant is running", resp.Status)
	assert.Equal(t, "Basic NLP", resp.Mode)
}

func TestCreateGrocery(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/api/products/grocery", map[string]any{
		"brandName":           "Amul",
		"category":            "Paneer",
		"city":                "California 1",
		"dateOfManufacturing": "2026-08-25",
		"mrp":                 120,
		"stock":               40,
		"weight":              200,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	p := decode[core.GroceryProduct](t, rec)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "FOODS_1_001", p.CategoryID)
	assert.Equal(t, "CA_1", p.CityID)
	assert.Equal(t, "grams", p.Unit)
	assert.Equal(t, "default@seller.com", p.Seller)
	// Unconfigured prediction endpoint: fallback pricing applies.
	assert.Equal(t, 120.0, p.BestPrice)
	assert.Equal(t, "year-round", p.Seasonality)
	assert.False(t, p.ExpiryDate.IsZero())
}

func TestCreateGroceryValidation(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/api/products/grocery", map[string]any{
		"brandName": "Amul",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGroceryBySeller(t *testing.T) {
	s, grocery, _ := newTestServer()
	grocery.items = []core.GroceryProduct{
		{ID: "g1", Seller: "a@shop.test"},
		{ID: "g2", Seller: "b@shop.test"},
	}

	rec := doRequest(t, s, http.MethodGet, "/api/products/grocery/seller/a@shop.test", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]core.GroceryProduct](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "g1", got[0].ID)
}

func TestGroceryPriceUpdate(t *testing.T) {
	s, grocery, _ := newTestServer()
	grocery.items = []core.GroceryProduct{{ID: "g1", MRP: 120}}

	rec := doRequest(t, s, http.MethodPatch, "/api/products/grocery/g1/price", map[string]any{
		"sellingPrice": 150,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	p := decode[core.GroceryProduct](t, rec)
	assert.Equal(t, 150.0, p.SellingPrice)
	assert.Equal(t, 30.0, p.Profit)
	assert.Equal(t, "25.00", p.ProfitPercentage)
}

func TestGroceryPriceUpdateNotFound(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodPatch, "/api/products/grocery/missing/price", map[string]any{
		"sellingPrice": 150,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decode[errorBody](t, rec).Error)
}

func TestGroceryBestPriceMarkup(t *testing.T) {
	s, grocery, _ := newTestServer()
	grocery.items = []core.GroceryProduct{{ID: "g1", MRP: 100}}

	rec := doRequest(t, s, http.MethodGet, "/api/products/grocery/g1/best-price", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	bp := decode[bestPrice](t, rec)
	assert.Equal(t, 100.0, bp.CurrentPrice)
	assert.InDelta(t, 115.0, bp.PredictedBestPrice, 0.001)
	assert.Equal(t, "15.00", bp.PotentialProfitPercentage)
}

func TestGroceryMLData(t *testing.T) {
	s, grocery, _ := newTestServer()
	grocery.items = []core.GroceryProduct{{
		ID: "g1", CategoryID: "FOODS_1_001", CityID: "CA_1", MRP: 120, Stock: 40, BrandName: "Amul", Unit: "grams",
	}}

	rec := doRequest(t, s, http.MethodGet, "/api/products/grocery/ml-data/g1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode[map[string]any](t, rec)
	assert.Equal(t, "g1", data["productId"])
	assert.Equal(t, "FOODS_1_001", data["categoryId"])
	assert.Equal(t, "grocery", data["productType"])
}

func TestUpdateGroceryRemapsCategory(t *testing.T) {
	s, grocery, _ := newTestServer()
	grocery.items = []core.GroceryProduct{{ID: "g1", Category: "Paneer", CategoryID: "FOODS_1_001"}}

	rec := doRequest(t, s, http.MethodPatch, "/api/products/grocery/g1", map[string]any{
		"category": "Salmon",
		"city":     "Texas 2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	p := decode[core.GroceryProduct](t, rec)
	assert.Equal(t, "FOODS_3_002", p.CategoryID)
	assert.Equal(t, "TX_2", p.CityID)
}

func TestDeleteGrocery(t *testing.T) {
	s, grocery, _ := newTestServer()
	grocery.items = []core.GroceryProduct{{ID: "g1"}}

	rec := doRequest(t, s, http.MethodDelete, "/api/products/grocery/g1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", decode[messageBody](t, rec).Message)
	assert.Empty(t, grocery.items)
}

func TestCreateOther(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/api/products/other", map[string]any{
		"name":                "EcoPhone X",
		"category":            "Budget Smartphone",
		"city":                "Texas 1",
		"dateOfManufacturing": "2026-01-10",
		"mrp":                 299,
		"stock":               10,
		"brand":               "EcoTech",
		"model":               "X1",
		"specifications":      map[string]any{"ram": "8GB"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	p := decode[core.OtherProduct](t, rec)
	assert.Equal(t, "HOUSEHOLD_2_001_budget", p.CategoryID)
	assert.Equal(t, "TX_1", p.CityID)
	assert.Equal(t, "new", p.Condition)
	assert.Equal(t, 299.0, p.BestPrice)
	assert.Equal(t, "stable", p.MarketTrend)
	assert.Equal(t, "8GB", p.Specifications["ram"])
}

func TestOtherBestPriceMarkup(t *testing.T) {
	s, _, other := newTestServer()
	other.items = []core.OtherProduct{{ID: "o1", MRP: 100, SellingPrice: 110}}

	rec := doRequest(t, s, http.MethodGet, "/api/products/other/o1/best-price", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	bp := decode[bestPrice](t, rec)
	assert.Equal(t, 110.0, bp.CurrentPrice)
	assert.InDelta(t, 125.0, bp.PredictedBestPrice, 0.001)
	assert.Equal(t, "25.00", bp.PotentialProfitPercentage)
}

func TestUpdateOtherRelistRefreshesPrediction(t *testing.T) {
	s, _, other := newTestServer()
	other.items = []core.OtherProduct{{ID: "o1", MRP: 300, BestPrice: 0, Condition: "new"}}

	rec := doRequest(t, s, http.MethodPatch, "/api/products/other/o1", map[string]any{
		"listingDate": "2026-09-01",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	p := decode[core.OtherProduct](t, rec)
	// Fallback prediction repopulates pricing fields.
	assert.Equal(t, 300.0, p.BestPrice)
	assert.Equal(t, "stable", p.MarketTrend)
}

func TestConfigEndpoints(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodGet, "/api/config/grocery-categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decode[categoryList](t, rec)
	assert.Len(t, cats.Categories, 12)
	assert.Equal(t, "FOODS_1_001", cats.Mappings["Paneer"])

	rec = doRequest(t, s, http.MethodGet, "/api/config/other-categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cats = decode[categoryList](t, rec)
	assert.Len(t, cats.Categories, 18)

	rec = doRequest(t, s, http.MethodGet, "/api/config/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cities := decode[cityList](t, rec)
	assert.Len(t, cities.Cities, 10)
	assert.Equal(t, "TX_2", cities.Mappings["Texas 2"])

	rec = doRequest(t, s, http.MethodGet, "/api/config/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[map[string]any](t, rec)
	assert.Contains(t, all, "groceryCategories")
	assert.Contains(t, all, "otherCategories")
	assert.Contains(t, all, "cities")
}

func TestCORSPreflight(t *testing.T) {
	s, _, _ := newTestServer()

	rec := doRequest(t, s, http.MethodOptions, "/api/voice/query", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
