package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ecosmart/shop/internal/catalog"
	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/internal/pricing"
	"github.com/ecosmart/shop/pkg/log"
)

const defaultSeller = "default@seller.com"

// defaultExpiryDays is applied to perishables listed without an expiry date.
const defaultExpiryDays = 7

type createGroceryRequest struct {
	BrandName           string  `json:"brandName"`
	Category            string  `json:"category"`
	City                string  `json:"city"`
	DateOfManufacturing string  `json:"dateOfManufacturing"`
	MRP                 float64 `json:"mrp"`
	Image               string  `json:"image"`
	Stock               int     `json:"stock"`
	Weight              float64 `json:"weight"`
	Unit                string  `json:"unit"`
	ExpiryDate          string  `json:"expiryDate"`
	Seller              string  `json:"seller"`
}

func (s *Server) handleCreateGrocery(w http.ResponseWriter, r *http.Request) {
	var req createGroceryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.BrandName == "" || req.Category == "" || req.City == "" || req.MRP <= 0 {
		writeError(w, r, http.StatusBadRequest, "brandName, category, city and mrp are required")
		return
	}
	if req.Unit == "" {
		req.Unit = "grams"
	}
	if req.Seller == "" {
		req.Seller = defaultSeller
	}

	now := time.Now().UTC()
	expiry := parseDate(req.ExpiryDate, now.AddDate(0, 0, defaultExpiryDays))

	product := &core.GroceryProduct{
		ID:                  uuid.NewString(),
		BrandName:           req.BrandName,
		Category:            req.Category,
		CategoryID:          catalog.CategoryID(req.Category, catalog.KindGrocery),
		DateAdded:           now,
		City:                req.City,
		CityID:              catalog.CityID(req.City),
		DateOfManufacturing: parseDate(req.DateOfManufacturing, now),
		MRP:                 req.MRP,
		Image:               req.Image,
		Stock:               req.Stock,
		Seller:              req.Seller,
		ProductType:         "grocery",
		ExpiryDate:          expiry,
		Weight:              req.Weight,
		Unit:                req.Unit,
		Perishable:          true,
	}

	pred := s.pricer.PredictGrocery(r.Context(), pricing.GroceryRequest{
		CategoryID:  product.CategoryID,
		CityID:      product.CityID,
		MRP:         product.MRP,
		DateAdded:   now.Format(time.RFC3339),
		ExpiryDate:  expiry.Format(time.RFC3339),
		Weight:      product.Weight,
		Stock:       product.Stock,
		ProductType: "grocery",
		BrandName:   product.BrandName,
		Unit:        product.Unit,
	})
	product.BestPrice = pred.BestPrice
	product.DemandScore = pred.DemandScore
	product.Seasonality = pred.Seasonality

	if err := s.grocery.Insert(r.Context(), product); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to insert grocery product")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, product)
}

func (s *Server) handleListGrocery(w http.ResponseWriter, r *http.Request) {
	products, err := s.grocery.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

func (s *Server) handleGrocerySeller(w http.ResponseWriter, r *http.Request) {
	products, err := s.grocery.ListBySeller(r.Context(), mux.Vars(r)["sellerId"])
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

type priceUpdateRequest struct {
	SellingPrice float64 `json:"sellingPrice"`
}

func (s *Server) handleGroceryPrice(w http.ResponseWriter, r *http.Request) {
	var req priceUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, ok := s.fetchGrocery(w, r)
	if !ok {
		return
	}

	product.SellingPrice = req.SellingPrice
	product.Profit = req.SellingPrice - product.MRP
	product.ProfitPercentage = profitPercent(product.Profit, product.MRP)

	if err := s.grocery.Update(r.Context(), product); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, product)
}

func (s *Server) handleGroceryMLData(w http.ResponseWriter, r *http.Request) {
	product, ok := s.fetchGrocery(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"productId":         product.ID,
		"categoryId":        product.CategoryID,
		"cityId":            product.CityID,
		"listingDate":       product.DateAdded,
		"manufacturingDate": product.DateOfManufacturing,
		"mrp":               product.MRP,
		"expiryDate":        product.ExpiryDate,
		"weight":            product.Weight,
		"unit":              product.Unit,
		"stock":             product.Stock,
		"brandName":         product.BrandName,
		"productType":       "grocery",
	})
}

func (s *Server) handleGroceryBestPrice(w http.ResponseWriter, r *http.Request) {
	product, ok := s.fetchGrocery(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, bestPriceResponse(product.SellingPrice, product.BestPrice, product.MRP, groceryMarkup))
}

type patchGroceryRequest struct {
	BrandName    *string  `json:"brandName"`
	Category     *string  `json:"category"`
	City         *string  `json:"city"`
	MRP          *float64 `json:"mrp"`
	Image        *string  `json:"image"`
	Stock        *int     `json:"stock"`
	Weight       *float64 `json:"weight"`
	Unit         *string  `json:"unit"`
	ExpiryDate   *string  `json:"expiryDate"`
	SellingPrice *float64 `json:"sellingPrice"`
}

func (s *Server) handleUpdateGrocery(w http.ResponseWriter, r *http.Request) {
	var req patchGroceryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, ok := s.fetchGrocery(w, r)
	if !ok {
		return
	}

	if req.BrandName != nil {
		product.BrandName = *req.BrandName
	}
	if req.Category != nil {
		product.Category = *req.Category
		product.CategoryID = catalog.CategoryID(*req.Category, catalog.KindGrocery)
	}
	if req.City != nil {
		product.City = *req.City
		product.CityID = catalog.CityID(*req.City)
	}
	if req.MRP != nil {
		product.MRP = *req.MRP
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ExpiryDate != nil {
		product.ExpiryDate = parseDate(*req.ExpiryDate, product.ExpiryDate)
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}

	if err := s.grocery.Update(r.Context(), product); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, product)
}

func (s *Server) handleDeleteGrocery(w http.ResponseWriter, r *http.Request) {
	if err := s.grocery.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, messageBody{Message: "Product deleted successfully"})
}

func (s *Server) fetchGrocery(w http.ResponseWriter, r *http.Request) (*core.GroceryProduct, bool) {
	product, err := s.grocery.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if product == nil {
		writeError(w, r, http.StatusNotFound, "Product not found")
		return nil, false
	}
	return product, true
}

func profitPercent(profit, mrp float64) string {
	if mrp == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", profit/mrp*100)
}

// parseDate accepts RFC3339 or plain dates, falling back when absent.
func parseDate(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return fallback
}
