package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ecosmart/shop/internal/catalog"
	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/internal/pricing"
	"github.com/ecosmart/shop/pkg/log"
)

type createOtherRequest struct {
	Name                string         `json:"name"`
	Category            string         `json:"category"`
	City                string         `json:"city"`
	DateOfManufacturing string         `json:"dateOfManufacturing"`
	MRP                 float64        `json:"mrp"`
	Image               string         `json:"image"`
	Stock               int            `json:"stock"`
	Brand               string         `json:"brand"`
	Model               string         `json:"model"`
	Specifications      map[string]any `json:"specifications"`
	Warranty            string         `json:"warranty"`
	Condition           string         `json:"condition"`
	Seller              string         `json:"seller"`
}

func (s *Server) handleCreateOther(w http.ResponseWriter, r *http.Request) {
	var req createOtherRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Category == "" || req.City == "" || req.MRP <= 0 {
		writeError(w, r, http.StatusBadRequest, "name, category, city and mrp are required")
		return
	}
	if req.Condition == "" {
		req.Condition = "new"
	}
	if req.Seller == "" {
		req.Seller = defaultSeller
	}
	if req.Specifications == nil {
		req.Specifications = map[string]any{}
	}

	now := time.Now().UTC()
	manufactured := parseDate(req.DateOfManufacturing, now)

	product := &core.OtherProduct{
		ID:                  uuid.NewString(),
		Name:                req.Name,
		Category:            req.Category,
		CategoryID:          catalog.CategoryID(req.Category, catalog.KindOther),
		ListingDate:         now,
		DateOfManufacturing: manufactured,
		MRP:                 req.MRP,
		City:                req.City,
		CityID:              catalog.CityID(req.City),
		Image:               req.Image,
		Stock:               req.Stock,
		Seller:              req.Seller,
		ProductType:         "other",
		Brand:               req.Brand,
		Model:               req.Model,
		Specifications:      req.Specifications,
		Warranty:            req.Warranty,
		Condition:           req.Condition,
	}

	pred := s.pricer.PredictOther(r.Context(), pricing.OtherRequest{
		CategoryID:          product.CategoryID,
		CityID:              product.CityID,
		MRP:                 product.MRP,
		ListingDate:         now.Format(time.RFC3339),
		DateOfManufacturing: manufactured.Format(time.RFC3339),
		Stock:               product.Stock,
		ProductType:         "other",
		Brand:               product.Brand,
		Model:               product.Model,
		Condition:           product.Condition,
		Warranty:            product.Warranty,
		Specifications:      product.Specifications,
	})
	product.BestPrice = pred.BestPrice
	product.DemandScore = pred.DemandScore
	product.MarketTrend = pred.MarketTrend

	if err := s.other.Insert(r.Context(), product); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to insert other product")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, product)
}

func (s *Server) handleListOther(w http.ResponseWriter, r *http.Request) {
	products, err := s.other.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

func (s *Server) handleOtherSeller(w http.ResponseWriter, r *http.Request) {
	products, err := s.other.ListBySeller(r.Context(), mux.Vars(r)["sellerId"])
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

func (s *Server) handleOtherPrice(w http.ResponseWriter, r *http.Request) {
	var req priceUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, ok := s.fetchOther(w, r)
	if !ok {
		return
	}

	product.SellingPrice = req.SellingPrice
	product.Profit = req.SellingPrice - product.MRP
	product.ProfitPercentage = profitPercent(product.Profit, product.MRP)

	if err := s.other.Update(r.Context(), product); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, product)
}

func (s *Server) handleOtherMLData(w http.ResponseWriter, r *http.Request) {
	product, ok := s.fetchOther(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"productId":         product.ID,
		"categoryId":        product.CategoryID,
		"cityId":            product.CityID,
		"listingDate":       product.ListingDate,
		"manufacturingDate": product.DateOfManufacturing,
		"mrp":               product.MRP,
		"stock":             product.Stock,
		"brand":             product.Brand,
		"model":             product.Model,
		"condition":         product.Condition,
		"warranty":          product.Warranty,
		"specifications":    product.Specifications,
		"productType":       "other",
	})
}

func (s *Server) handleOtherBestPrice(w http.ResponseWriter, r *http.Request) {
	product, ok := s.fetchOther(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, bestPriceResponse(product.SellingPrice, product.BestPrice, product.MRP, otherMarkup))
}

type patchOtherRequest struct {
	Name           *string         `json:"name"`
	Category       *string         `json:"category"`
	City           *string         `json:"city"`
	MRP            *float64        `json:"mrp"`
	Image          *string         `json:"image"`
	Stock          *int            `json:"stock"`
	Brand          *string         `json:"brand"`
	Model          *string         `json:"model"`
	Specifications *map[string]any `json:"specifications"`
	Warranty       *string         `json:"warranty"`
	Condition      *string         `json:"condition"`
	ListingDate    *string         `json:"listingDate"`
	SellingPrice   *float64        `json:"sellingPrice"`
}

func (s *Server) handleUpdateOther(w http.ResponseWriter, r *http.Request) {
	var req patchOtherRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, ok := s.fetchOther(w, r)
	if !ok {
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
		product.CategoryID = catalog.CategoryID(*req.Category, catalog.KindOther)
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
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Model != nil {
		product.Model = *req.Model
	}
	if req.Specifications != nil {
		product.Specifications = *req.Specifications
	}
	if req.Warranty != nil {
		product.Warranty = *req.Warranty
	}
	if req.Condition != nil {
		product.Condition = *req.Condition
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}

	// Re-listing refreshes the price prediction.
	if req.ListingDate != nil {
		product.ListingDate = parseDate(*req.ListingDate, product.ListingDate)

		pred := s.pricer.PredictOther(r.Context(), pricing.OtherRequest{
			CategoryID:          product.CategoryID,
			CityID:              product.CityID,
			MRP:                 product.MRP,
			ListingDate:         product.ListingDate.Format(time.RFC3339),
			DateOfManufacturing: product.DateOfManufacturing.Format(time.RFC3339),
			Stock:               product.Stock,
			ProductType:         "other",
			Brand:               product.Brand,
			Model:               product.Model,
			Condition:           product.Condition,
			Warranty:            product.Warranty,
			Specifications:      product.Specifications,
		})
		product.BestPrice = pred.BestPrice
		product.DemandScore = pred.DemandScore
		product.MarketTrend = pred.MarketTrend
	}

	if err := s.other.Update(r.Context(), product); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, product)
}

func (s *Server) handleDeleteOther(w http.ResponseWriter, r *http.Request) {
	if err := s.other.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, messageBody{Message: "Product deleted successfully"})
}

func (s *Server) fetchOther(w http.ResponseWriter, r *http.Request) (*core.OtherProduct, bool) {
	product, err := s.other.GetByID(r.Context(), mux.Vars(r)["id"])
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
