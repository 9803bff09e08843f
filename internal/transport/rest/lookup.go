package rest

import (
	"net/http"

	"github.com/ecosmart/shop/internal/catalog"
)

type categoryList struct {
	Categories []string          `json:"categories"`
	Mappings   map[string]string `json:"mappings"`
}

type cityList struct {
	Cities   []string          `json:"cities"`
	Mappings map[string]string `json:"mappings"`
}

func groceryCategoryList() categoryList {
	return categoryList{Categories: catalog.GroceryCategoryNames(), Mappings: catalog.GroceryCategories}
}

func otherCategoryList() categoryList {
	return categoryList{Categories: catalog.OtherCategoryNames(), Mappings: catalog.OtherCategories}
}

func cityMappingList() cityList {
	return cityList{Cities: catalog.CityNames(), Mappings: catalog.CityMappings}
}

func (s *Server) handleGroceryCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, groceryCategoryList())
}

func (s *Server) handleOtherCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, otherCategoryList())
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, cityMappingList())
}

func (s *Server) handleAllConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"groceryCategories": groceryCategoryList(),
		"otherCategories":   otherCategoryList(),
		"cities":            cityMappingList(),
	})
}
