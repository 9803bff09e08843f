// Package catalog holds the static category/city lookup tables that map
// human-readable names to the identifiers the price-prediction model was
// trained on.
package catalog

import "sort"

// GroceryCategories maps grocery category names to model category ids.
var GroceryCategories = map[string]string{
	"Paneer":   "FOODS_1_001",
	"Yogurt":   "FOODS_1_002",
	"Cheese":   "FOODS_1_003",
	"Butter":   "FOODS_1_004",
	"Cake":     "FOODS_2_001",
	"Bread":    "FOODS_2_002",
	"Pastries": "FOODS_2_003",
	"Rolls":    "FOODS_2_004",
	"Shrimp":   "FOODS_3_001",
	"Salmon":   "FOODS_3_002",
	"Fish":     "FOODS_3_003",
	"Crab":     "FOODS_3_004",
}

// OtherCategories maps non-perishable category names to model category ids.
var OtherCategories = map[string]string{
	"Budget Laptop":        "HOUSEHOLD_1_001_budget",
	"Mid-range Laptop":     "HOUSEHOLD_1_002_mid-range",
	"Premium Laptop":       "HOUSEHOLD_1_003_premium",
	"Budget Tablet":        "HOUSEHOLD_1_004_budget",
	"Mid-range Tablet":     "HOUSEHOLD_1_005_mid-range",
	"Premium Tablet":       "HOUSEHOLD_1_006_premium",
	"Budget Smartwatch":    "HOUSEHOLD_1_007_budget",
	"Mid-range Smartwatch": "HOUSEHOLD_1_008_mid-range",
	"Premium Smartwatch":   "HOUSEHOLD_1_009_premium",
	"Budget Smartphone":    "HOUSEHOLD_2_001_budget",
	"Mid-range Smartphone": "HOUSEHOLD_2_002_mid-range",
	"Premium Smartphone":   "HOUSEHOLD_2_003_premium",
	"Budget Headphones":    "HOUSEHOLD_2_004_budget",
	"Mid-range Headphones": "HOUSEHOLD_2_005_mid-range",
	"Premium Headphones":   "HOUSEHOLD_2_006_premium",
	"Budget Speaker":       "HOUSEHOLD_2_007_budget",
	"Mid-range Speaker":    "HOUSEHOLD_2_008_mid-range",
	"Premium Speaker":      "HOUSEHOLD_2_009_premium",
}

// CityMappings maps city names to model city ids.
var CityMappings = map[string]string{
	"California 1": "CA_1",
	"California 2": "CA_2",
	"California 3": "CA_3",
	"California 4": "CA_4",
	"Texas 1":      "TX_1",
	"Texas 2":      "TX_2",
	"Texas 3":      "TX_3",
	"Wisconsin 1":  "WI_1",
	"Wisconsin 2":  "WI_2",
	"Wisconsin 3":  "WI_3",
}

// ProductKind selects which category table applies.
type ProductKind string

const (
	KindGrocery ProductKind = "grocery"
	KindOther   ProductKind = "other"
)

// CategoryID resolves a category name to its model id. Unmapped names pass
// through unchanged so new categories keep working without a table update.
func CategoryID(category string, kind ProductKind) string {
	table := OtherCategories
	if kind == KindGrocery {
		table = GroceryCategories
	}
	if id, ok := table[category]; ok {
		return id
	}
	return category
}

// CityID resolves a city name to its model id, passing unmapped names through.
func CityID(city string) string {
	if id, ok := CityMappings[city]; ok {
		return id
	}
	return city
}

// GroceryCategoryNames returns the grocery category names, sorted for stable
// dropdown rendering.
func GroceryCategoryNames() []string {
	return sortedKeys(GroceryCategories)
}

// OtherCategoryNames returns the non-perishable category names, sorted.
func OtherCategoryNames() []string {
	return sortedKeys(OtherCategories)
}

// CityNames returns the city names, sorted.
func CityNames() []string {
	return sortedKeys(CityMappings)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
