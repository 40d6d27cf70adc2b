package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const searchPageSize = 20

// OpenFoodFactsService talks to the Open Food Facts HTTP API: free-text
// search plus per-product detail lookups by code.
type OpenFoodFactsService struct {
	searchURL  string
	productURL string
	client     *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		searchURL:  "https://world.openfoodfacts.org/cgi/search.pl",
		productURL: "https://world.openfoodfacts.org/api/v0/product/",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodCandidate is a catalog-shaped record from the external database,
// nutrients per 100g. Fields the product doesn't report stay null.
type FoodCandidate struct {
	Name          string              `json:"name"`
	ExternalAPIID string              `json:"external_api_id"`
	Calories      decimal.NullDecimal `json:"calories"`
	Protein       decimal.NullDecimal `json:"protein"`
	Carbs         decimal.NullDecimal `json:"carbs"`
	Fat           decimal.NullDecimal `json:"fat"`
	Sugars        decimal.NullDecimal `json:"sugars"`
	Fiber         decimal.NullDecimal `json:"fiber"`
	Unit          string              `json:"unit"`
}

type offNutriments struct {
	EnergyKcal100g decimal.NullDecimal `json:"energy-kcal_100g"`
	Proteins100g   decimal.NullDecimal `json:"proteins_100g"`
	Carbs100g      decimal.NullDecimal `json:"carbohydrates_100g"`
	Fat100g        decimal.NullDecimal `json:"fat_100g"`
	Sugars100g     decimal.NullDecimal `json:"sugars_100g"`
	Fiber100g      decimal.NullDecimal `json:"fiber_100g"`
}

type offProduct struct {
	Code          string        `json:"code"`
	ProductName   string        `json:"product_name"`
	ProductNameEn string        `json:"product_name_en"`
	GenericName   string        `json:"generic_name"`
	Nutriments    offNutriments `json:"nutriments"`
}

func (p *offProduct) name() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	if p.ProductNameEn != "" {
		return p.ProductNameEn
	}
	return p.GenericName
}

func (p *offProduct) candidate() FoodCandidate {
	return FoodCandidate{
		Name:          p.name(),
		ExternalAPIID: p.Code,
		Calories:      p.Nutriments.EnergyKcal100g,
		Protein:       p.Nutriments.Proteins100g,
		Carbs:         p.Nutriments.Carbs100g,
		Fat:           p.Nutriments.Fat100g,
		Sugars:        p.Nutriments.Sugars100g,
		Fiber:         p.Nutriments.Fiber100g,
		Unit:          "g",
	}
}

type searchResponse struct {
	Products []offProduct `json:"products"`
}

// Search queries the external database. Failures of any kind (transport,
// status, decode) come back as an empty list; the caller never sees an
// error from here.
func (s *OpenFoodFactsService) Search(query string) []FoodCandidate {
	u := fmt.Sprintf("%s?search_terms=%s&json=1&page_size=%d",
		s.searchURL, url.QueryEscape(query), searchPageSize)

	resp, err := s.client.Get(u)
	if err != nil {
		log.Printf("food search: request failed: %v", err)
		return []FoodCandidate{}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("food search: read failed: %v", err)
		return []FoodCandidate{}
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("food search: upstream status %d", resp.StatusCode)
		return []FoodCandidate{}
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		log.Printf("food search: decode failed: %v", err)
		return []FoodCandidate{}
	}

	results := make([]FoodCandidate, 0, len(sr.Products))
	for i := range sr.Products {
		p := &sr.Products[i]
		if p.name() == "" {
			continue
		}
		results = append(results, p.candidate())
		if len(results) == searchPageSize {
			break
		}
	}
	return results
}

type productResponse struct {
	Status  int         `json:"status"`
	Product *offProduct `json:"product"`
}

// ProductDetails fetches one product by its code. Unlike Search this
// surfaces failures, since callers use it for explicit imports.
func (s *OpenFoodFactsService) ProductDetails(code string) (*FoodCandidate, error) {
	u := fmt.Sprintf("%s%s.json", s.productURL, url.PathEscape(code))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call product endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product API error %d", resp.StatusCode)
	}

	var pr productResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse product JSON: %w", err)
	}
	if pr.Product == nil || pr.Product.name() == "" {
		return nil, fmt.Errorf("product %s not found", code)
	}

	c := pr.Product.candidate()
	if c.ExternalAPIID == "" {
		c.ExternalAPIID = code
	}
	return &c, nil
}
