package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jdservices/models"
)

const (
	defaultBaseURL = "https://serpapi.com/search"
	maxQueryLen    = 100
)

var (
	forbiddenChars = regexp.MustCompile("[<>\"`{}|\\\\]")
	// Matches case/package coverage in product titles, e.g. "16.12 sq. ft./case".
	sqFtCoverage = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:sq\.?\s*f[t.]*|square\s+feet)`)
)

// ValidateQuery applies the server-side query rules: non-empty, at most 100
// characters, no markup/shell characters.
func ValidateQuery(query string) error {
	q := strings.TrimSpace(query)
	if q == "" {
		return ErrEmptyQuery
	}
	if len(q) > maxQueryLen {
		return ErrQueryTooLong
	}
	if forbiddenChars.MatchString(q) {
		return ErrQueryForbiddenChars
	}
	return nil
}

// Client calls the SerpAPI Home Depot engine and shapes products into
// material options.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a product-search client with the given upstream timeout.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type serpProduct struct {
	Title        string      `json:"title"`
	Price        interface{} `json:"price"`
	ProductLink  string      `json:"product_link"`
	Link         string      `json:"link"`
	ProductImage string      `json:"product_image"`
	Image        string      `json:"image"`
	Thumbnails   [][]string  `json:"thumbnails"`
}

type serpResponse struct {
	Products       []serpProduct `json:"products"`
	Error          string        `json:"error"`
	SearchMetadata struct {
		Status string `json:"status"`
	} `json:"search_metadata"`
}

// SearchProducts queries the Home Depot engine for the cleaned query,
// optionally localized to a zip code.
func (c *Client) SearchProducts(ctx context.Context, query, zipCode string) ([]models.MaterialOption, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}
	cleanQuery := strings.TrimSpace(query)

	if c.APIKey == "" {
		return nil, errors.New("search service not configured")
	}

	params := url.Values{}
	params.Set("api_key", c.APIKey)
	params.Set("engine", "home_depot")
	params.Set("q", cleanQuery)
	params.Set("num", "3")
	params.Set("device", "mobile")
	params.Set("no_cache", "false")
	if zip := strings.TrimSpace(zipCode); zip != "" && zip != "N/A" {
		params.Set("location", zip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrSearchTimeout
		}
		return nil, fmt.Errorf("product search request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.New("product search authentication failed")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errors.New("product search provider is busy")
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("product search error %d", resp.StatusCode)
	}

	var data serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if data.SearchMetadata.Status == "Error" || data.Error != "" {
		if data.Error != "" {
			return nil, fmt.Errorf("product search failed: %s", data.Error)
		}
		return nil, errors.New("product search failed")
	}
	if len(data.Products) == 0 {
		return nil, ErrNoResults
	}

	materials := make([]models.MaterialOption, 0, len(data.Products))
	slug := strings.Join(strings.Fields(strings.ToLower(cleanQuery)), "-")
	for idx, p := range data.Products {
		materials = append(materials, models.MaterialOption{
			ID:           fmt.Sprintf("hd-%s-%d", slug, idx),
			Name:         p.Title,
			Source:       "HomeDepot",
			PricePerSqFt: pricePerSqFt(p),
			URL:          productURL(p),
			Image:        productImage(p),
		})
	}
	return materials, nil
}

// pricePerSqFt derives a per-square-foot price. Case/package products carry
// their coverage in the title; the listed price is divided by it. The result
// is clamped to a sane retail range.
func pricePerSqFt(p serpProduct) float64 {
	price := 3.0 // fallback when the product carries no usable price
	if num, ok := priceNumber(p.Price); ok && num > 0 {
		price = num
		if m := sqFtCoverage.FindStringSubmatch(p.Title); m != nil {
			if coverage, err := strconv.ParseFloat(m[1], 64); err == nil && coverage > 0 {
				price = num / coverage
			}
		}
		price = float64(int(price*100+0.5)) / 100
	}
	if price < 0.5 {
		price = 0.5
	}
	if price > 50 {
		price = 50
	}
	return price
}

func priceNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		cleaned := strings.TrimFunc(n, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.'
		})
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	}
	return 0, false
}

func productImage(p serpProduct) string {
	if len(p.Thumbnails) > 0 && len(p.Thumbnails[0]) > 0 {
		return p.Thumbnails[0][0]
	}
	if p.ProductImage != "" {
		return p.ProductImage
	}
	return p.Image
}

func productURL(p serpProduct) string {
	u := p.Link
	if u == "" {
		u = p.ProductLink
	}
	// The provider sometimes links an internal API domain that blocks visitors.
	return strings.Replace(u, "apionline.homedepot.com", "www.homedepot.com", 1)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
