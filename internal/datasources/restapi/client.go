// Package restapi is a client of the remote shop REST API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

var breakerState = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "shop_api_circuit_breaker_state",
		Help: "Current state of the shop API circuit breaker (0=closed, 1=half-open, 2=open)",
	},
	[]string{"name"},
)

func init() {
	prometheus.MustRegister(breakerState)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// ErrCircuitOpen is returned without contacting the shop while the breaker is open.
var ErrCircuitOpen = gobreaker.ErrOpenState

// BreakerConfig configures the circuit breaker in front of the shop API.
type BreakerConfig struct {
	Name string
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32
	// Interval clears the failure counts while closed. Zero never clears them.
	Interval time.Duration
	// Timeout is how long the breaker stays open before trying again.
	Timeout time.Duration
	// FailureRatio trips the breaker once MinRequests have been seen.
	FailureRatio float64
	MinRequests  uint32
}

func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// Client talks to the shop API. Requests are never retried; an open breaker fails fast.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	logger     *slog.Logger
}

var _ datasources.ShopRepository = (*Client)(nil)

func NewClient(baseURL, apiToken string, breakerCfg BreakerConfig, logger *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:        breakerCfg.Name,
		MaxRequests: breakerCfg.MaxRequests,
		Interval:    breakerCfg.Interval,
		Timeout:     breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerCfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breakerCfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("shop API circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
			breakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}
	breakerState.WithLabelValues(breakerCfg.Name).Set(0)

	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
		logger:  logger,
	}
}

// State returns the current breaker state.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

// product is the shop API's representation of an item.
type product struct {
	ID       string           `json:"_id"`
	Name     string           `json:"name"`
	Brand    string           `json:"brand"`
	Images   []string         `json:"images"`
	Tags     []string         `json:"tags"`
	Category string           `json:"category"`
	Price    float64          `json:"price"`
	Variants []productVariant `json:"variants"`
}

type productVariant struct {
	ID      string            `json:"_id"`
	Options map[string]string `json:"options"`
}

type productsResponse struct {
	Data []product `json:"data"`
}

func (p product) toItem() domain.Item {
	item := domain.Item{
		ID:       p.ID,
		Title:    p.Name,
		Brand:    p.Brand,
		Tags:     p.Tags,
		Category: p.Category,
		Price:    p.Price,
	}
	if len(p.Images) > 0 {
		item.Image = p.Images[0]
	}
	for _, v := range p.Variants {
		variant := domain.Variant{ID: v.ID}
		if len(v.Options) > 0 {
			variant.OptionValues = make(map[domain.OptionName]domain.OptionValue, len(v.Options))
			for name, value := range v.Options {
				variant.OptionValues[domain.OptionName(name)] = domain.OptionValue(value)
			}
		}
		item.Variants = append(item.Variants, variant)
	}
	return item
}

func toItems(products []product) []domain.Item {
	items := make([]domain.Item, 0, len(products))
	for _, p := range products {
		items = append(items, p.toItem())
	}
	return items
}

func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Item, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}

	var result productsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	return toItems(result.Data), nil
}

func (c *Client) FetchPastPositiveInteractions(ctx context.Context, userID string) ([]domain.Item, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/likes", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching likes: %w", err)
	}

	var result productsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("fetching likes: %w", err)
	}
	return toItems(result.Data), nil
}

// LikeItem records a like. The shop answers 409 for an existing like, which counts as success.
func (c *Client) LikeItem(ctx context.Context, userID, itemID string) error {
	body := struct {
		UserID    string `json:"user_id"`
		ProductID string `json:"product_id"`
	}{UserID: userID, ProductID: itemID}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/likes", body)
	if err != nil {
		return fmt.Errorf("liking item: %w", err)
	}
	if resp.StatusCode == http.StatusConflict {
		_ = resp.Body.Close()
		return nil
	}
	if err := c.handleResponse(resp, nil); err != nil {
		return fmt.Errorf("liking item: %w", err)
	}
	return nil
}

// UnlikeItem removes a like. A 404 means there was nothing to remove.
func (c *Client) UnlikeItem(ctx context.Context, userID, itemID string) error {
	path := "/api/likes/" + url.PathEscape(userID) + "/" + url.PathEscape(itemID)
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return fmt.Errorf("unliking item: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil
	}
	if err := c.handleResponse(resp, nil); err != nil {
		return fmt.Errorf("unliking item: %w", err)
	}
	return nil
}

func (c *Client) AddToCart(ctx context.Context, userID string, line domain.CartLine) error {
	body := struct {
		UserID    string            `json:"user_id"`
		ProductID string            `json:"product_id"`
		VariantID string            `json:"variant_id,omitempty"`
		Options   map[string]string `json:"options,omitempty"`
		Quantity  int               `json:"quantity"`
	}{
		UserID:    userID,
		ProductID: line.ItemID,
		VariantID: line.Variant.ID,
		Quantity:  line.Quantity,
	}
	if len(line.Variant.OptionValues) > 0 {
		body.Options = make(map[string]string, len(line.Variant.OptionValues))
		for name, value := range line.Variant.OptionValues {
			body.Options[string(name)] = string(value)
		}
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/cart", body)
	if err != nil {
		return fmt.Errorf("adding to cart: %w", err)
	}
	if err := c.handleResponse(resp, nil); err != nil {
		return fmt.Errorf("adding to cart: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}
	return c.doRequest(ctx, method, path, jsonBody)
}

// doRequest sends a request through the breaker. Transport errors and 5xx responses count as failures.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	return c.breaker.Execute(func() (*http.Response, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		if c.apiToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiToken)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}
		if resp.StatusCode >= 500 {
			respBody, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		return resp, nil
	})
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
