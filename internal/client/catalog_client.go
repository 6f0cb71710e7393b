package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/metrics"
)

// maxConcurrentLookups bounds parallel product lookups per batch
const maxConcurrentLookups = 4

// catalogProductResponse is the product envelope returned by the catalog API
type catalogProductResponse struct {
	Success bool `json:"success"`
	Data    *struct {
		ID     int64   `json:"id"`
		Name   string  `json:"name"`
		Tax    float64 `json:"tax"`
		Prices []struct {
			Currency string  `json:"currency"`
			Price    float64 `json:"price"`
		} `json:"prices"`
	} `json:"data"`
}

// CatalogClient defines the interface for the external product catalog
type CatalogClient interface {
	// GetPrices returns the prices of the given catalog product ids.
	// Products that cannot be fetched are left out of the result.
	GetPrices(ctx context.Context, productIDs []int64) (map[int64]domain.CatalogPrice, error)
}

// catalogClient implements CatalogClient against a Pipedrive-style products API
type catalogClient struct {
	baseURL    string
	apiToken   string
	currency   string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewCatalogClient creates a new product catalog API client
func NewCatalogClient(baseURL, apiToken, currency string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) CatalogClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &catalogClient{
		baseURL:  baseURL,
		apiToken: apiToken,
		currency: currency,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// GetPrices fetches every product concurrently; failures of single products degrade gracefully
func (c *catalogClient) GetPrices(ctx context.Context, productIDs []int64) (map[int64]domain.CatalogPrice, error) {
	prices := make(map[int64]domain.CatalogPrice, len(productIDs))
	if len(productIDs) == 0 {
		return prices, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, id := range productIDs {
		g.Go(func() error {
			price, err := c.getPrice(gctx, id)
			if err != nil {
				c.logger.Warn("Failed to fetch catalog price",
					zap.Int64("catalog_product_id", id),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			prices[id] = *price
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return prices, nil
}

func (c *catalogClient) getPrice(ctx context.Context, productID int64) (*domain.CatalogPrice, error) {
	endpoint := fmt.Sprintf("%s/v1/products/%d", c.baseURL, productID)
	query := url.Values{}
	query.Set("api_token", c.apiToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	var decodeErr error
	defer func() {
		if c.metrics != nil {
			callErr := err
			if callErr == nil {
				callErr = decodeErr
			}
			c.metrics.RecordExternalAPICall(endpoint, http.MethodGet, statusCode, duration, callErr)
		}
	}()

	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var body catalogProductResponse
	if decodeErr = json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", decodeErr)
	}
	if !body.Success || body.Data == nil {
		return nil, fmt.Errorf("catalog product %d not found", productID)
	}

	for _, p := range body.Data.Prices {
		if c.currency == "" || p.Currency == c.currency {
			return &domain.CatalogPrice{
				ProductID: productID,
				Price:     p.Price,
				Currency:  p.Currency,
				TaxRate:   body.Data.Tax,
			}, nil
		}
	}
	return nil, fmt.Errorf("catalog product %d has no %s price", productID, c.currency)
}

// NoOpCatalogClient is used when no catalog is configured
type NoOpCatalogClient struct{}

func NewNoOpCatalogClient() CatalogClient {
	return &NoOpCatalogClient{}
}

func (c *NoOpCatalogClient) GetPrices(ctx context.Context, productIDs []int64) (map[int64]domain.CatalogPrice, error) {
	return map[int64]domain.CatalogPrice{}, nil
}
