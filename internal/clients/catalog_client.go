package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
)

type CatalogClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

type catalogHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewCatalogHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) CatalogClient {
	return &catalogHTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *catalogHTTPClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	reqURL := c.baseURL + "/api/products"
	c.log.Infof("CatalogClient: Requesting product list from URL: %s", reqURL)
	return c.getProducts(ctx, reqURL)
}

func (c *catalogHTTPClient) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	reqURL := fmt.Sprintf("%s/api/products/search?query=%s", c.baseURL, url.QueryEscape(query))
	c.log.Infof("CatalogClient: Searching products with query %q", query)
	return c.getProducts(ctx, reqURL)
}

func (c *catalogHTTPClient) getProducts(ctx context.Context, reqURL string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.Errorf("CatalogClient: Failed to create request for %s: %v", reqURL, err)
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	if token := tokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("CatalogClient: Failed to execute request for %s: %v", reqURL, err)
		return nil, fmt.Errorf("failed to communicate with catalog service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Errorf("CatalogClient: Request for %s failed with status %d", reqURL, resp.StatusCode)
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		c.log.Errorf("CatalogClient: Failed to decode product response from %s: %v", reqURL, err)
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	c.log.Infof("CatalogClient: Received %d products", len(products))
	return products, nil
}
