package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"awinfeed/internal/logger"

	"github.com/cockroachdb/errors"
)

const pageLimit = 250

// ErrUnauthorized is marked on fetch errors caused by a rejected access token.
var ErrUnauthorized = errors.New("shopify rejected the access token")

type Client struct {
	baseURL     string
	apiVersion  string
	accessToken string
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(shopDomain, apiVersion, accessToken string, logger *logger.Logger) *Client {
	return &Client{
		baseURL:     StoreURL(shopDomain),
		apiVersion:  apiVersion,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// WithBaseURL points the client at another host, e.g. an httptest server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// StoreURL turns "demo", "demo.myshopify.com" or a full URL into the admin base URL.
func StoreURL(shopDomain string) string {
	domain := strings.TrimSpace(shopDomain)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimRight(domain, "/")
	if !strings.Contains(domain, ".") {
		domain += ".myshopify.com"
	}
	return "https://" + domain
}

// FetchProducts fetches one page of active products. An empty catalog is not an error.
func (c *Client) FetchProducts(ctx context.Context) ([]Record, error) {
	url := fmt.Sprintf("%s/admin/api/%s/products.json", c.baseURL, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	// Add authentication header
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("limit", fmt.Sprintf("%d", pageLimit))
	q.Set("status", "active")
	req.URL.RawQuery = q.Encode()

	c.logger.Debug("Fetching products from %s", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to make request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := errors.Newf("API request failed: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			err = errors.WithHint(errors.Mark(err, ErrUnauthorized), "check SHOPIFY_ACCESS_TOKEN and the app's read_products scope")
		}
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var productsResp ProductsResponse
	if err := decoder.Decode(&productsResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	c.logger.Debug("Fetched %d products", len(productsResp.Products))

	if productsResp.Products == nil {
		return []Record{}, nil
	}
	return productsResp.Products, nil
}
