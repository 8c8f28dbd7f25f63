// Package walmart is a client for the Walmart affiliate product API.
package walmart

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ghuser/packstack/services/catalog/domain"
	"github.com/ghuser/packstack/services/catalog/domain/models"
	"github.com/ghuser/packstack/services/catalog/domain/repositories"
	"github.com/ghuser/packstack/services/catalog/infrastructure/upstream"
)

const (
	keyVersion      = "1"
	defaultNumItems = 10
	maxNumItems     = 25
	requestTimeout  = 10 * time.Second
)

// Config holds affiliate API credentials.
type Config struct {
	ConsumerID string
	PrivateKey string
	BaseURL    string
}

// Client implements repositories.Catalog and repositories.StoreLocator for Walmart.
type Client struct {
	cfg  Config
	doer *upstream.Doer
	now  func() time.Time
}

var (
	_ repositories.Catalog      = (*Client)(nil)
	_ repositories.StoreLocator = (*Client)(nil)
)

func NewClient(cfg Config, httpClient *http.Client, metrics *upstream.Metrics) *Client {
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient(requestTimeout)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg: cfg,
		doer: &upstream.Doer{
			Client:  httpClient,
			Metrics: metrics,
			Source:  string(models.SourceWalmart),
			Backoff: time.Second,
		},
		now: time.Now,
	}
}

func (c *Client) Source() models.Source { return models.SourceWalmart }

// Search queries /search. MaxResults defaults to 10 and is capped at 25.
func (c *Client) Search(ctx context.Context, q repositories.SearchQuery) ([]models.SourceProduct, error) {
	n := q.MaxResults
	if n <= 0 {
		n = defaultNumItems
	}
	n = min(n, maxNumItems)

	params := url.Values{}
	params.Set("query", q.Keywords)
	params.Set("numItems", strconv.Itoa(n))
	if q.Category != "" {
		params.Set("categoryId", q.Category)
	}

	body, err := c.get(ctx, "search", "/search", params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Items []models.WalmartProduct `json:"items"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: walmart search: decode: %w", domain.ErrUpstream, err)
	}
	out := make([]models.SourceProduct, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, item)
	}
	return out, nil
}

// Product fetches /items/{id}. The item may come bare or wrapped in {"item": ...}.
func (c *Client) Product(ctx context.Context, id string) (models.SourceProduct, error) {
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return nil, fmt.Errorf("%w: walmart item id %q", domain.ErrProductNotFound, id)
	}
	body, err := c.get(ctx, "product", "/items/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Item *models.WalmartProduct `json:"item"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: walmart product: decode: %w", domain.ErrUpstream, err)
	}
	if wrapped.Item != nil {
		return *wrapped.Item, nil
	}

	var item models.WalmartProduct
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("%w: walmart product: decode: %w", domain.ErrUpstream, err)
	}
	if item.ItemID == 0 {
		return nil, fmt.Errorf("%w: walmart %s", domain.ErrProductNotFound, id)
	}
	return item, nil
}

// Stores lists stores near zipCode carrying the item.
func (c *Client) Stores(ctx context.Context, itemID, zipCode string) ([]models.WalmartStore, error) {
	params := url.Values{}
	params.Set("zipCode", zipCode)
	body, err := c.get(ctx, "stores", "/items/"+url.PathEscape(itemID)+"/stores", params)
	if err != nil {
		return nil, err
	}

	stores := []models.WalmartStore{}
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		err = json.Unmarshal(body, &stores)
	} else {
		var wrapped struct {
			Stores []models.WalmartStore `json:"stores"`
		}
		err = json.Unmarshal(body, &wrapped)
		if wrapped.Stores != nil {
			stores = wrapped.Stores
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: walmart stores: decode: %w", domain.ErrUpstream, err)
	}
	return stores, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values) ([]byte, error) {
	target := c.cfg.BaseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	return c.doer.Do(ctx, op, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		ts := strconv.FormatInt(c.now().UnixMilli(), 10)
		req.Header.Set("WM_SEC.KEY_VERSION", keyVersion)
		req.Header.Set("WM_CONSUMER.ID", c.cfg.ConsumerID)
		req.Header.Set("WM_CONSUMER.INTIMESTAMP", ts)
		req.Header.Set("WM_SEC.AUTH_SIGNATURE", Signature(c.cfg.ConsumerID, c.cfg.PrivateKey, ts))
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
}

// Signature is base64(HMAC-SHA256(key, consumerID + "\n" + timestamp + "\n")).
func Signature(consumerID, key, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(consumerID + "\n" + timestamp + "\n"))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
