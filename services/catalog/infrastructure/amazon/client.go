// Package amazon is a Product Advertising API 5.0 client.
package amazon

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/ghuser/packstack/services/catalog/domain"
	"github.com/ghuser/packstack/services/catalog/domain/models"
	"github.com/ghuser/packstack/services/catalog/domain/repositories"
	"github.com/ghuser/packstack/services/catalog/infrastructure/upstream"
)

const (
	signingService     = "ProductAdvertisingAPI"
	targetPrefix       = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1."
	marketplace        = "www.amazon.com"
	defaultSearchIndex = "Outdoors"
	maxItemCount       = 10
	requestTimeout     = 10 * time.Second
)

var resources = []string{
	"ItemInfo.Title",
	"ItemInfo.Features",
	"ItemInfo.ProductInfo",
	"ItemInfo.ByLineInfo",
	"ItemInfo.Classifications",
	"Images.Primary.Medium",
	"Images.Primary.Large",
	"Offers.Listings.Price",
	"Offers.Listings.Availability.Type",
	"Offers.Listings.DeliveryInfo.IsPrimeEligible",
}

// Config holds PA-API credentials. Endpoint overrides https://{Host} in tests.
type Config struct {
	AccessKey  string
	SecretKey  string
	PartnerTag string
	Host       string
	Region     string
	Endpoint   string
}

// Client implements repositories.Catalog for Amazon.
type Client struct {
	cfg    Config
	creds  aws.Credentials
	signer *v4.Signer
	doer   *upstream.Doer
	now    func() time.Time
}

var _ repositories.Catalog = (*Client)(nil)

// NewClient builds a client. Requests are SigV4-signed for the configured region.
func NewClient(cfg Config, httpClient *http.Client, metrics *upstream.Metrics) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://" + cfg.Host
	}
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient(requestTimeout)
	}
	return &Client{
		cfg:    cfg,
		creds:  aws.Credentials{AccessKeyID: cfg.AccessKey, SecretAccessKey: cfg.SecretKey, Source: "packstack"},
		signer: v4.NewSigner(),
		doer: &upstream.Doer{
			Client:  httpClient,
			Metrics: metrics,
			Source:  string(models.SourceAmazon),
			Backoff: time.Second,
		},
		now: time.Now,
	}
}

func (c *Client) Source() models.Source { return models.SourceAmazon }

type searchItemsRequest struct {
	Keywords    string   `json:"Keywords"`
	Resources   []string `json:"Resources"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace"`
	SearchIndex string   `json:"SearchIndex"`
	ItemCount   int      `json:"ItemCount"`
}

type getItemsRequest struct {
	ItemIDs     []string `json:"ItemIds"`
	Resources   []string `json:"Resources"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace"`
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type searchItemsResponse struct {
	SearchResult *struct {
		Items []models.AmazonProduct `json:"Items"`
	} `json:"SearchResult"`
	Errors []apiError `json:"Errors"`
}

type getItemsResponse struct {
	ItemsResult *struct {
		Items []models.AmazonProduct `json:"Items"`
	} `json:"ItemsResult"`
	Errors []apiError `json:"Errors"`
}

// Search runs SearchItems. An empty SearchIndex falls back to Outdoors and
// MaxResults is clamped to the API limit of 10.
func (c *Client) Search(ctx context.Context, q repositories.SearchQuery) ([]models.SourceProduct, error) {
	index := q.Category
	if index == "" {
		index = defaultSearchIndex
	}
	count := q.MaxResults
	if count <= 0 || count > maxItemCount {
		count = maxItemCount
	}

	body, err := c.call(ctx, "SearchItems", "/paapi5/searchitems", searchItemsRequest{
		Keywords:    q.Keywords,
		Resources:   resources,
		PartnerTag:  c.cfg.PartnerTag,
		PartnerType: "Associates",
		Marketplace: marketplace,
		SearchIndex: index,
		ItemCount:   count,
	})
	if errors.Is(err, domain.ErrProductNotFound) {
		// PA-API answers 404 NoResults for an empty search.
		return []models.SourceProduct{}, nil
	}
	if err != nil {
		return nil, err
	}

	var resp searchItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: amazon search: decode: %w", domain.ErrUpstream, err)
	}
	out := []models.SourceProduct{}
	if resp.SearchResult != nil {
		for _, item := range resp.SearchResult.Items {
			out = append(out, item)
		}
	}
	return out, nil
}

// Product runs GetItems for a single ASIN.
func (c *Client) Product(ctx context.Context, id string) (models.SourceProduct, error) {
	body, err := c.call(ctx, "GetItems", "/paapi5/getitems", getItemsRequest{
		ItemIDs:     []string{id},
		Resources:   resources,
		PartnerTag:  c.cfg.PartnerTag,
		PartnerType: "Associates",
		Marketplace: marketplace,
	})
	if err != nil {
		return nil, err
	}

	var resp getItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: amazon product: decode: %w", domain.ErrUpstream, err)
	}
	if resp.ItemsResult == nil || len(resp.ItemsResult.Items) == 0 {
		return nil, fmt.Errorf("%w: amazon %s", domain.ErrProductNotFound, id)
	}
	return resp.ItemsResult.Items[0], nil
}

func (c *Client) call(ctx context.Context, operation, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: amazon %s: encode: %w", domain.ErrUpstream, operation, err)
	}
	sum := sha256.Sum256(raw)
	payloadHash := hex.EncodeToString(sum[:])

	return c.doer.Do(ctx, operation, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+path, bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		req.Host = c.cfg.Host
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		req.Header.Set("Content-Encoding", "amz-1.0")
		req.Header.Set("X-Amz-Target", targetPrefix+operation)
		if err := c.signer.SignHTTP(ctx, c.creds, req, payloadHash, signingService, c.cfg.Region, c.now().UTC()); err != nil {
			return nil, fmt.Errorf("sign request: %w", err)
		}
		return req, nil
	})
}
