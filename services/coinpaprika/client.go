// Package coinpaprika is the stateless upstream gateway: one typed operation
// per resource kind, each of which forwards a single HTTPS call, validates
// the payload shape and returns the validated record unchanged. No caching,
// no coalescing, no retries.
package coinpaprika

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/Tatang94/cryptomarketcap/models"
	"github.com/Tatang94/cryptomarketcap/schema"
)

// MaxTickersLimit is the upstream's documented page cap. Caller-requested
// limits are clamped to it.
const MaxTickersLimit = 1000

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if len(c.apiKey) > 0 {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	return ioutil.ReadAll(resp.Body)
}

func (c *Client) getObject(ctx context.Context, endpoint string, shape schema.Shape, out interface{}) error {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return &schema.Error{Shape: shape.Name, Expected: "object", Actual: "malformed json"}
	}
	if err := shape.Validate(raw); err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

func (c *Client) getList(ctx context.Context, endpoint string, shape schema.Shape, out interface{}) error {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return &schema.Error{Shape: shape.Name, Expected: "array", Actual: "malformed json"}
	}
	if err := shape.ValidateList(raw); err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

func (c *Client) Global(ctx context.Context) (*models.GlobalStats, error) {
	var stats models.GlobalStats
	if err := c.getObject(ctx, "/global", schema.GlobalStats, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Coins(ctx context.Context) ([]models.Coin, error) {
	var coins []models.Coin
	if err := c.getList(ctx, "/coins", schema.Coin, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

func (c *Client) CoinByID(ctx context.Context, id string) (*models.CoinDetails, error) {
	var details models.CoinDetails
	if err := c.getObject(ctx, "/coins/"+url.PathEscape(id), schema.CoinDetails, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Tickers fetches one page of ticker records. start defaults to 1 and limit
// is clamped to MaxTickersLimit regardless of what the caller asked for.
func (c *Client) Tickers(ctx context.Context, start, limit int) ([]models.Ticker, error) {
	if start < 1 {
		start = 1
	}
	if limit < 1 || limit > MaxTickersLimit {
		limit = MaxTickersLimit
	}

	var tickers []models.Ticker
	endpoint := fmt.Sprintf("/tickers?start=%d&limit=%d", start, limit)
	if err := c.getList(ctx, endpoint, schema.Ticker, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

func (c *Client) TickerByID(ctx context.Context, id string) (*models.Ticker, error) {
	var ticker models.Ticker
	if err := c.getObject(ctx, "/tickers/"+url.PathEscape(id), schema.Ticker, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

func (c *Client) OHLCVToday(ctx context.Context, id string) ([]models.OHLCV, error) {
	var candles []models.OHLCV
	if err := c.getList(ctx, "/coins/"+url.PathEscape(id)+"/ohlcv/today", schema.OHLCV, &candles); err != nil {
		return nil, err
	}
	return candles, nil
}

func (c *Client) CoinMarkets(ctx context.Context, id string) ([]models.Market, error) {
	var markets []models.Market
	if err := c.getList(ctx, "/coins/"+url.PathEscape(id)+"/markets", schema.Market, &markets); err != nil {
		return nil, err
	}
	return markets, nil
}

func (c *Client) Exchanges(ctx context.Context) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	if err := c.getList(ctx, "/exchanges", schema.Exchange, &exchanges); err != nil {
		return nil, err
	}
	return exchanges, nil
}

func (c *Client) ExchangeByID(ctx context.Context, id string) (*models.Exchange, error) {
	var exchange models.Exchange
	if err := c.getObject(ctx, "/exchanges/"+url.PathEscape(id), schema.Exchange, &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}

// Search is a raw passthrough: the upstream's search payload has no fixed
// schema here, the only contract is the non-empty query.
func (c *Client) Search(ctx context.Context, q string) (json.RawMessage, error) {
	if len(q) == 0 {
		return nil, &BadRequestError{Message: "search query is required"}
	}

	body, err := c.get(ctx, "/search?q="+url.QueryEscape(q)+"&limit=10")
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
