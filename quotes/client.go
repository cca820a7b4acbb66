// Package quotes is the client for the external quote-lookup service.
package quotes

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrQuoteNotFound means the service does not know the symbol.
	ErrQuoteNotFound = errors.New("invalid symbol")

	// ErrQuoteUnavailable means the service could not be reached or
	// answered with a server error.
	ErrQuoteUnavailable = errors.New("quote service unavailable")
)

// Quote is the current name and price for a symbol.
type Quote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// Lookuper resolves ticker symbols to quotes. Satisfied by Client; tests
// substitute a stub.
type Lookuper interface {
	Lookup(symbol string) (*Quote, error)
}

// Default is the process-wide quote client, set once by Init.
var Default Lookuper

// Init configures the global quote client.
func Init(baseURL, apiKey string) {
	Default = NewClient(baseURL, apiKey)
}

// Client looks up quotes over HTTP. No caching, no retries.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient builds a client for the given base URL. The timeout bounds every
// lookup; quote lookups sit on the request path of buy and sell.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
		apiKey: apiKey,
	}
}

// Lookup resolves a symbol to its current quote. Unknown symbols return
// ErrQuoteNotFound; transport failures and upstream errors return
// ErrQuoteUnavailable.
func (c *Client) Lookup(symbol string) (*Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrQuoteNotFound
	}

	var quote Quote
	req := c.http.R().
		SetQueryParam("symbol", symbol).
		SetResult(&quote)
	if c.apiKey != "" {
		req.SetQueryParam("apikey", c.apiKey)
	}

	resp, err := req.Get("")
	if err != nil {
		return nil, ErrQuoteUnavailable
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, ErrQuoteNotFound
	case resp.StatusCode() != http.StatusOK:
		return nil, ErrQuoteUnavailable
	}

	// An empty payload or non-positive price is an unknown symbol as far
	// as the trading flows are concerned.
	if quote.Symbol == "" || quote.Price <= 0 {
		return nil, ErrQuoteNotFound
	}

	return &quote, nil
}
