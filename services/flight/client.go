package flight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FlightSearchQuery carries the validated search parameters forwarded to the
// provider. Origin, destination and departure date are required.
type FlightSearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	TravelClass   string
}

// OfferList is the provider's offer payload passed through opaquely: the
// service does not interpret anything beyond the top-level list and metadata.
type OfferList struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// FlightService proxies location, offer-search and pricing calls to the
// external GDS.
type FlightService interface {
	SearchLocations(ctx context.Context, keyword string) (json.RawMessage, error)
	SearchFlights(ctx context.Context, q FlightSearchQuery) (*OfferList, error)
	PriceOffers(ctx context.Context, offers json.RawMessage) (json.RawMessage, error)
}

// Client is the production FlightService backed by an Amadeus-style REST API.
type Client struct {
	baseURL    string
	tokens     *TokenSource
	httpClient *http.Client
}

// NewClient creates a flight API client sharing the given token source.
func NewClient(baseURL string, tokens *TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
	}
}

// SearchLocations looks up airports and cities matching the keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) (json.RawMessage, error) {
	if len(keyword) < 2 {
		return nil, ValidationError{Message: "keyword must be at least 2 characters"}
	}

	params := url.Values{}
	params.Set("subType", "CITY,AIRPORT")
	params.Set("keyword", keyword)

	var resp apiResponse
	if err := c.get(ctx, "/v1/reference-data/locations", params, &resp); err != nil {
		return nil, err
	}
	return resp.dataOrEmptyList(), nil
}

// SearchFlights forwards a flight-offers search to the provider.
func (c *Client) SearchFlights(ctx context.Context, q FlightSearchQuery) (*OfferList, error) {
	if q.Origin == "" || q.Destination == "" || q.DepartureDate == "" {
		return nil, ValidationError{Message: "origin, destination, and departure date are required"}
	}
	if q.Adults < 1 {
		q.Adults = 1
	}
	if q.TravelClass == "" {
		q.TravelClass = "ECONOMY"
	}

	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("travelClass", q.TravelClass)
	params.Set("currencyCode", "INR")
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}

	var resp apiResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", params, &resp); err != nil {
		return nil, err
	}
	return &OfferList{Data: resp.dataOrEmptyList(), Meta: resp.Meta}, nil
}

// PriceOffers asks the provider to confirm pricing for the given offers.
func (c *Client) PriceOffers(ctx context.Context, offers json.RawMessage) (json.RawMessage, error) {
	if len(offers) == 0 {
		return nil, ValidationError{Message: "flight offers are required"}
	}

	body := map[string]any{
		"data": map[string]any{
			"type":         "flight-offers-pricing",
			"flightOffers": offers,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pricing request: %w", err)
	}

	var resp apiResponse
	if err := c.do(ctx, http.MethodPost, "/v1/shopping/flight-offers/pricing", nil, payload, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return resp.Data, nil
}

// apiResponse is the provider's top-level envelope.
type apiResponse struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

func (r apiResponse) dataOrEmptyList() json.RawMessage {
	if len(r.Data) == 0 {
		return json.RawMessage(`[]`)
	}
	return r.Data
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out *apiResponse) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte, out *apiResponse) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("flight provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The cached token was rejected; drop it so the next call
		// re-exchanges.
		c.tokens.Invalidate()
		return AuthError{Err: fmt.Errorf("provider rejected bearer token")}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("flight provider returned %d: %s", resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
