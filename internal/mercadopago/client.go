// Package mercadopago is a thin client for the MercadoPago checkout API.
// It covers exactly what the service needs: creating a hosted-checkout
// preference, fetching a payment, and verifying webhook signatures.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/davidpereyra2016/cv-generador/internal/config"
)

// Client talks to the MercadoPago REST API. Construct it once at startup
// and inject it into handlers; tests substitute the api.PaymentGateway
// interface with a double.
type Client struct {
	accessToken   string
	publicKey     string
	webhookSecret string
	baseURL       string
	httpClient    *http.Client
}

// NewClient builds a Client from provider configuration.
func NewClient(cfg config.MercadoPagoConfig) *Client {
	return &Client{
		accessToken:   cfg.AccessToken,
		publicKey:     cfg.PublicKey,
		webhookSecret: cfg.WebhookSecret,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PublicKey returns the client-side checkout key.
func (c *Client) PublicKey() string {
	return c.publicKey
}

// BackURLs are the browser redirect targets after checkout.
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest describes the single line item sold per checkout.
type PreferenceRequest struct {
	Title             string
	UnitPrice         float64
	CurrencyID        string
	ExternalReference string
	BackURLs          BackURLs
	NotificationURL   string
}

// Preference is the provider-side intent: an opaque id plus the hosted
// checkout redirect URL. Immutable once returned.
type Preference struct {
	ID                string `json:"id"`
	InitPoint         string `json:"init_point"`
	SandboxInitPoint  string `json:"sandbox_init_point"`
	ExternalReference string `json:"external_reference"`
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
	UnitPrice  float64 `json:"unit_price"`
}

type preferencePayload struct {
	Items             []preferenceItem `json:"items"`
	BackURLs          BackURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
	ExternalReference string           `json:"external_reference,omitempty"`
	NotificationURL   string           `json:"notification_url,omitempty"`
}

// CreatePreference registers a checkout preference for one unit of the
// given item. No retry: provider errors surface verbatim to the caller.
func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	payload := preferencePayload{
		Items: []preferenceItem{{
			Title:      req.Title,
			Quantity:   1,
			CurrencyID: req.CurrencyID,
			UnitPrice:  req.UnitPrice,
		}},
		BackURLs:          req.BackURLs,
		AutoReturn:        "approved",
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
	}

	body, err := c.do(ctx, http.MethodPost, "/checkout/preferences", payload)
	if err != nil {
		return nil, err
	}

	var pref Preference
	if err := json.Unmarshal(body, &pref); err != nil {
		return nil, fmt.Errorf("decode preference response: %w", err)
	}
	if pref.ID == "" || pref.InitPoint == "" {
		return nil, fmt.Errorf("preference response missing id or init_point: %s", truncate(body))
	}
	return &pref, nil
}

// Payment is the authoritative payment record fetched after a callback or
// webhook notification.
type Payment struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
}

// Approved reports whether the payment reached the approved state.
func (p *Payment) Approved() bool {
	return p.Status == "approved"
}

// GetPayment fetches a payment by the id received in a callback or webhook.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, fmt.Errorf("payment id is empty")
	}

	body, err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}

	var payment Payment
	if err := json.Unmarshal(body, &payment); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}
	if payment.Status == "" {
		return nil, fmt.Errorf("payment response missing status: %s", truncate(body))
	}
	return &payment, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mercadopago %s %s status %d: %s", method, path, resp.StatusCode, truncate(body))
	}
	return body, nil
}

func truncate(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
