package mercadopago

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidpereyra2016/cv-generador/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.MercadoPagoConfig{
		AccessToken: "TEST-token",
		PublicKey:   "TEST-public-key",
		BaseURL:     server.URL,
	})
}

func TestCreatePreference(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/checkout/preferences", r.URL.Path)
		require.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		items, ok := payload["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, "Generador de CV", item["title"])
		assert.Equal(t, float64(1), item["quantity"])
		assert.Equal(t, "ARS", item["currency_id"])
		assert.Equal(t, float64(2000), item["unit_price"])
		assert.Equal(t, "approved", payload["auto_return"])
		assert.Equal(t, "form-123", payload["external_reference"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"pref-1","init_point":"https://mp.example/checkout/pref-1","external_reference":"form-123"}`)
	})

	pref, err := client.CreatePreference(context.Background(), PreferenceRequest{
		Title:             "Generador de CV",
		UnitPrice:         2000,
		CurrencyID:        "ARS",
		ExternalReference: "form-123",
		BackURLs: BackURLs{
			Success: "http://localhost:8080/success",
			Failure: "http://localhost:8080/failure",
			Pending: "http://localhost:8080/pending",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pref-1", pref.ID)
	assert.Equal(t, "https://mp.example/checkout/pref-1", pref.InitPoint)
}

func TestCreatePreferenceMissingFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"external_reference":"form-123"}`)
	})

	_, err := client.CreatePreference(context.Background(), PreferenceRequest{Title: "Generador de CV"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id or init_point")
}

func TestCreatePreferenceUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"invalid access token"}`)
	})

	_, err := client.CreatePreference(context.Background(), PreferenceRequest{Title: "Generador de CV"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalid access token")
}

func TestGetPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payments/42", r.URL.Path)
		fmt.Fprint(w, `{"id":42,"status":"approved","status_detail":"accredited","external_reference":"form-123","transaction_amount":2000}`)
	})

	payment, err := client.GetPayment(context.Background(), "42")
	require.NoError(t, err)
	assert.True(t, payment.Approved())
	assert.Equal(t, "form-123", payment.ExternalReference)
	assert.Equal(t, float64(2000), payment.TransactionAmount)
}

func TestGetPaymentEmptyID(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.GetPayment(context.Background(), "  ")
	require.Error(t, err)
}

func TestVerifyWebhookSignature(t *testing.T) {
	client := NewClient(config.MercadoPagoConfig{
		AccessToken:   "TEST-token",
		PublicKey:     "TEST-public-key",
		BaseURL:       "https://api.mercadopago.com",
		WebhookSecret: "shhh",
	})

	manifest := "id:42;request-id:req-1;ts:1700000000;"
	mac := hmac.New(sha256.New, []byte("shhh"))
	mac.Write([]byte(manifest))
	v1 := hex.EncodeToString(mac.Sum(nil))
	header := fmt.Sprintf("ts=1700000000,v1=%s", v1)

	require.NoError(t, client.VerifyWebhookSignature(header, "req-1", "42"))

	err := client.VerifyWebhookSignature(header, "req-other", "42")
	require.Error(t, err)

	_, _, err = parseSignatureHeader("garbage")
	require.Error(t, err)
}

func TestVerifyWebhookSignatureNoSecret(t *testing.T) {
	client := NewClient(config.MercadoPagoConfig{
		AccessToken: "TEST-token",
		PublicKey:   "TEST-public-key",
		BaseURL:     "https://api.mercadopago.com",
	})

	// Without a configured secret every notification is accepted.
	require.NoError(t, client.VerifyWebhookSignature("", "", ""))
}
