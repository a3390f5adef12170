package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(apiURL string) Config {
	return Config{StoreID: 12345, AuthKey: "key", APIURL: apiURL, Sandbox: true, Currency: "INR"}
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(Config{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_CreatePaymentLink(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"order":{"ref":"REF1","url":"https://secure.example.com/pay/REF1"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	link, err := client.CreatePaymentLink(context.Background(), Request{CartID: "cart-1", Amount: "500.00", Name: "John Doe"})
	require.NoError(t, err)
	assert.Equal(t, Link{URL: "https://secure.example.com/pay/REF1", Ref: "REF1"}, link)

	order := got["order"].(map[string]interface{})
	assert.Equal(t, "cart-1", order["cartid"])
	assert.Equal(t, "500.00", order["amount"])
	assert.Equal(t, "INR", order["currency"])
	assert.Equal(t, float64(1), order["test"])
	assert.Equal(t, "create", got["method"])
}

func TestClient_CreatePaymentLinkErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusBadGateway, "upstream"},
		{"gateway error", http.StatusOK, `{"error":{"code":"E01","message":"bad store"}}`},
		{"empty url", http.StatusOK, `{"order":{"ref":"REF1"}}`},
		{"bad json", http.StatusOK, `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := NewClient(testConfig(srv.URL), zap.NewNop())
			require.NoError(t, err)
			_, err = client.CreatePaymentLink(context.Background(), Request{CartID: "cart-1"})
			assert.Error(t, err)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	form := url.Values{
		"tran_store":  {"12345"},
		"tran_cartid": {"cart-1"},
		"tran_status": {"A"},
		"tran_ref":    {"REF1"},
	}
	sig := Signature("secret", form)

	assert.Len(t, sig, 40)
	assert.True(t, VerifySignature("secret", form, sig))
	assert.False(t, VerifySignature("other", form, sig))
	assert.False(t, VerifySignature("secret", form, ""))

	form.Set("tran_status", "D")
	assert.False(t, VerifySignature("secret", form, sig))
}
