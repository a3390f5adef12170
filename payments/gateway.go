// Package payments talks to the hosted payment page provider used for the
// payment-link payment method.
package payments

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("payment gateway configuration missing")

type Config struct {
	StoreID       int
	AuthKey       string
	APIURL        string
	Sandbox       bool // test transactions, webhook signatures not checked
	Currency      string
	WebhookSecret string
	ReturnURLs    ReturnURLs
	Timeout       time.Duration
}

type ReturnURLs struct {
	Authorised string
	Declined   string
	Cancelled  string
}

func (c Config) Enabled() bool {
	return c.StoreID != 0 && c.AuthKey != "" && c.APIURL != ""
}

type Address struct {
	Line1    string
	Line2    string
	City     string
	Region   string
	Country  string
	Postcode string
}

// Request describes one hosted payment page.
type Request struct {
	CartID      string // our order reference, echoed back in the webhook
	Amount      string
	Description string
	Name        string
	Email       string
	Phone       string
	Address     Address
}

type Link struct {
	URL string `json:"url"`
	Ref string `json:"ref"`
}

type Gateway interface {
	CreatePaymentLink(ctx context.Context, req Request) (Link, error)
}

// Client is the HTTP Gateway implementation.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

type createResponse struct {
	Order struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) CreatePaymentLink(ctx context.Context, req Request) (Link, error) {
	testMode := 0
	if c.cfg.Sandbox {
		testMode = 1
	}

	payload := map[string]interface{}{
		"method":  "create",
		"store":   c.cfg.StoreID,
		"authkey": c.cfg.AuthKey,
		"order": map[string]interface{}{
			"cartid":      req.CartID,
			"test":        testMode,
			"amount":      req.Amount,
			"currency":    c.cfg.Currency,
			"description": req.Description,
		},
		"customer": map[string]interface{}{
			"name":  req.Name,
			"email": req.Email,
			"phone": req.Phone,
			"address": map[string]string{
				"line1":    req.Address.Line1,
				"line2":    req.Address.Line2,
				"city":     req.Address.City,
				"region":   req.Address.Region,
				"country":  req.Address.Country,
				"postcode": req.Address.Postcode,
			},
		},
		"return": map[string]string{
			"authorised": c.cfg.ReturnURLs.Authorised,
			"declined":   c.cfg.ReturnURLs.Declined,
			"cancelled":  c.cfg.ReturnURLs.Cancelled,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Link{}, fmt.Errorf("encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return Link{}, fmt.Errorf("build payment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("requesting payment link", zap.String("cart_id", req.CartID), zap.String("amount", req.Amount))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Link{}, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Link{}, fmt.Errorf("read payment gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Link{}, fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed createResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Link{}, fmt.Errorf("failed to parse payment gateway response: %w", err)
	}
	if parsed.Error != nil {
		return Link{}, fmt.Errorf("payment gateway error: %s", parsed.Error.Message)
	}
	if parsed.Order.URL == "" {
		return Link{}, errors.New("payment gateway returned empty payment URL")
	}

	return Link{URL: parsed.Order.URL, Ref: parsed.Order.Ref}, nil
}

// signedFields are the webhook form fields covered by tran_check, in order.
var signedFields = []string{
	"tran_store", "tran_type", "tran_class", "tran_test", "tran_ref",
	"tran_prevref", "tran_firstref", "tran_order", "tran_currency",
	"tran_amount", "tran_cartid", "tran_desc", "tran_status",
	"tran_authcode", "tran_authmessage",
}

// Signature computes the tran_check value for a webhook form.
func Signature(secret string, form url.Values) string {
	parts := []string{secret}
	for _, f := range signedFields {
		parts = append(parts, strings.TrimSpace(form.Get(f)))
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}

// VerifySignature reports whether provided matches the form's signature.
func VerifySignature(secret string, form url.Values, provided string) bool {
	if provided == "" {
		return false
	}
	return strings.EqualFold(Signature(secret, form), provided)
}
