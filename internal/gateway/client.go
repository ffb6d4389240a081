// Package gateway is the client for the external settlement API. It owns the
// three outbound calls (authenticate, deposit, withdraw) and translates
// transport outcomes into the closed Error type; it never retries and never
// touches local state.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/walletbridge/debin-server/internal/config"
	"github.com/walletbridge/debin-server/internal/logging"
)

// tokenTTLSeconds is what the settlement API reports for its sessions. The
// credential is used once per withdrawal and never cached, so this is
// informational only.
const tokenTTLSeconds = 7200

// CredentialScheme selects how a credential is presented on the wire.
type CredentialScheme int8

const (
	SchemeBearer CredentialScheme = iota
	SchemeBasic
)

func (s CredentialScheme) String() string {
	switch s {
	case SchemeBearer:
		return "Bearer"
	case SchemeBasic:
		return "Basic"
	default:
		return "Unknown"
	}
}

// Credential authorizes a single withdrawal call.
type Credential struct {
	Token     string
	Scheme    CredentialScheme
	ExpiresIn int64
}

// Ack is a successful answer from a settlement money endpoint. Payload holds
// the decoded response body so relay callers can pass it through untouched.
type Ack struct {
	Status  int
	Payload map[string]interface{}
}

type Client struct {
	httpClient       *http.Client
	logger           *logrus.Logger
	baseURL          string
	authEndpoint     string
	depositEndpoint  string
	withdrawEndpoint string
}

func NewClient(env *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(env.SettlementTimeoutSecs) * time.Second,
		},
		logger:           logger,
		baseURL:          env.SettlementBaseURL,
		authEndpoint:     env.AuthEndpoint,
		depositEndpoint:  env.DepositEndpoint,
		withdrawEndpoint: env.WithdrawEndpoint,
	}
}

type authPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type transactionPayload struct {
	Email       string          `json:"email"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Authenticate posts credentials to the auth endpoint and extracts a token.
// Priority: a token= session cookie, then a token field in the JSON body, then
// a Basic credential synthesized from the raw email:password pair. The
// withdrawal flow depends on all three tiers.
func (c *Client) Authenticate(ctx context.Context, email, password string) (Credential, error) {
	url := c.baseURL + c.authEndpoint
	c.logger.WithField("url", url).Info("Gateway.Authenticate.calling")

	resp, body, err := c.post(ctx, url, authPayload{Email: email, Password: password}, nil)
	if err != nil {
		return Credential{}, &Error{Kind: ErrKindUnreachable, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WithField("status", resp.StatusCode).Warn("Gateway.Authenticate.rejected")
		return Credential{}, &Error{Kind: ErrKindAuthFailed, Status: resp.StatusCode}
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			c.logger.Info("Gateway.Authenticate.token from cookie")
			return Credential{Token: cookie.Value, Scheme: SchemeBearer, ExpiresIn: tokenTTLSeconds}, nil
		}
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Token != "" {
		c.logger.Info("Gateway.Authenticate.token from body")
		return Credential{Token: parsed.Token, Scheme: SchemeBearer, ExpiresIn: tokenTTLSeconds}, nil
	}

	// No token anywhere; fall back to presenting the raw credentials.
	c.logger.Warn("Gateway.Authenticate.no token found, falling back to basic credentials")
	return Credential{Token: email + ":" + password, Scheme: SchemeBasic, ExpiresIn: tokenTTLSeconds}, nil
}

// Deposit posts an amount/description/email payload to the deposit endpoint.
// A 2xx answer with a body is success; anything else is RemoteRejected.
func (c *Client) Deposit(ctx context.Context, email string, amount decimal.Decimal, description string) (Ack, error) {
	url := c.baseURL + c.depositEndpoint
	c.logger.WithField("url", url).Info("Gateway.Deposit.calling")

	payload := transactionPayload{Email: email, Amount: amount, Description: description}
	return c.postForAck(ctx, url, payload, nil)
}

// Withdraw posts the withdrawal payload with the credential attached. Basic
// credentials are base64-encoded; Bearer tokens pass through verbatim. The
// token also rides a Cookie header for cookie-based settlement sessions.
func (c *Client) Withdraw(ctx context.Context, cred Credential, email string, amount decimal.Decimal, description, password string) (Ack, error) {
	url := c.baseURL + c.withdrawEndpoint
	c.logger.WithField("url", url).Info("Gateway.Withdraw.calling")

	token := cred.Token
	if token == "" {
		token = email + ":" + password
	}

	headers := http.Header{}
	switch cred.Scheme {
	case SchemeBasic:
		headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(token)))
	default:
		headers.Set("Authorization", "Bearer "+token)
	}
	headers.Set("Cookie", "token="+token)

	payload := transactionPayload{Email: email, Amount: amount, Description: description}
	return c.postForAck(ctx, url, payload, headers)
}

func (c *Client) postForAck(ctx context.Context, url string, payload interface{}, headers http.Header) (Ack, error) {
	resp, body, err := c.post(ctx, url, payload, headers)
	if err != nil {
		return Ack{}, &Error{Kind: ErrKindUnreachable, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || len(body) == 0 {
		c.logger.WithField("status", resp.StatusCode).Warn("Gateway.rejected")
		return Ack{}, &Error{Kind: ErrKindRemoteRejected, Status: resp.StatusCode}
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Ack{}, &Error{Kind: ErrKindUnreachable, Err: err}
	}

	c.logger.WithField("payload", logging.DumpPayload(c.logger, decoded)).Debug("Gateway.answer")
	return Ack{Status: resp.StatusCode, Payload: decoded}, nil
}

func (c *Client) post(ctx context.Context, url string, payload interface{}, headers http.Header) (*http.Response, []byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return resp, body, nil
}
