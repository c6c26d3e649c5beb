package tartan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/finbound/tartan/mfa"
	"github.com/finbound/tartan/product"
)

// ClientOpts configures a Client. Config is required; the HTTP client
// and logger default to a 30 second timeout client and a no-op logger.
type ClientOpts struct {
	Config Config
	// HTTPClient is the place to configure proxies, timeouts and TLS.
	// It must be safe for concurrent use if the Client is shared.
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client represents an API consumer. This is where all requests to the
// remote service start. The Client holds no per-user state and is safe
// for concurrent use as long as its HTTP client is.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// New creates a Client from the given options.
func New(opts *ClientOpts) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{cfg: opts.Config, http: httpClient, logger: logger}
}

// Request dispatches the payload against the given product: it builds
// the request, sends it, classifies the response by status code and
// operation, and decodes the body into the matching Response variant.
//
// The call blocks until the HTTP client returns; no retries are
// performed and no timeout is imposed beyond the HTTP client's own.
func (c *Client) Request(ctx context.Context, p product.Product, payload Payload) (Response, error) {
	requestID := uuid.NewString()

	bodyVal, err := payload.body(&c.cfg)
	if err != nil {
		return nil, err
	}
	var reqBody io.Reader
	if bodyVal != nil {
		encoded, err := json.Marshal(bodyVal)
		if err != nil {
			return nil, ErrInternal
		}
		reqBody = bytes.NewReader(encoded)
	}

	url := c.cfg.Endpoint + p.Endpoint(payload.operation())
	req, err := http.NewRequestWithContext(ctx, payload.method(), url, reqBody)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json; charset=utf-8")
	if token := payload.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("dispatching request",
		zap.String("request_id", requestID),
		zap.String("product", p.Name()),
		zap.String("method", payload.method()),
		zap.String("url", url))

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := classify(res.StatusCode, payload, p, resBody)
	if err != nil {
		c.logger.Debug("response rejected",
			zap.String("request_id", requestID),
			zap.Int("status", res.StatusCode),
			zap.Error(err))
		return nil, err
	}

	c.logger.Debug("response classified",
		zap.String("request_id", requestID),
		zap.Int("status", res.StatusCode))
	return resp, nil
}

// classify maps (status code, operation) onto a Response variant. A 201
// means the user exists but a multi-factor step is still pending; it
// short-circuits regardless of which operation was sent, because the
// remote signals "need more auth" through the status code, not the
// payload shape.
func classify(status int, payload Payload, p product.Product, body []byte) (Response, error) {
	switch {
	case status == http.StatusCreated:
		user, err := decodeUser(body)
		if err != nil {
			return nil, &InvalidResponseError{Err: err}
		}
		challenge, err := mfa.DecodeChallenge(body)
		if err != nil {
			// An unknown challenge discriminator surfaces as its own
			// named error, not as a generic decode failure.
			var unsupported *mfa.UnsupportedChallengeTypeError
			if errors.As(err, &unsupported) {
				return nil, err
			}
			return nil, &InvalidResponseError{Err: err}
		}
		return MFA{User: user, Challenge: challenge}, nil

	case status == http.StatusOK && authenticating(payload):
		user, err := decodeUser(body)
		if err != nil {
			return nil, &InvalidResponseError{Err: err}
		}
		d, err := p.DecodeData(body)
		if err != nil {
			return nil, &InvalidResponseError{Err: err}
		}
		return Authenticated{User: user, Data: d}, nil

	case status == http.StatusOK:
		d, err := p.DecodeData(body)
		if err != nil {
			return nil, &InvalidResponseError{Err: err}
		}
		return ProductData{Data: d}, nil

	default:
		return nil, &UnsuccessfulResponseError{StatusCode: status}
	}
}

// authenticating reports whether a 200 response to this payload carries
// an access token alongside the product data.
func authenticating(p Payload) bool {
	switch p.(type) {
	case Authenticate, StepMFA, Upgrade:
		return true
	}
	return false
}
