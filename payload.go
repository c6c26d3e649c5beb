package tartan

import (
	"net/http"

	"github.com/finbound/tartan/data"
	"github.com/finbound/tartan/mfa"
	"github.com/finbound/tartan/product"
)

// Payload tells the client what to do with the associated product. Use
// Authenticate to create a user, StepMFA to answer a pending challenge,
// FetchData to retrieve product data and Upgrade to enable a product for
// an existing user.
//
// Building a payload performs no I/O; it only fixes the HTTP method and
// the request body. Absent optional fields are omitted from the body,
// never serialized as explicit nulls.
type Payload interface {
	operation() product.Operation
	method() string
	// body returns the value to serialize as the request body, or nil
	// for an empty body.
	body(cfg *Config) (any, error)
	// bearerToken returns the access token to send as a bearer header,
	// or "" when the payload carries its token in the body instead.
	bearerToken() string
}

// Authenticate creates a new user from their institution credentials.
// Call it once per user, then store the returned access token.
type Authenticate struct {
	// The user's institution, e.g. "chase".
	Institution data.Institution
	Username    string
	Password    string
	// PIN is only required by a few institutions, e.g. "usaa".
	PIN     string
	Options *AuthenticateOptions
}

// AuthenticateOptions tunes the authentication call.
type AuthenticateOptions struct {
	// Webhook is a URL the service posts transaction updates to.
	Webhook string `json:"webhook,omitempty"`
	// LoginOnly skips the initial data pull.
	LoginOnly bool `json:"login_only,omitempty"`
	// List asks for the user's registered MFA devices instead of sending
	// a code to the default one.
	List bool `json:"list,omitempty"`
	// SendMethod picks the device a code challenge is delivered to.
	SendMethod *SendMethod `json:"send_method,omitempty"`
}

// SendMethod selects a code delivery target, either by device type
// ("phone", "email") or by the mask shown in a DeviceList challenge.
// Set exactly one field.
type SendMethod struct {
	Type string `json:"type,omitempty"`
	Mask string `json:"mask,omitempty"`
}

// StepMFA answers a pending MFA challenge for the given access token.
type StepMFA struct {
	AccessToken string
	Response    mfa.Response
}

// FetchData retrieves the product's data for an authenticated user.
type FetchData struct {
	AccessToken string
	Options     *FetchDataOptions
}

// FetchDataOptions filters fetched transactions by date range. Unset
// bounds are omitted from the request body.
type FetchDataOptions struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Upgrade enables the requested product for an already-authenticated
// user, e.g. after a ProductNotEnabled status.
type Upgrade struct {
	AccessToken string
}

func (Authenticate) operation() product.Operation { return product.Authenticate }
func (StepMFA) operation() product.Operation      { return product.StepMFA }
func (FetchData) operation() product.Operation    { return product.FetchData }
func (Upgrade) operation() product.Operation      { return product.Upgrade }

func (Authenticate) method() string { return http.MethodPost }
func (StepMFA) method() string      { return http.MethodPatch }
func (FetchData) method() string    { return http.MethodGet }
func (Upgrade) method() string      { return http.MethodPost }

func (Authenticate) bearerToken() string { return "" }
func (StepMFA) bearerToken() string      { return "" }
func (p FetchData) bearerToken() string  { return p.AccessToken }
func (Upgrade) bearerToken() string      { return "" }

type authenticateBody struct {
	ClientID string               `json:"client_id"`
	Secret   string               `json:"secret"`
	Username string               `json:"username"`
	Password string               `json:"password"`
	PIN      string               `json:"pin,omitempty"`
	Type     string               `json:"type"`
	Options  *AuthenticateOptions `json:"options,omitempty"`
}

func (p Authenticate) body(cfg *Config) (any, error) {
	return authenticateBody{
		ClientID: cfg.ClientID,
		Secret:   cfg.Secret,
		Username: p.Username,
		Password: p.Password,
		PIN:      p.PIN,
		Type:     p.Institution,
		Options:  p.Options,
	}, nil
}

type stepMFABody struct {
	ClientID    string       `json:"client_id"`
	Secret      string       `json:"secret"`
	AccessToken string       `json:"access_token"`
	MFA         mfa.Response `json:"mfa"`
}

func (p StepMFA) body(cfg *Config) (any, error) {
	if p.Response == nil {
		return nil, ErrInternal
	}
	return stepMFABody{
		ClientID:    cfg.ClientID,
		Secret:      cfg.Secret,
		AccessToken: p.AccessToken,
		MFA:         p.Response,
	}, nil
}

type fetchDataBody struct {
	Options *FetchDataOptions `json:"options"`
}

func (p FetchData) body(cfg *Config) (any, error) {
	// The access token travels as a bearer header; the body carries only
	// the optional filters.
	if p.Options == nil {
		return nil, nil
	}
	return fetchDataBody{Options: p.Options}, nil
}

type upgradeBody struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

func (p Upgrade) body(cfg *Config) (any, error) {
	// The target product travels in the endpoint's query string.
	return upgradeBody{
		ClientID:    cfg.ClientID,
		Secret:      cfg.Secret,
		AccessToken: p.AccessToken,
	}, nil
}
