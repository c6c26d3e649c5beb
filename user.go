package tartan

import (
	"encoding/json"

	"github.com/finbound/tartan/data"
	"github.com/finbound/tartan/mfa"
	"github.com/finbound/tartan/product"
)

// User represents an authorized end-user session for a given product.
// Store the access token after authentication and pass it into all
// subsequent step and fetch calls for that user.
type User struct {
	AccessToken string `json:"access_token"`
}

func decodeUser(body []byte) (User, error) {
	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return User{}, err
	}
	if u.AccessToken == "" {
		return User{}, &data.DecodeError{Path: "access_token", Reason: "missing required field"}
	}
	return u, nil
}

// Status models the caller-held authentication lifecycle of a user:
// Unknown until the first response, MFAChallenged while a verification
// step is pending, then Authenticated or ProductNotEnabled. Callers
// type-switch over the concrete variants.
type Status interface {
	isStatus()
}

// StatusUnknown means nothing is known about the user yet.
type StatusUnknown struct{}

// StatusMFAChallenged means the remote service is waiting on an answer
// to the carried challenge.
type StatusMFAChallenged struct {
	Challenge mfa.Challenge
}

// StatusAuthenticated means the user is authenticated and the product's
// data has been retrieved.
type StatusAuthenticated struct {
	Data product.Data
}

// StatusProductNotEnabled means the access token lacks entitlement for
// the requested product. Recovery requires an Upgrade call.
type StatusProductNotEnabled struct {
	Product product.Product
}

func (StatusUnknown) isStatus()           {}
func (StatusMFAChallenged) isStatus()     {}
func (StatusAuthenticated) isStatus()     {}
func (StatusProductNotEnabled) isStatus() {}

// NextStatus reduces a Response into the user's new Status. It is a pure
// function and performs no I/O.
func NextStatus(resp Response) Status {
	switch r := resp.(type) {
	case MFA:
		return StatusMFAChallenged{Challenge: r.Challenge}
	case Authenticated:
		return StatusAuthenticated{Data: r.Data}
	case ProductData:
		return StatusAuthenticated{Data: r.Data}
	case ProductNotEnabled:
		return StatusProductNotEnabled{Product: r.Product}
	default:
		return StatusUnknown{}
	}
}
