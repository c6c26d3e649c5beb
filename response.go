package tartan

import (
	"github.com/finbound/tartan/mfa"
	"github.com/finbound/tartan/product"
)

// Response represents the classified outcome of an API request. It does
// not cover errors; those are returned separately. Callers type-switch
// over the concrete variants and should handle every one.
type Response interface {
	isResponse()
}

// MFA means the user has been created but a multi-factor verification
// step is still pending.
type MFA struct {
	User      User
	Challenge mfa.Challenge
}

// Authenticated means the user was authenticated and the product data
// requested alongside the authentication has been decoded.
type Authenticated struct {
	User User
	Data product.Data
}

// ProductData carries the decoded payload of a plain data fetch.
type ProductData struct {
	Data product.Data
}

// ProductNotEnabled means the request named a product the user's access
// token is not entitled to. Upgrade the user to enable it.
type ProductNotEnabled struct {
	Product product.Product
}

func (MFA) isResponse()               {}
func (Authenticated) isResponse()     {}
func (ProductData) isResponse()       {}
func (ProductNotEnabled) isResponse() {}
