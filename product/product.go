// Package product defines the closed set of remote data categories the
// service exposes. Each product knows its endpoint path for every
// operation kind and how to decode its own data payload.
package product

// Operation identifies the caller's intent against a product endpoint.
type Operation int

const (
	// Authenticate creates a new user from institution credentials.
	Authenticate Operation = iota
	// StepMFA submits an answer to a pending MFA challenge.
	StepMFA
	// FetchData retrieves the product's data for an authenticated user.
	FetchData
	// Upgrade enables this product for an already-authenticated user.
	Upgrade
)

// Data is the decoded payload of a successful product response. The
// concrete type depends on which product was requested; callers
// type-assert to the product's data struct.
type Data interface {
	isProductData()
}

// Product describes one remote data category. The set is closed: every
// implementation lives in this package.
type Product interface {
	// Name is the product's display name, e.g. "Connect".
	Name() string
	// Endpoint resolves the URL path for the given operation, with
	// leading slash. Total over all Operation values.
	Endpoint(op Operation) string
	// DecodeData decodes a response body into the product's Data shape.
	DecodeData(body []byte) (Data, error)
}
